package schema

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestGenConfigSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := GenConfigSchema(&buf); err != nil {
		t.Fatalf("GenConfigSchema failed: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	for _, key := range []string{"watch_debounce", "file_path", "profile"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("config schema missing %q", key)
		}
	}
}

func TestGenResultSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := GenResultSchema(&buf); err != nil {
		t.Fatalf("GenResultSchema failed: %v", err)
	}
	for _, key := range []string{`"ansi"`, `"segments"`, `"underline"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("result schema missing %s", key)
		}
	}
}
