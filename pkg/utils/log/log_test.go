package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yeisme/dcolor/pkg/configs"
)

func withConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := consoleOut
	consoleOut = &buf
	t.Cleanup(func() {
		consoleOut = old
		globalLogger = nil
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
	return &buf
}

func Test_parseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace": zerolog.TraceLevel, "DEBUG": zerolog.DebugLevel, "warning": zerolog.WarnLevel,
		"error": zerolog.ErrorLevel, "bogus": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLogger_JSONConsole(t *testing.T) {
	buf := withConsole(t)
	logger := InitLogger(context.Background(),
		&configs.LogConfig{Level: "info", JSON: true, Mode: "console"},
		&configs.AppConfig{Name: "dcolor"})

	logger.Info().Str("profile", "classic").Msg("formatted")
	out := buf.String()
	if !strings.Contains(out, `"profile":"classic"`) || !strings.Contains(out, `"message":"formatted"`) {
		t.Errorf("unexpected log output: %q", out)
	}

	logger.Debug().Msg("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line should be filtered at info level")
	}
}

func TestInitLogger_Quiet(t *testing.T) {
	buf := withConsole(t)
	logger := InitLogger(context.Background(),
		&configs.LogConfig{Level: "trace", JSON: true},
		&configs.AppConfig{Quiet: true, Debug: true})
	logger.Error().Msg("nothing")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}

func TestInitLogger_VerboseAddsApp(t *testing.T) {
	buf := withConsole(t)
	InitLogger(context.Background(),
		&configs.LogConfig{Level: "error", JSON: true},
		&configs.AppConfig{Name: "dcolor", Verbose: true})
	Info().Msg("hello")
	if !strings.Contains(buf.String(), `"app":"dcolor"`) {
		t.Errorf("verbose logger should tag app: %q", buf.String())
	}
}

func TestInitLogger_File(t *testing.T) {
	withConsole(t)
	path := filepath.Join(t.TempDir(), "logs", "dcolor.log")
	logger := InitLogger(context.Background(),
		&configs.LogConfig{Level: "info", JSON: true, Mode: "file", FilePath: path, MaxSize: 1},
		&configs.AppConfig{Name: "dcolor"})
	logger.Warn().Msg("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content: %q", data)
	}
}

func TestWithFields(t *testing.T) {
	buf := withConsole(t)
	InitLogger(context.Background(), &configs.LogConfig{Level: "info", JSON: true}, &configs.AppConfig{})
	WithFields(map[string]any{"span": 3}).Info().Msg("x")
	if !strings.Contains(buf.String(), `"span":3`) {
		t.Errorf("missing field: %q", buf.String())
	}
}
