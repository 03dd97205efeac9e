package context

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestInitDcolorContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcolor.yaml")
	if err := os.WriteFile(path, []byte("format:\n  profile: bright\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, err := InitDcolorContext(context.Background(), GlobalFlags{ConfigPath: path, Quiet: true})
	if err != nil {
		t.Fatalf("InitDcolorContext failed: %v", err)
	}
	if ctx.Config.Format.Profile != "bright" {
		t.Errorf("profile = %q, want bright", ctx.Config.Format.Profile)
	}
	if !ctx.Config.App.Quiet {
		t.Error("quiet flag should override config")
	}
	if ctx.Logger == nil || ctx.Viper == nil {
		t.Error("logger and viper must be set")
	}
}

func TestInitDcolorContext_BadConfig(t *testing.T) {
	if _, err := InitDcolorContext(context.Background(), GlobalFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
