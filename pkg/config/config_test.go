package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gregLibert/mfc-keys/pkg/keyfile"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "format: proxmark\noutput_dir: keys\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	f, ok := cfg.KeyFormat()
	if !ok || f != keyfile.ProxmarkBin {
		t.Errorf("KeyFormat() = %v, %v; want proxmark, true", f, ok)
	}
	if want := filepath.Join(dir, "keys"); cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}
}

func TestLoad_AbsoluteOutputDir(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere")
	path := writeConfig(t, dir, "output_dir: "+abs+"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != abs {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, abs)
	}
	if _, ok := cfg.KeyFormat(); ok {
		t.Error("KeyFormat() should be unset")
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "" || cfg.OutputDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"Unknown field", "format: mfoc\nreader_index: 0\n", "parse config yaml"},
		{"Bad format", "format: flipper\n", "config.format"},
		{"Not yaml", "format: [mfoc\n", "parse config yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("error = %v, want read config error", err)
	}
}
