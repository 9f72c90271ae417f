package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamepainter.toml")
	content := `
addr = "0.0.0.0:9000"
output_dir = "/tmp/assets"
max_canvases = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q, want 0.0.0.0:9000", cfg.Addr)
	}
	if cfg.OutputDir != "/tmp/assets" {
		t.Errorf("OutputDir = %q, want /tmp/assets", cfg.OutputDir)
	}
	if cfg.MaxCanvases != 8 {
		t.Errorf("MaxCanvases = %d, want 8", cfg.MaxCanvases)
	}
	// Unset fields keep their defaults.
	if cfg.Font != "" {
		t.Errorf("Font = %q, want empty", cfg.Font)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("addr = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for unparseable file")
	}
}

func TestLoadClampsCanvasCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamepainter.toml")
	if err := os.WriteFile(path, []byte("max_canvases = -5"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxCanvases != Default().MaxCanvases {
		t.Errorf("MaxCanvases = %d, want default %d", cfg.MaxCanvases, Default().MaxCanvases)
	}
}
