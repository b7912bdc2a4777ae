package deskscene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Resolve(Flags{})

	if cfg.Width != 960 || cfg.Height != 720 {
		t.Errorf("size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TextureDir != "textures" {
		t.Errorf("texture dir %q", cfg.TextureDir)
	}
	if cfg.SnapshotPath != "deskscene.webp" {
		t.Errorf("snapshot path %q", cfg.SnapshotPath)
	}
	if cfg.CameraEye == ([3]float64{}) {
		t.Error("camera eye unset")
	}
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data := `{"texture_dir": "assets", "width": 640, "height": 480}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{TextureDir: "other", Width: 1280})

	if cfg.TextureDir != "other" {
		t.Errorf("texture dir %q", cfg.TextureDir)
	}
	if cfg.Width != 1280 {
		t.Errorf("width %d", cfg.Width)
	}
	// Height had no flag, so the file value stands.
	if cfg.Height != 480 {
		t.Errorf("height %d", cfg.Height)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})
	if cfg.Width == 0 {
		t.Error("defaults not applied")
	}
}
