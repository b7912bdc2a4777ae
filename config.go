package deskscene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the runtime settings for the viewer.
type Config struct {
	TextureDir   string     `json:"texture_dir"`
	SnapshotPath string     `json:"snapshot_path"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	CameraEye    [3]float64 `json:"camera_eye"`
	CameraTarget [3]float64 `json:"camera_target"`
}

// Flags carries command-line overrides. Zero values mean "not given".
type Flags struct {
	TextureDir   string
	SnapshotPath string
	Width        int
	Height       int
}

// LoadConfig reads a JSON config file. A missing path returns an empty
// config so the defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides on top of the file values, then fills in
// defaults for anything still unset.
func (c *Config) Resolve(f Flags) {
	if f.TextureDir != "" {
		c.TextureDir = f.TextureDir
	}
	if f.SnapshotPath != "" {
		c.SnapshotPath = f.SnapshotPath
	}
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}

	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = "deskscene.webp"
	}
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.CameraEye == ([3]float64{}) {
		c.CameraEye = [3]float64{0, 12, -32}
	}
	if c.CameraTarget == ([3]float64{}) {
		c.CameraTarget = [3]float64{0, 2, 0}
	}
}
