package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framepipe/pkg/framepipe"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("unexpected default dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.PixelFormat != "rgb24" {
		t.Errorf("unexpected default pixel format %s", cfg.PixelFormat)
	}
	if cfg.Framerate != "30" {
		t.Errorf("unexpected default framerate %s", cfg.Framerate)
	}
	if cfg.Codec != "libx264" {
		t.Errorf("unexpected default codec %s", cfg.Codec)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framepipe.yaml")
	yaml := `
width: 1280
height: 720
framerate: "30000/1001"
quality: 20
ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Framerate != "30000/1001" {
		t.Errorf("unexpected framerate %s", cfg.Framerate)
	}
	if cfg.Quality != 20 {
		t.Errorf("unexpected quality %d", cfg.Quality)
	}
	// Unset fields keep their defaults.
	if cfg.Codec != "libx264" {
		t.Errorf("expected default codec, got %s", cfg.Codec)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Framerate = "24"

	sessCfg, err := cfg.SessionConfig("video/out.mp4")
	if err != nil {
		t.Fatalf("SessionConfig failed: %v", err)
	}

	if sessCfg.OutputPath != "video/out.mp4" {
		t.Errorf("unexpected output path %s", sessCfg.OutputPath)
	}
	if sessCfg.Rate != framepipe.RatePerSecond(24) {
		t.Errorf("unexpected rate %v", sessCfg.Rate)
	}
	if sessCfg.PixelFormat != framepipe.RGB24 {
		t.Errorf("unexpected pixel format %s", sessCfg.PixelFormat)
	}

	if _, err := sessCfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate: %v", err)
	}
}

func TestSessionConfigBadRate(t *testing.T) {
	cfg := Defaults()
	cfg.Framerate = "not-a-rate"

	if _, err := cfg.SessionConfig("out.mp4"); err == nil {
		t.Error("expected error for invalid framerate")
	}
}
