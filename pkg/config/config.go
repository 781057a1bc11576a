// Package config provides configuration loading and management for the
// framepipe CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framepipe/pkg/framepipe"
)

// Config represents the full configuration for the framepipe CLI.
// Command-line flags override values loaded from a file.
type Config struct {
	// Frame geometry
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	PixelFormat string `yaml:"pixel_format"`
	Framerate   string `yaml:"framerate"`

	// Encoding
	Codec     string `yaml:"codec"`
	Preset    string `yaml:"preset"`
	Container string `yaml:"container"`
	Quality   int    `yaml:"quality"`
	Bitrate   int    `yaml:"bitrate"`

	// Encoder binary
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Width:       640,
		Height:      480,
		PixelFormat: string(framepipe.RGB24),
		Framerate:   "30",
		Codec:       "libx264",
		Preset:      "fast",
		DebugDir:    "./debug",
		LogLevel:    "info",
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SessionConfig converts the CLI configuration into a session
// configuration for the given output path.
func (c Config) SessionConfig(outputPath string) (framepipe.Config, error) {
	rate, err := framepipe.ParseRate(c.Framerate)
	if err != nil {
		return framepipe.Config{}, err
	}
	return framepipe.Config{
		Width:       c.Width,
		Height:      c.Height,
		PixelFormat: framepipe.PixelFormat(c.PixelFormat),
		Rate:        rate,
		OutputPath:  outputPath,
		Codec:       c.Codec,
		Preset:      c.Preset,
		Container:   c.Container,
		Quality:     c.Quality,
		Bitrate:     c.Bitrate,
		FFmpegPath:  c.FFmpegPath,
	}, nil
}
