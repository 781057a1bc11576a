// Package main provides the CLI entry point for framepipe.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	xdraw "golang.org/x/image/draw"

	"github.com/user/framepipe/pkg/adapters/filesink"
	"github.com/user/framepipe/pkg/adapters/ggrenderer"
	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/mp4probe"
	"github.com/user/framepipe/pkg/adapters/osfilesystem"
	"github.com/user/framepipe/pkg/config"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/ports"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Demo    DemoCmd    `cmd:"" help:"Encode a synthetic test pattern video."`
	Convert ConvertCmd `cmd:"" help:"Encode a directory of image frames into a video."`
	Probe   ProbeCmd   `cmd:"" help:"Print a summary of an MP4 file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// commonFlags are shared by the encoding subcommands.
type commonFlags struct {
	Output string `short:"o" required:"" help:"Output video file path."`
	Config string `short:"C" help:"YAML configuration file."`

	Width     *int    `short:"W" help:"Frame width (default: 640)."`
	Height    *int    `short:"H" help:"Frame height (default: 480)."`
	Framerate *string `short:"r" help:"Frame rate, e.g. 30 or 30000/1001."`
	Codec     *string `help:"Output codec (default: libx264)."`
	Preset    *string `help:"Encoder speed preset (default: fast)."`
	Quality   *int    `short:"q" help:"Video quality (0-63, lower is better)."`
	Bitrate   *int    `short:"b" help:"Target bitrate in kbps."`

	FFmpegPath string `help:"Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)."`

	Debug    bool   `short:"d" help:"Save invocation, raw frames and encoder diagnostics."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// DemoCmd encodes a moving test pattern.
type DemoCmd struct {
	commonFlags
	Frames int `short:"n" default:"90" help:"Number of frames to render."`
}

// ConvertCmd encodes a directory of still images.
type ConvertCmd struct {
	commonFlags
	Dir string `arg:"" help:"Directory containing PNG or JPEG frames, fed in name order."`
}

// ProbeCmd prints a summary of an MP4 file.
type ProbeCmd struct {
	File string `arg:"" help:"MP4 file to inspect."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framepipe"),
		kong.Description("Assemble videos from raw image frames via ffmpeg."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// buildConfig merges the optional config file with flag overrides.
func (f *commonFlags) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if f.Config != "" {
		loaded, err := config.Load(f.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.Framerate != nil {
		cfg.Framerate = *f.Framerate
	}
	if f.Codec != nil {
		cfg.Codec = *f.Codec
	}
	if f.Preset != nil {
		cfg.Preset = *f.Preset
	}
	if f.Quality != nil {
		cfg.Quality = *f.Quality
	}
	if f.Bitrate != nil {
		cfg.Bitrate = *f.Bitrate
	}
	if f.FFmpegPath != "" {
		cfg.FFmpegPath = f.FFmpegPath
	}
	if f.Debug {
		cfg.Debug = true
		cfg.DebugDir = f.DebugDir
	}
	cfg.LogLevel = f.LogLevel
	return cfg, nil
}

// newLogger builds the console or noop logger from the flags.
func (f *commonFlags) newLogger() ports.Logger {
	if f.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(f.LogLevel))
}

// openSession opens an encoding session from the flags and wires the
// interrupt handler that abandons it on Ctrl-C.
func (f *commonFlags) openSession(log ports.Logger) (*framepipe.Session, config.Config, error) {
	cfg, err := f.buildConfig()
	if err != nil {
		return nil, cfg, err
	}

	sessCfg, err := cfg.SessionConfig(f.Output)
	if err != nil {
		return nil, cfg, err
	}

	opts := []framepipe.Option{framepipe.WithLogger(log)}
	if cfg.Debug {
		opts = append(opts, framepipe.WithDebugSink(filesink.New(cfg.DebugDir, osfilesystem.New())))
	}

	sess, err := framepipe.Open(sessCfg, opts...)
	if err != nil {
		return nil, cfg, err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		sess.Close()
		os.Exit(1)
	}()

	return sess, cfg, nil
}

// Run executes the demo command.
func (cmd *DemoCmd) Run() error {
	log := cmd.newLogger()

	sess, cfg, err := cmd.openSession(log)
	if err != nil {
		return err
	}
	defer sess.Close()

	log.Info("Encoding %d frames at %dx%d...", cmd.Frames, cfg.Width, cfg.Height)

	renderer := ggrenderer.New()
	for i := 0; i < cmd.Frames; i++ {
		log.Debug("Rendering frame %d/%d", i+1, cmd.Frames)
		img := renderer.RenderPattern(cfg.Width, cfg.Height, i, cmd.Frames)
		if err := sess.AddImage(img); err != nil {
			return err
		}
	}

	path, err := sess.Finish()
	if err != nil {
		return err
	}

	log.Info("Output saved to %s", path)
	return nil
}

// Run executes the convert command.
func (cmd *ConvertCmd) Run() error {
	log := cmd.newLogger()

	files, err := listFrameFiles(cmd.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PNG or JPEG frames found in %s", cmd.Dir)
	}

	sess, cfg, err := cmd.openSession(log)
	if err != nil {
		return err
	}
	defer sess.Close()

	log.Info("Encoding %d frames at %dx%d...", len(files), cfg.Width, cfg.Height)

	for i, file := range files {
		img, err := loadImage(file)
		if err != nil {
			return fmt.Errorf("decode %s: %w", file, err)
		}

		img = scaleTo(img, cfg.Width, cfg.Height)

		log.Debug("Rendering frame %d/%d", i+1, len(files))
		if err := sess.AddImage(img); err != nil {
			return err
		}
	}

	path, err := sess.Finish()
	if err != nil {
		return err
	}

	log.Info("Output saved to %s", path)
	return nil
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	sum, err := mp4probe.Probe(cmd.File, osfilesystem.New())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", cmd.File, sum)
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framepipe version %s", version))
	return nil
}

// listFrameFiles returns the image files in dir sorted by name.
func listFrameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".png", ".jpg", ".jpeg":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// scaleTo resizes an image to the exact session dimensions when needed.
func scaleTo(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height && bounds.Min == (image.Point{}) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
