package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMaterial   = flag.String("mtl", "", "Material library (default: <mesh>.mtl)")
	flagCamera     = flag.String("cam", "", "Camera file (default: <mesh>.cam)")
	flagWatch      = flag.Bool("watch", false, "Reload the scene when its files change")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// The first positional argument, if any, is the mesh path.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMaterial != "" {
		cfg.Scene.Material = *flagMaterial
	}
	if *flagCamera != "" {
		cfg.Scene.Camera = *flagCamera
	}
	if *flagWatch {
		cfg.Scene.Watch = true
	}
	if flag.NArg() > 0 {
		cfg.Scene.Mesh = flag.Arg(0)
	}
}
