// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 = unlimited
}

// CameraConfig holds navigation speeds and projection defaults.
type CameraConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`   // world units per frame
	RotateSpeed float64 `yaml:"rotate_speed"` // radians per frame
	ZoomSpeed   float64 `yaml:"zoom_speed"`   // world units per wheel notch
	FOV         float64 `yaml:"fov"`          // degrees
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
}

// SceneConfig holds input file paths.
// Material and camera paths default to siblings of the mesh file.
type SceneConfig struct {
	Mesh     string `yaml:"mesh"`
	Material string `yaml:"material"`
	Camera   string `yaml:"camera"`
	Watch    bool   `yaml:"watch"` // reload when files change
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	Background [3]float32 `yaml:"background"`
	ShowBounds bool       `yaml:"show_bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Scene Viewer",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Camera: CameraConfig{
			MoveSpeed:   0.1,
			RotateSpeed: 0.02,
			ZoomSpeed:   0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Render: RenderConfig{
			Background: [3]float32{0.1, 0.1, 0.1},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
