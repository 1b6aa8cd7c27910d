package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/sceneview/internal/logger"
)

// FileName is the name of the config file inside ConfigDir.
const FileName = "config.yaml"

// localFile is looked up in the working directory before ConfigDir.
const localFile = "sceneview.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load builds the viewer config: defaults, then the first config file found
// (the -config flag wins over the search path), then command-line flags.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}

	cfg := Default()
	if path != "" {
		if err := decodeFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single config file over the defaults and validates it.
// Flags are not applied.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is where the user config file lives.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), FileName)
}

// searchPaths lists config file candidates, most specific first.
func searchPaths() []string {
	return []string{localFile, DefaultPath()}
}

func findConfigFile() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for the viewer, falling
// back to the working directory when the OS reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = os.Getwd()
	}
	return filepath.Join(base, "sceneview")
}

// decodeFile merges the YAML document at path into cfg. Keys the Config does
// not declare are an error so typos do not silently fall back to defaults.
func decodeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate reports every setting the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.FPSLimit >= 0, "fps_limit must not be negative, got %d", c.Window.FPSLimit)

	check(c.Camera.MoveSpeed > 0, "move_speed must be positive, got %g", c.Camera.MoveSpeed)
	check(c.Camera.RotateSpeed > 0, "rotate_speed must be positive, got %g", c.Camera.RotateSpeed)
	check(c.Camera.ZoomSpeed > 0, "zoom_speed must be positive, got %g", c.Camera.ZoomSpeed)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "fov must be in (0, 180), got %g", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near,
		"clip planes need 0 < near < far, got near %g far %g", c.Camera.Near, c.Camera.Far)

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: logging: %w", ErrInvalid, err))
	}

	for i, ch := range c.Render.Background {
		check(ch >= 0 && ch <= 1, "background[%d] must be in [0, 1], got %g", i, ch)
	}
	return errors.Join(errs...)
}
