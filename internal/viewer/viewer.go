package viewer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

// watchDebounce coalesces editor save bursts into one reload.
const watchDebounce = 200 * time.Millisecond

// Viewer is the interactive viewer instance.
type Viewer struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	session  *Session
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	changes     <-chan string
	stopWatch   context.CancelFunc
	watchedList []string
}

// New creates the window and renderer and loads the configured scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context created by the window.
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Render.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.Resize(width, height)

	v.input = input.New()

	v.session = NewSession(cfg)
	v.session.Open()
	v.upload()
	v.session.Frame.Aspect = window.AspectOf(width, height)

	if cfg.Scene.Watch {
		v.restartWatch()
	}

	v.log.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	var frameBudget time.Duration
	if v.cfg.Window.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Window.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		frameStart := time.Now()

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.pollWatch()

		v.session.Step(v.input.Actions(), v.input.Wheel())
		v.session.Frame.Aspect = v.window.Aspect()

		s := v.session
		v.renderer.Draw(s.Frame, s.Rig, s.ShowBounds)
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.stopWatch != nil {
		v.stopWatch()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(event.Width, event.Height)
		case input.EventCommand:
			v.log.Debug("command", zap.Stringer("command", event.Command))
			switch event.Command {
			case input.CommandQuit:
				v.running = false
			case input.CommandReload:
				v.reload()
			case input.CommandFrame:
				v.session.Reframe()
			case input.CommandToggleBounds:
				v.session.ToggleBounds()
			}
		}
	}
}

func (v *Viewer) pollWatch() {
	if v.changes == nil {
		return
	}
	select {
	case path, ok := <-v.changes:
		if !ok {
			v.changes = nil
			return
		}
		v.log.Info("scene file changed, reloading", zap.String("path", path))
		v.reload()
	default:
	}
}

func (v *Viewer) reload() {
	if err := v.session.Reload(); err != nil {
		return
	}
	v.upload()
	if v.cfg.Scene.Watch && !slices.Equal(v.watchedList, v.session.WatchPaths) {
		v.restartWatch()
	}
}

func (v *Viewer) upload() {
	s := v.session
	v.renderer.Upload(s.Scene.DrawList())
	v.renderer.SetBounds(s.Bounds, s.HasBounds)
	v.window.SetTitle(fmt.Sprintf("%s - %s", v.cfg.Window.Title, s.Scene.Source))
}

func (v *Viewer) restartWatch() {
	if v.stopWatch != nil {
		v.stopWatch()
		v.stopWatch = nil
		v.changes = nil
	}
	files := v.session.WatchPaths
	if len(files) == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := scene.Watch(ctx, files, watchDebounce)
	if err != nil {
		cancel()
		v.log.Warn("file watching disabled", zap.Error(err))
		return
	}
	v.changes = changes
	v.stopWatch = cancel
	v.watchedList = append([]string(nil), files...)
	v.log.Info("watching scene files", zap.Strings("files", files))
}
