// Package viewer runs the interactive scene viewer.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Session holds the viewer state that does not touch the GPU: the scene,
// its bounds, the camera and the light rig.
type Session struct {
	cfg config.SceneConfig
	log *zap.Logger

	Scene      *scene.Scene
	Bounds     math.Bounds
	HasBounds  bool
	Frame      *camera.Frame
	Nav        *camera.Navigator
	Rig        lighting.Rig
	Files      []string // files the current scene was read from
	WatchPaths []string // Files plus companion files that may appear later
	ShowBounds bool
}

// NewSession creates a session with the camera settings from cfg. Call Open
// to populate the scene.
func NewSession(cfg *config.Config) *Session {
	frame := camera.NewFrame()
	frame.FOV = cfg.Camera.FOV
	frame.Near = cfg.Camera.Near
	frame.Far = cfg.Camera.Far

	nav := camera.NewNavigator(frame)
	nav.MoveSpeed = cfg.Camera.MoveSpeed
	nav.RotateSpeed = cfg.Camera.RotateSpeed
	nav.ZoomSpeed = cfg.Camera.ZoomSpeed

	return &Session{
		cfg:        cfg.Scene,
		log:        logger.Named("viewer"),
		Frame:      frame,
		Nav:        nav,
		ShowBounds: cfg.Render.ShowBounds,
	}
}

// Open loads the configured mesh, falling back to the demo scene when no mesh
// is configured or it fails to load. The camera is placed from the camera file
// when one was found, otherwise auto-framed on the scene.
func (s *Session) Open() {
	if s.cfg.Mesh == "" {
		s.log.Info("no mesh given, showing demo scene")
		s.useDemo()
		return
	}

	res, err := s.load()
	if err != nil {
		s.log.Warn("failed to load scene, showing demo scene",
			zap.String("path", s.cfg.Mesh), zap.Error(err))
		s.useDemo()
		return
	}

	s.setScene(res)
	if s.Frame.ApplySpec(res.Camera) {
		s.log.Debug("camera placed from file",
			zap.Stringer("eye", s.Frame.Eye), zap.Stringer("target", s.Frame.Target))
		return
	}
	s.Frame.AutoFrame(s.Bounds, s.HasBounds)
}

// Reload re-reads the scene files. On failure the current scene stays in place
// and the error is returned. The camera is left where the user put it.
func (s *Session) Reload() error {
	if s.cfg.Mesh == "" {
		return nil
	}
	res, err := s.load()
	if err != nil {
		s.log.Warn("reload failed, keeping current scene", zap.Error(err))
		return err
	}
	s.setScene(res)
	s.log.Info("scene reloaded", zap.String("path", s.cfg.Mesh))
	return nil
}

// Reframe auto-frames the camera on the current bounds.
func (s *Session) Reframe() {
	s.Frame.AutoFrame(s.Bounds, s.HasBounds)
}

// ToggleBounds flips the bounds overlay.
func (s *Session) ToggleBounds() {
	s.ShowBounds = !s.ShowBounds
}

// Step applies one frame of navigation input.
func (s *Session) Step(actions camera.ActionSet, wheel float64) {
	s.Nav.Apply(actions)
	if wheel != 0 {
		s.Nav.Scroll(wheel)
	}
}

func (s *Session) load() (*scene.Result, error) {
	return scene.Load(s.cfg.Mesh, scene.LoadOptions{
		MaterialPath: s.cfg.Material,
		CameraPath:   s.cfg.Camera,
	})
}

func (s *Session) useDemo() {
	s.setScene(&scene.Result{Scene: scene.Demo()})
	s.Frame.AutoFrame(s.Bounds, s.HasBounds)
}

func (s *Session) setScene(res *scene.Result) {
	sc := res.Scene
	s.Scene = sc
	s.Files = res.Files
	s.WatchPaths = res.Watch
	s.Bounds, s.HasBounds = sc.ComputeBounds()
	s.Rig = lighting.NewRig(s.Bounds, s.HasBounds)

	st := sc.Stats()
	s.log.Info("scene ready",
		zap.String("source", sc.Source),
		zap.Int("meshes", st.Meshes),
		zap.Int("faces", st.Faces),
		zap.Int("materials", st.Materials),
		zap.Bool("has_bounds", s.HasBounds),
	)
}
