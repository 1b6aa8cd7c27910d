package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/pkg/formats"
)

// ErrFileNotFound is returned when the mesh path does not resolve.
var ErrFileNotFound = errors.New("scene file not found")

// LoadOptions overrides the companion files looked up next to the mesh.
type LoadOptions struct {
	MaterialPath string // default: mtllib entries, then <mesh>.mtl
	CameraPath   string // default: <mesh>.cam
}

// Result is a successfully loaded scene plus the optional camera placement.
type Result struct {
	Scene  *Scene
	Camera *formats.CameraSpec // nil when no usable camera file exists
	Files  []string            // every file read
	Watch  []string            // Files plus companions that did not exist yet
}

// Load reads a mesh file and its companions. On error nothing is returned, so a
// caller holding a previous scene keeps it untouched.
func Load(meshPath string, opts LoadOptions) (*Result, error) {
	log := logger.Named("scene")

	data, err := os.ReadFile(meshPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, meshPath, err)
		}
		return nil, fmt.Errorf("reading mesh %s: %w", meshPath, err)
	}

	res := &Result{Scene: New(meshPath), Files: []string{meshPath}}
	var absent []string

	for _, mtlPath := range materialPaths(meshPath, data, opts) {
		mats, err := formats.ParseMTLFile(mtlPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("material library not found", zap.String("path", mtlPath))
				absent = append(absent, mtlPath)
				continue
			}
			return nil, fmt.Errorf("parsing materials %s: %w", mtlPath, err)
		}
		for name, m := range mats {
			res.Scene.Materials[name] = m
		}
		res.Files = append(res.Files, mtlPath)
		log.Debug("materials loaded", zap.String("path", mtlPath), zap.Int("count", len(mats)))
	}

	obj, err := formats.ParseOBJ(data, res.Scene.Materials)
	if err != nil {
		return nil, fmt.Errorf("parsing mesh %s: %w", meshPath, err)
	}
	res.Scene.Meshes = obj.Meshes

	camPath := opts.CameraPath
	if camPath == "" {
		camPath = sibling(meshPath, ".cam")
	}
	spec, err := formats.ParseCameraFile(camPath)
	switch {
	case err == nil:
		res.Camera = spec
		res.Files = append(res.Files, camPath)
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("no camera file", zap.String("path", camPath))
		absent = append(absent, camPath)
	default:
		log.Warn("ignoring camera file", zap.String("path", camPath), zap.Error(err))
		res.Files = append(res.Files, camPath)
	}

	res.Watch = append(append([]string(nil), res.Files...), absent...)

	st := res.Scene.Stats()
	log.Info("scene loaded",
		zap.String("path", meshPath),
		zap.Int("meshes", st.Meshes),
		zap.Int("faces", st.Faces),
		zap.Int("materials", st.Materials),
		zap.Bool("camera", res.Camera != nil),
	)
	return res, nil
}

// materialPaths picks the material libraries for a mesh: an explicit override,
// otherwise its mtllib records, otherwise the sibling .mtl file.
func materialPaths(meshPath string, data []byte, opts LoadOptions) []string {
	if opts.MaterialPath != "" {
		return []string{opts.MaterialPath}
	}

	dir := filepath.Dir(meshPath)
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "mtllib" {
			continue
		}
		for _, name := range fields[1:] {
			if !filepath.IsAbs(name) {
				name = filepath.Join(dir, name)
			}
			paths = append(paths, name)
		}
	}
	if len(paths) > 0 {
		return paths
	}
	return []string{sibling(meshPath, ".mtl")}
}

// sibling swaps the extension of path.
func sibling(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
