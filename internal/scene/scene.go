// Package scene holds the loaded scene: meshes, their materials and derived bounds.
package scene

import (
	"github.com/Faultbox/sceneview/pkg/formats"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Scene owns an ordered mesh list and the material table the meshes point into.
type Scene struct {
	Meshes    []*formats.Mesh
	Materials map[string]*formats.Material
	Source    string // mesh file path, or "demo"
}

// DrawItem is one mesh submission for the renderer.
type DrawItem struct {
	Mesh     *formats.Mesh
	Material *formats.Material
}

// Stats summarises scene size.
type Stats struct {
	Meshes    int
	Faces     int
	Vertices  int // face-vertex occurrences
	Materials int
}

// New creates an empty scene.
func New(source string) *Scene {
	return &Scene{
		Materials: make(map[string]*formats.Material),
		Source:    source,
	}
}

// Empty reports whether the scene has no faces.
func (s *Scene) Empty() bool {
	for _, m := range s.Meshes {
		if len(m.Faces) > 0 {
			return false
		}
	}
	return true
}

// ComputeBounds walks every vertex of every face. ok is false for a scene with no faces.
// The result is never cached; call again after changing Meshes.
func (s *Scene) ComputeBounds() (math.Bounds, bool) {
	var b math.BoundsBuilder
	for _, mesh := range s.Meshes {
		for _, face := range mesh.Faces {
			for _, v := range face.Vertices {
				b.Extend(v)
			}
		}
	}
	return b.Bounds()
}

// DrawList returns meshes with their bound material, in submission order.
func (s *Scene) DrawList() []DrawItem {
	items := make([]DrawItem, 0, len(s.Meshes))
	for _, m := range s.Meshes {
		items = append(items, DrawItem{Mesh: m, Material: m.Material})
	}
	return items
}

// Stats counts meshes, faces, vertex occurrences and materials.
func (s *Scene) Stats() Stats {
	st := Stats{Meshes: len(s.Meshes), Materials: len(s.Materials)}
	for _, m := range s.Meshes {
		st.Faces += len(m.Faces)
		for _, f := range m.Faces {
			st.Vertices += len(f.Vertices)
		}
	}
	return st
}
