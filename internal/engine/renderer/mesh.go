package renderer

import (
	"github.com/Faultbox/sceneview/pkg/formats"
)

// floatsPerVertex is position xyz followed by normal xyz.
const floatsPerVertex = 6

// Triangulate flattens a mesh into interleaved position/normal triangles.
// Polygons are split as a fan around their first vertex; faces with fewer
// than three vertices are skipped.
func Triangulate(mesh *formats.Mesh) []float32 {
	if mesh == nil {
		return nil
	}

	n := 0
	for _, f := range mesh.Faces {
		if len(f.Vertices) >= 3 {
			n += (len(f.Vertices) - 2) * 3
		}
	}
	out := make([]float32, 0, n*floatsPerVertex)

	for _, f := range mesh.Faces {
		for i := 1; i+1 < len(f.Vertices); i++ {
			out = appendVertex(out, f, 0)
			out = appendVertex(out, f, i)
			out = appendVertex(out, f, i+1)
		}
	}
	return out
}

func appendVertex(out []float32, f formats.Face, i int) []float32 {
	p := f.Vertices[i].Array()
	var nrm [3]float32
	if i < len(f.Normals) {
		nrm = f.Normals[i].Array()
	}
	return append(out, p[0], p[1], p[2], nrm[0], nrm[1], nrm[2])
}
