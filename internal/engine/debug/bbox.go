// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// boxEdges lists the 12 edges of a box as corner index pairs. Corner i takes
// max on x when bit 0 is set, on y for bit 1 and on z for bit 2.
var boxEdges = [12][2]int{
	// Bottom
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// BoundsWireframe returns line-list vertices for b, grown by padding on every
// side. Format is [x, y, z] per vertex.
func BoundsWireframe(b math.Bounds, padding float64) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo := b.Min.Sub(pad)
	hi := b.Max.Add(pad)

	var corners [8][3]float32
	for i := range corners {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		corners[i] = c.Array()
	}

	verts := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range boxEdges {
		verts = append(verts, corners[e[0]][:]...)
		verts = append(verts, corners[e[1]][:]...)
	}
	return verts
}
