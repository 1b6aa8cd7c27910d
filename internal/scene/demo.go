package scene

import (
	"github.com/Faultbox/sceneview/pkg/formats"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Unit cube corners and quads, wound counter-clockwise seen from outside.
var (
	cubeCorners = [8]math.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	cubeQuads = [6][4]int{
		{3, 2, 1, 0},
		{6, 7, 4, 5},
		{7, 3, 0, 4},
		{2, 6, 5, 1},
		{7, 6, 2, 3},
		{0, 1, 5, 4},
	}
)

// Demo returns the fallback scene shown when no mesh file loads: a reddish
// 2-unit cube at the origin and a small greenish cube at x=3.
func Demo() *Scene {
	s := New("demo")

	big := formats.NewMaterial("demo-big")
	big.Diffuse = math.Vec3{X: 1, Y: 0.5, Z: 0.5}
	small := formats.NewMaterial("demo-small")
	small.Diffuse = math.Vec3{X: 0.5, Y: 1, Z: 0.5}
	s.Materials[big.Name] = big
	s.Materials[small.Name] = small

	s.Meshes = append(s.Meshes,
		cube(big, 1, math.Vec3{}),
		cube(small, 0.3, math.Vec3{X: 3}),
	)
	return s
}

func cube(mat *formats.Material, scale float64, offset math.Vec3) *formats.Mesh {
	mesh := &formats.Mesh{Material: mat}
	for _, quad := range cubeQuads {
		face := formats.Face{DerivedNormal: true}
		for _, idx := range quad {
			face.VertexIndices = append(face.VertexIndices, idx)
			face.Vertices = append(face.Vertices, cubeCorners[idx].Scale(scale).Add(offset))
		}
		n := formats.FaceNormal(face.Vertices[0], face.Vertices[1], face.Vertices[2])
		for range face.Vertices {
			face.Normals = append(face.Normals, n)
		}
		mesh.Faces = append(mesh.Faces, face)
	}
	return mesh
}
