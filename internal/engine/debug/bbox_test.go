package debug

import (
	"testing"

	"github.com/Faultbox/sceneview/pkg/math"
)

func TestBoundsWireframe(t *testing.T) {
	var bb math.BoundsBuilder
	bb.Extend(math.Vec3{X: -1, Y: 0, Z: 2})
	bb.Extend(math.Vec3{X: 3, Y: 4, Z: 5})
	b, _ := bb.Bounds()

	verts := BoundsWireframe(b, 0)
	if len(verts) != BBoxWireframeVertexCount*3 {
		t.Fatalf("got %d floats, want %d", len(verts), BBoxWireframeVertexCount*3)
	}

	for i := 0; i < len(verts); i += 6 {
		a := verts[i : i+3]
		c := verts[i+3 : i+6]
		differ := 0
		for k := 0; k < 3; k++ {
			if a[k] != c[k] {
				differ++
			}
		}
		if differ != 1 {
			t.Errorf("edge %d is not axis aligned: %v -> %v", i/6, a, c)
		}
	}

	for i := 0; i < len(verts); i += 3 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		if (x != -1 && x != 3) || (y != 0 && y != 4) || (z != 2 && z != 5) {
			t.Errorf("vertex %d (%v,%v,%v) is not a box corner", i/3, x, y, z)
		}
	}
}

func TestBoundsWireframePadding(t *testing.T) {
	b := math.Bounds{Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	verts := BoundsWireframe(b, 0.5)

	for _, v := range verts {
		if v != -0.5 && v != 1.5 {
			t.Fatalf("unexpected coordinate %v", v)
		}
	}
}
