// Package lighting derives the viewer's light rig from scene bounds.
package lighting

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position math.Vec3
	Diffuse  [3]float32
	Specular [3]float32
}

// Rig is the full set of lights uploaded each frame.
type Rig struct {
	Key     PointLight
	Fill    PointLight
	Ambient [3]float32
}

// Default light positions, used when the scene has no bounds.
var (
	defaultKeyPosition  = math.Vec3{X: 10, Y: 10, Z: 10}
	defaultFillPosition = math.Vec3{X: -5, Y: 5, Z: -5}
)

// NewRig places a key light above the far corner of the scene and a dimmer fill
// light on the opposite side. With ok false the default positions are used.
func NewRig(bounds math.Bounds, ok bool) Rig {
	rig := Rig{
		Key: PointLight{
			Position: defaultKeyPosition,
			Diffuse:  [3]float32{0.8, 0.8, 0.8},
			Specular: [3]float32{1, 1, 1},
		},
		Fill: PointLight{
			Position: defaultFillPosition,
			Diffuse:  [3]float32{0.4, 0.4, 0.4},
			Specular: [3]float32{0.2, 0.2, 0.2},
		},
		Ambient: [3]float32{0.2, 0.2, 0.2},
	}
	if !ok {
		return rig
	}

	c := bounds.Center
	s := bounds.MaxExtent()
	rig.Key.Position = c.Add(math.Vec3{X: s, Y: s, Z: s})
	rig.Fill.Position = c.Add(math.Vec3{X: -s / 2, Y: s / 2, Z: -s / 2})
	return rig
}
