// Package camera provides the eye/target/up camera frame and its navigation operations.
package camera

import (
	"errors"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/formats"
	"github.com/Faultbox/sceneview/pkg/math"
)

// ErrDegenerateBasis is returned when the view direction or the right axis
// cannot be normalized (eye on target, or up parallel to the view direction).
var ErrDegenerateBasis = errors.New("degenerate camera basis")

const (
	basisEpsilon = 1e-6

	// Orbit keeps the polar angle this far from either pole.
	minPolar = 0.1
	maxPolar = gomath.Pi - 0.1

	// Orbit is skipped when the eye sits closer than this to the target.
	minOrbitDistance = 0.001

	minFOV = 10.0
	maxFOV = 120.0

	// AutoFrame places the eye this many scene extents along (1,1,1).
	frameDistance = 0.8
)

// PanDirection selects the basis axis used by Pan.
type PanDirection int

const (
	PanRight PanDirection = iota
	PanUp
)

// Frame is a perspective camera described by eye, target and an up hint.
type Frame struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3 // hint, need not be orthogonal to the view direction

	FOV    float64 // vertical field of view, degrees
	Aspect float64 // width / height
	Near   float64
	Far    float64
}

// NewFrame creates a frame at (0,0,5) looking at the origin with +Y up.
func NewFrame() *Frame {
	return &Frame{
		Eye:    math.Vec3{X: 0, Y: 0, Z: 5},
		Target: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:    45,
		Aspect: 1,
		Near:   0.1,
		Far:    100,
	}
}

// Basis returns the right-handed orthonormal (forward, right, up) triple.
func (f *Frame) Basis() (forward, right, up math.Vec3, err error) {
	view := f.Target.Sub(f.Eye)
	if view.Length() < basisEpsilon {
		return math.Vec3{}, math.Vec3{}, math.Vec3{}, ErrDegenerateBasis
	}
	forward = view.Normalize()

	side := forward.Cross(f.Up)
	if side.Length() < basisEpsilon {
		return math.Vec3{}, math.Vec3{}, math.Vec3{}, ErrDegenerateBasis
	}
	right = side.Normalize()
	up = right.Cross(forward)
	return forward, right, up, nil
}

// Distance returns |target - eye|.
func (f *Frame) Distance() float64 {
	return f.Target.Distance(f.Eye)
}

// Pan translates eye and target along the right or up axis.
func (f *Frame) Pan(dir PanDirection, amount float64) {
	_, right, up, err := f.Basis()
	if err != nil {
		return
	}
	axis := right
	if dir == PanUp {
		axis = up
	}
	f.translate(axis.Scale(amount))
}

// Dolly translates eye and target along the view direction.
func (f *Frame) Dolly(amount float64) {
	forward, _, _, err := f.Basis()
	if err != nil {
		return
	}
	f.translate(forward.Scale(amount))
}

func (f *Frame) translate(d math.Vec3) {
	f.Eye = f.Eye.Add(d)
	f.Target = f.Target.Add(d)
}

// Orbit moves the eye over the sphere centred on the target.
// Theta is measured in the XZ plane from +Z, phi from +Y; phi is clamped away
// from the poles. The eye-target distance is preserved.
func (f *Frame) Orbit(horizontal, vertical float64) {
	toEye := f.Eye.Sub(f.Target)
	dist := toEye.Length()
	if dist < minOrbitDistance {
		return
	}

	theta := gomath.Atan2(toEye.X, toEye.Z) + horizontal
	phi := gomath.Acos(clamp(toEye.Y/dist, -1, 1)) + vertical
	phi = clamp(phi, minPolar, maxPolar)

	sinPhi := gomath.Sin(phi)
	f.Eye = math.Vec3{
		X: f.Target.X + dist*sinPhi*gomath.Sin(theta),
		Y: f.Target.Y + dist*gomath.Cos(phi),
		Z: f.Target.Z + dist*sinPhi*gomath.Cos(theta),
	}
}

// LookAround turns the view direction in place: first by horizontal radians
// toward right, then by vertical radians toward up. The eye stays fixed and the
// eye-target distance is preserved.
func (f *Frame) LookAround(horizontal, vertical float64) {
	forward, right, up, err := f.Basis()
	if err != nil {
		return
	}

	turned := forward.Scale(gomath.Cos(horizontal)).Add(right.Scale(gomath.Sin(horizontal)))
	tilted := turned.Scale(gomath.Cos(vertical)).Add(up.Scale(gomath.Sin(vertical)))
	tilted = tilted.Normalize()
	if tilted.Length() == 0 {
		return
	}

	dist := f.Distance()
	f.Target = f.Eye.Add(tilted.Scale(dist))
}

// AutoFrame looks at the centre of bounds from the (1,1,1) diagonal and widens
// the field of view to cover the largest extent. It does nothing when ok is false.
func (f *Frame) AutoFrame(bounds math.Bounds, ok bool) {
	if !ok {
		return
	}

	extent := bounds.MaxExtent()
	if extent < basisEpsilon {
		extent = 1
	}

	diagonal := math.Vec3{X: 1, Y: 1, Z: 1}.Scale(extent * frameDistance)
	f.Eye = bounds.Center.Add(diagonal)
	f.Target = bounds.Center

	dist := diagonal.Length()
	fov := 2 * gomath.Atan(extent/(2*dist)) * 180 / gomath.Pi
	f.FOV = clamp(fov, minFOV, maxFOV)
}

// ApplySpec copies eye, target and aspect ratio from a camera file.
// A spec with eye on target is ignored.
func (f *Frame) ApplySpec(spec *formats.CameraSpec) bool {
	if spec == nil || spec.Eye.Distance(spec.Target) < basisEpsilon {
		return false
	}
	f.Eye = spec.Eye
	f.Target = spec.Target
	f.Aspect = spec.Aspect()
	return true
}

// ViewMatrix returns the look-at matrix for GPU upload.
func (f *Frame) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(f.Eye.GL(), f.Target.GL(), f.Up.GL())
}

// ProjectionMatrix returns the perspective matrix for GPU upload.
func (f *Frame) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(f.FOV)), float32(f.Aspect), float32(f.Near), float32(f.Far))
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
