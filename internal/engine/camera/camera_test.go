package camera

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/pkg/formats"
	"github.com/Faultbox/sceneview/pkg/math"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	if !want.ApproxEqual(got, eps) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func frameAt(eye, target math.Vec3) *Frame {
	f := NewFrame()
	f.Eye = eye
	f.Target = target
	return f
}

func TestNewFrameDefaults(t *testing.T) {
	f := NewFrame()
	assert.Equal(t, math.Vec3{Z: 5}, f.Eye)
	assert.Equal(t, math.Vec3{}, f.Target)
	assert.Equal(t, math.Vec3{Y: 1}, f.Up)
	assert.Equal(t, 45.0, f.FOV)
	assert.Equal(t, 1.0, f.Aspect)
	assert.Equal(t, 0.1, f.Near)
	assert.Equal(t, 100.0, f.Far)
}

func TestBasis(t *testing.T) {
	f := NewFrame()
	forward, right, up, err := f.Basis()
	require.NoError(t, err)

	assertVec(t, math.Vec3{Z: -1}, forward)
	assertVec(t, math.Vec3{X: 1}, right)
	assertVec(t, math.Vec3{Y: 1}, up)
}

func TestBasisOrthonormalWithSkewedUp(t *testing.T) {
	f := frameAt(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: -2, Y: 0, Z: 1})
	f.Up = math.Vec3{X: 0.3, Y: 1, Z: 0.2}

	forward, right, up, err := f.Basis()
	require.NoError(t, err)

	assert.InDelta(t, 1, forward.Length(), eps)
	assert.InDelta(t, 1, right.Length(), eps)
	assert.InDelta(t, 1, up.Length(), eps)
	assert.InDelta(t, 0, forward.Dot(right), eps)
	assert.InDelta(t, 0, forward.Dot(up), eps)
	assert.InDelta(t, 0, right.Dot(up), eps)
	// right x up = -forward for a right-handed camera looking down -Z
	assertVec(t, forward.Scale(-1), right.Cross(up))
}

func TestBasisDegenerate(t *testing.T) {
	tests := []struct {
		name string
		f    *Frame
	}{
		{"eye on target", frameAt(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: 1, Y: 1, Z: 1})},
		{"looking along up", frameAt(math.Vec3{}, math.Vec3{Y: 10})},
		{"looking against up", frameAt(math.Vec3{Y: 3}, math.Vec3{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.f.Basis()
			assert.True(t, errors.Is(err, ErrDegenerateBasis))
		})
	}
}

func TestDegenerateOperationsAreNoOps(t *testing.T) {
	f := frameAt(math.Vec3{Y: -2}, math.Vec3{Y: 4})
	eye, target := f.Eye, f.Target

	f.Pan(PanRight, 1)
	f.Pan(PanUp, 1)
	f.Dolly(1)
	f.LookAround(0.3, 0.3)

	assert.Equal(t, eye, f.Eye)
	assert.Equal(t, target, f.Target)

	same := frameAt(math.Vec3{X: 2}, math.Vec3{X: 2})
	same.Orbit(0.5, 0.5)
	assert.Equal(t, math.Vec3{X: 2}, same.Eye)
}

func TestPan(t *testing.T) {
	f := NewFrame()
	f.Pan(PanRight, 2)
	assertVec(t, math.Vec3{X: 2, Z: 5}, f.Eye)
	assertVec(t, math.Vec3{X: 2}, f.Target)

	f.Pan(PanUp, -1.5)
	assertVec(t, math.Vec3{X: 2, Y: -1.5, Z: 5}, f.Eye)
	assertVec(t, math.Vec3{X: 2, Y: -1.5}, f.Target)
}

func TestPanPreservesViewVector(t *testing.T) {
	f := frameAt(math.Vec3{X: 3, Y: 2, Z: -4}, math.Vec3{X: 0.5, Y: -1, Z: 2})
	before := f.Target.Sub(f.Eye)

	f.Pan(PanRight, 0.7)
	f.Pan(PanUp, -0.3)

	assertVec(t, before, f.Target.Sub(f.Eye))
}

func TestDolly(t *testing.T) {
	f := NewFrame()
	f.Dolly(1)
	assertVec(t, math.Vec3{Z: 4}, f.Eye)
	assertVec(t, math.Vec3{Z: -1}, f.Target)
	assert.InDelta(t, 5, f.Distance(), eps)

	f.Dolly(-3)
	assertVec(t, math.Vec3{Z: 7}, f.Eye)
	assertVec(t, math.Vec3{Z: 2}, f.Target)
}

func TestOrbitHorizontal(t *testing.T) {
	f := NewFrame()
	f.Orbit(gomath.Pi/2, 0)

	// theta from +Z toward +X
	assertVec(t, math.Vec3{X: 5}, f.Eye)
	assertVec(t, math.Vec3{}, f.Target)
}

func TestOrbitKeepsTargetAndDistance(t *testing.T) {
	starts := []struct {
		eye, target math.Vec3
	}{
		{math.Vec3{Z: 5}, math.Vec3{}},
		{math.Vec3{X: 3, Y: 4, Z: -2}, math.Vec3{X: -1, Y: 0.5, Z: 7}},
		{math.Vec3{X: 1e3, Y: -20, Z: 5}, math.Vec3{X: 2, Y: 2, Z: 2}},
		{math.Vec3{X: 0.01, Y: 0.02, Z: 0.005}, math.Vec3{}},
	}
	angles := [][2]float64{
		{0.02, 0}, {-0.02, 0.02}, {1.3, -0.7}, {10, 10}, {-7.5, 3.1}, {0, -100},
	}

	for _, s := range starts {
		for _, a := range angles {
			f := frameAt(s.eye, s.target)
			dist := f.Distance()

			f.Orbit(a[0], a[1])

			assert.Equal(t, s.target, f.Target)
			assert.InEpsilon(t, dist, f.Distance(), 1e-9, "orbit(%v, %v) from %v", a[0], a[1], s.eye)
		}
	}
}

func TestOrbitPolarClamp(t *testing.T) {
	tests := []struct {
		name string
		step float64
		want float64
	}{
		{"down to the bottom pole", 1, gomath.Pi - 0.1},
		{"up to the top pole", -1, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frameAt(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: -1})

			var prev math.Vec3
			for i := 0; i < 20; i++ {
				prev = f.Eye
				f.Orbit(0, tt.step)
			}

			toEye := f.Eye.Sub(f.Target)
			phi := gomath.Acos(toEye.Y / toEye.Length())
			assert.InDelta(t, tt.want, phi, 1e-9)
			assertVec(t, prev, f.Eye)
		})
	}
}

func TestLookAroundKeepsEyeAndDistance(t *testing.T) {
	f := frameAt(math.Vec3{X: 2, Y: 1, Z: 6}, math.Vec3{X: -1, Y: 0, Z: -2})
	eye := f.Eye
	dist := f.Distance()

	for _, a := range [][2]float64{{0.02, 0}, {0, -0.02}, {0.4, 0.3}, {-1.2, 0.9}, {3, -0.5}} {
		f.LookAround(a[0], a[1])
		assert.Equal(t, eye, f.Eye)
		assert.InEpsilon(t, dist, f.Distance(), 1e-9)
	}
}

func TestLookAroundDirection(t *testing.T) {
	f := NewFrame()
	f.LookAround(gomath.Pi/2, 0)
	// Turning right by 90 degrees looks down +X
	assertVec(t, math.Vec3{X: 5, Z: 5}, f.Target)

	f = NewFrame()
	f.LookAround(0, gomath.Pi/4)
	forward := f.Target.Sub(f.Eye).Normalize()
	assertVec(t, math.Vec3{Y: gomath.Sqrt2 / 2, Z: -gomath.Sqrt2 / 2}, forward)
}

func TestLookAroundOrderHorizontalThenVertical(t *testing.T) {
	f := NewFrame()
	f.LookAround(gomath.Pi/2, gomath.Pi/4)
	forward := f.Target.Sub(f.Eye).Normalize()

	// Horizontal first gives +X, then tilt toward +Y.
	assertVec(t, math.Vec3{X: gomath.Sqrt2 / 2, Y: gomath.Sqrt2 / 2}, forward)
}

func TestAutoFrame(t *testing.T) {
	var bb math.BoundsBuilder
	bb.Extend(math.Vec3{X: -1, Y: -1, Z: -1})
	bb.Extend(math.Vec3{X: 1, Y: 3, Z: 1})
	bounds, ok := bb.Bounds()
	require.True(t, ok)

	f := NewFrame()
	f.AutoFrame(bounds, ok)

	// max extent 4 -> offset 3.2 on each axis
	assertVec(t, math.Vec3{X: 3.2, Y: 4.2, Z: 3.2}, f.Eye)
	assertVec(t, math.Vec3{Y: 1}, f.Target)

	dist := 3.2 * gomath.Sqrt(3)
	want := 2 * gomath.Atan(4/(2*dist)) * 180 / gomath.Pi
	assert.InDelta(t, want, f.FOV, 1e-9)
	assert.GreaterOrEqual(t, f.FOV, 10.0)
	assert.LessOrEqual(t, f.FOV, 120.0)
}

func TestAutoFrameAbsentBounds(t *testing.T) {
	f := NewFrame()
	before := *f
	f.AutoFrame(math.Bounds{}, false)
	assert.Equal(t, before, *f)
}

func TestAutoFramePointScene(t *testing.T) {
	var bb math.BoundsBuilder
	bb.Extend(math.Vec3{X: 2, Y: 2, Z: 2})
	bounds, ok := bb.Bounds()

	f := NewFrame()
	f.AutoFrame(bounds, ok)

	assert.Greater(t, f.Distance(), 0.0)
	_, _, _, err := f.Basis()
	assert.NoError(t, err)
}

func TestApplySpec(t *testing.T) {
	f := NewFrame()
	ok := f.ApplySpec(&formats.CameraSpec{
		Eye:    math.Vec3{X: 1, Y: 2, Z: 3},
		Target: math.Vec3{X: 0, Y: 0, Z: 0},
		Width:  1600,
		Height: 800,
	})
	require.True(t, ok)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, f.Eye)
	assert.Equal(t, 2.0, f.Aspect)

	assert.False(t, f.ApplySpec(nil))
	assert.False(t, f.ApplySpec(&formats.CameraSpec{Width: 1, Height: 1}))
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	f := frameAt(math.Vec3{X: 3, Y: 2, Z: 1}, math.Vec3{X: 0, Y: 0.5, Z: -4})
	view := f.ViewMatrix()

	eye := view.Mul4x1(mgl32.Vec4{3, 2, 1, 1})
	assert.InDelta(t, 0, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-5)
	assert.InDelta(t, 0, eye.Z(), 1e-5)

	// The target lies straight ahead on -Z in view space.
	target := view.Mul4x1(mgl32.Vec4{0, 0.5, -4, 1})
	assert.InDelta(t, 0, target.X(), 1e-4)
	assert.InDelta(t, 0, target.Y(), 1e-4)
	assert.Less(t, target.Z(), float32(0))
}

func TestProjectionMatrix(t *testing.T) {
	f := NewFrame()
	f.Aspect = 2
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	assert.Equal(t, want, f.ProjectionMatrix())
}
