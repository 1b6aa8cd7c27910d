package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero vector", z)
	}
}

func TestVec3Axis(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float64{7, 8, 9} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}
	if got := v.MaxComponent(); got != 9 {
		t.Errorf("MaxComponent() = %v, want 9", got)
	}
}

func TestVec3GL(t *testing.T) {
	g := Vec3{1.5, -2, 0.25}.GL()
	if g.X() != 1.5 || g.Y() != -2 || g.Z() != 0.25 {
		t.Errorf("GL() = %v", g)
	}
}

func TestBoundsBuilder(t *testing.T) {
	var b BoundsBuilder
	if _, ok := b.Bounds(); ok {
		t.Fatal("empty builder should report no bounds")
	}

	points := []Vec3{{1, 2, 3}, {-1, 5, 0}, {4, -2, 1}}
	for _, p := range points {
		b.Extend(p)
	}

	bb, ok := b.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if bb.Min != (Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v", bb.Min)
	}
	if bb.Max != (Vec3{4, 5, 3}) {
		t.Errorf("Max = %v", bb.Max)
	}
	if bb.Center != (Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("Center = %v", bb.Center)
	}
	if bb.Size != (Vec3{5, 7, 3}) {
		t.Errorf("Size = %v", bb.Size)
	}
	if bb.MaxExtent() != 7 {
		t.Errorf("MaxExtent = %v", bb.MaxExtent())
	}
	for _, p := range points {
		if !bb.Contains(p) {
			t.Errorf("bounds %v should contain %v", bb, p)
		}
	}
	if b.Count() != 3 {
		t.Errorf("Count = %d, want 3", b.Count())
	}
}
