package math

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min    Vec3
	Max    Vec3
	Center Vec3
	Size   Vec3
}

// BoundsBuilder accumulates points into a running min/max.
// The zero value is empty.
type BoundsBuilder struct {
	min, max Vec3
	count    int
}

// Extend grows the box to contain p.
func (b *BoundsBuilder) Extend(p Vec3) {
	if b.count == 0 {
		b.min, b.max = p, p
		b.count = 1
		return
	}
	b.min = Vec3{math.Min(b.min.X, p.X), math.Min(b.min.Y, p.Y), math.Min(b.min.Z, p.Z)}
	b.max = Vec3{math.Max(b.max.X, p.X), math.Max(b.max.Y, p.Y), math.Max(b.max.Z, p.Z)}
	b.count++
}

// Count returns how many points were added.
func (b *BoundsBuilder) Count() int {
	return b.count
}

// Bounds returns the accumulated box. ok is false when no point was added.
func (b *BoundsBuilder) Bounds() (Bounds, bool) {
	if b.count == 0 {
		return Bounds{}, false
	}
	return Bounds{
		Min:    b.min,
		Max:    b.max,
		Center: b.min.Add(b.max).Scale(0.5),
		Size:   b.max.Sub(b.min),
	}, true
}

// Contains reports whether p lies inside the box (inclusive).
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// MaxExtent returns the largest edge length.
func (b Bounds) MaxExtent() float64 {
	return b.Size.MaxComponent()
}
