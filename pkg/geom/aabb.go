package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box given by its min and max corners.
type AABB struct {
	Min, Max mgl32.Vec3
}

// NewAABB creates a box from its min and max corners.
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromCenterHalfExtents creates a box around center extending half
// in each direction along every axis.
func AABBFromCenterHalfExtents(center, half mgl32.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Contains reports whether p lies inside the box. Points exactly on a
// face count as contained.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Intersects reports whether the boxes overlap. Boxes touching at a
// face count as intersecting.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Merge returns the smallest box covering both boxes.
func (b AABB) Merge(o AABB) AABB {
	return AABB{
		Min: mgl32.Vec3{
			min(b.Min.X(), o.Min.X()),
			min(b.Min.Y(), o.Min.Y()),
			min(b.Min.Z(), o.Min.Z()),
		},
		Max: mgl32.Vec3{
			max(b.Max.X(), o.Max.X()),
			max(b.Max.Y(), o.Max.Y()),
			max(b.Max.Z(), o.Max.Z()),
		},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfExtents returns half the extent along each axis.
func (b AABB) HalfExtents() mgl32.Vec3 {
	return b.Size().Mul(0.5)
}

// Volume returns the product of the three extents.
func (b AABB) Volume() float32 {
	s := b.Size()
	return s.X() * s.Y() * s.Z()
}

// SurfaceArea returns the total area of the six faces.
func (b AABB) SurfaceArea() float32 {
	s := b.Size()
	return 2 * (s.X()*s.Y() + s.Y()*s.Z() + s.Z()*s.X())
}

// LongestAxis returns the largest extent.
func (b AABB) LongestAxis() float32 {
	s := b.Size()
	return max(s.X(), s.Y(), s.Z())
}

// ShortestAxis returns the smallest extent.
func (b AABB) ShortestAxis() float32 {
	s := b.Size()
	return min(s.X(), s.Y(), s.Z())
}

// Expand returns a box grown outward by margin on every face.
func (b AABB) Expand(margin float32) AABB {
	m := mgl32.Vec3{margin, margin, margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// IsEmpty reports whether the box has no volume, i.e. any axis extent
// is zero or negative.
func (b AABB) IsEmpty() bool {
	s := b.Size()
	return s.X() <= 0 || s.Y() <= 0 || s.Z() <= 0
}

// DistanceToPoint returns the distance from the box center to p.
func (b AABB) DistanceToPoint(p mgl32.Vec3) float32 {
	return b.Center().Sub(p).Len()
}

// String returns a human-readable description.
func (b AABB) String() string {
	return fmt.Sprintf("AABB(min=%v, max=%v)", b.Min, b.Max)
}
