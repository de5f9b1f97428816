// Package geom provides geometry primitives for navigation meshes.
package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// degenerateArea is the area below which a triangle counts as degenerate.
const degenerateArea = 1e-6

// Triangle is a single surface face with vertices in world space.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(a, b, c mgl32.Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// TriangleFromVertices creates a triangle from a vertex array.
func TriangleFromVertices(verts [3]mgl32.Vec3) Triangle {
	return Triangle{A: verts[0], B: verts[1], C: verts[2]}
}

// Vertices returns the three vertices in declaration order.
func (t Triangle) Vertices() [3]mgl32.Vec3 {
	return [3]mgl32.Vec3{t.A, t.B, t.C}
}

// Center returns the centroid, the unweighted average of the vertices.
func (t Triangle) Center() mgl32.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Normal returns the unnormalized face normal cross(B-A, C-A).
// Its magnitude is twice the triangle area.
func (t Triangle) Normal() mgl32.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// UnitNormal returns the normalized face normal, or the zero vector
// when the triangle is degenerate.
func (t Triangle) UnitNormal() mgl32.Vec3 {
	n := t.Normal()
	if n.LenSqr() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Area returns the triangle area.
func (t Triangle) Area() float32 {
	return t.Normal().Len() / 2
}

// IsDegenerate reports whether the triangle has near-zero area.
func (t Triangle) IsDegenerate() bool {
	return t.Area() < degenerateArea
}

// EdgeLengths returns the lengths of edges AB, BC and CA in that order.
func (t Triangle) EdgeLengths() [3]float32 {
	return [3]float32{
		t.B.Sub(t.A).Len(),
		t.C.Sub(t.B).Len(),
		t.A.Sub(t.C).Len(),
	}
}

// Perimeter returns the sum of the edge lengths.
func (t Triangle) Perimeter() float32 {
	e := t.EdgeLengths()
	return e[0] + e[1] + e[2]
}

// MinEdgeLength returns the shortest edge length.
func (t Triangle) MinEdgeLength() float32 {
	e := t.EdgeLengths()
	return min(e[0], e[1], e[2])
}

// MaxEdgeLength returns the longest edge length.
func (t Triangle) MaxEdgeLength() float32 {
	e := t.EdgeLengths()
	return max(e[0], e[1], e[2])
}

// Bounds returns the axis-aligned bounding box of the triangle.
func (t Triangle) Bounds() AABB {
	return AABB{
		Min: mgl32.Vec3{
			min(t.A.X(), t.B.X(), t.C.X()),
			min(t.A.Y(), t.B.Y(), t.C.Y()),
			min(t.A.Z(), t.B.Z(), t.C.Z()),
		},
		Max: mgl32.Vec3{
			max(t.A.X(), t.B.X(), t.C.X()),
			max(t.A.Y(), t.B.Y(), t.C.Y()),
			max(t.A.Z(), t.B.Z(), t.C.Z()),
		},
	}
}

// String returns a human-readable description.
func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(a=%v, b=%v, c=%v)", t.A, t.B, t.C)
}
