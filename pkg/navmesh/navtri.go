// Package navmesh bakes walkable triangle soups into traversal graphs
// and answers shortest-path queries over them.
package navmesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bifrost/pkg/geom"
)

// up is the world up axis used for slope and walkability checks.
var up = mgl32.Vec3{0, 1, 0}

// NavTri is a node in the baked traversal graph.
type NavTri struct {
	// Idx is the triangle's position in the soup it was baked from.
	// Filtering leaves gaps, so Idx is not dense over the mesh.
	Idx int
	// Verts holds the three vertex positions.
	Verts [3]mgl32.Vec3
	// Normal is the unit face normal.
	Normal mgl32.Vec3
	// Center is the centroid.
	Center mgl32.Vec3
	// Neighbors lists positions in the baked mesh (not soup indices) of
	// triangles sharing an edge. Only mutated while baking.
	Neighbors []int
}

// NeighborCount returns the number of adjacent triangles.
func (t *NavTri) NeighborCount() int {
	return len(t.Neighbors)
}

// HasNeighbor reports whether mesh position j is adjacent.
func (t *NavTri) HasNeighbor(j int) bool {
	for _, n := range t.Neighbors {
		if n == j {
			return true
		}
	}
	return false
}

// IsIsolated reports whether the triangle has no neighbors.
func (t *NavTri) IsIsolated() bool {
	return len(t.Neighbors) == 0
}

// IsEdge reports whether the triangle sits on the mesh boundary,
// i.e. has fewer than three neighbors.
func (t *NavTri) IsEdge() bool {
	return len(t.Neighbors) < 3
}

// SlopeDegrees returns the angle between the face normal and world up.
func (t *NavTri) SlopeDegrees() float32 {
	return slopeDegrees(t.Normal)
}

// IsWalkable reports whether the face points upward at all.
func (t *NavTri) IsWalkable() bool {
	return t.Normal.Y() > 0
}

// Area returns the triangle area.
func (t *NavTri) Area() float32 {
	return geom.TriangleFromVertices(t.Verts).Area()
}

// DistanceTo returns the distance from p to the centroid.
func (t *NavTri) DistanceTo(p mgl32.Vec3) float32 {
	return t.Center.Sub(p).Len()
}

// DistanceSquaredTo returns the squared distance from p to the centroid.
func (t *NavTri) DistanceSquaredTo(p mgl32.Vec3) float32 {
	return t.Center.Sub(p).LenSqr()
}

// String returns a human-readable description.
func (t *NavTri) String() string {
	return fmt.Sprintf("NavTri(idx=%d, neighbors=%d)", t.Idx, len(t.Neighbors))
}

// slopeDegrees returns the angle in degrees between a unit normal and
// world up, clamped against numeric drift.
func slopeDegrees(n mgl32.Vec3) float32 {
	dot := mgl32.Clamp(n.Dot(up), -1, 1)
	return mgl32.RadToDeg(float32(math.Acos(float64(dot))))
}
