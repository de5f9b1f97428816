package navmesh

import "github.com/go-gl/mathgl/mgl32"

// PathShaper post-processes the waypoints produced by FindPath.
// tris is the triangle-index path the waypoints were derived from and
// pts the materialized points; pts always starts at the query start
// and ends at the query goal, and shapers must preserve both.
type PathShaper interface {
	Shape(m *NavMesh, tris []int, pts []mgl32.Vec3) []mgl32.Vec3
}

// defaultShaper is applied by freshly baked meshes.
var defaultShaper PathShaper = SmoothShaper{Passes: 2}

// NopShaper returns paths untouched.
type NopShaper struct{}

// Shape implements PathShaper.
func (NopShaper) Shape(_ *NavMesh, _ []int, pts []mgl32.Vec3) []mgl32.Vec3 {
	return pts
}

// SmoothShaper rounds corners with a 3-tap weighted average applied in
// place over interior points; endpoints never move. Each pass feeds
// already-updated predecessors into later taps. The filter knows
// nothing about mesh boundaries, so tight corners can pull waypoints
// off the walkable surface; use FunnelShaper when containment matters.
type SmoothShaper struct {
	Passes int
}

// Shape implements PathShaper.
func (s SmoothShaper) Shape(_ *NavMesh, _ []int, pts []mgl32.Vec3) []mgl32.Vec3 {
	if len(pts) < 3 {
		return pts
	}
	for pass := 0; pass < s.Passes; pass++ {
		for i := 1; i < len(pts)-1; i++ {
			pts[i] = pts[i-1].Mul(0.25).Add(pts[i].Mul(0.5)).Add(pts[i+1].Mul(0.25))
		}
	}
	return pts
}

// FunnelShaper straightens paths by string pulling across the shared
// edges between consecutive path triangles, so waypoints stay on the
// mesh. Corners are pulled in the XZ plane; heights come from the
// portal vertices.
type FunnelShaper struct{}

// Shape implements PathShaper.
func (FunnelShaper) Shape(m *NavMesh, tris []int, pts []mgl32.Vec3) []mgl32.Vec3 {
	if len(pts) < 3 || len(tris) < 2 {
		return pts
	}
	start := pts[0]
	goal := pts[len(pts)-1]

	type portal struct {
		left, right mgl32.Vec3
	}
	portals := make([]portal, 0, len(tris)+1)
	portals = append(portals, portal{start, start})
	for k := 0; k+1 < len(tris); k++ {
		l, r, ok := portalBetween(&m.tris[tris[k]], &m.tris[tris[k+1]])
		if !ok {
			// Malformed adjacency, keep the centroid path
			return pts
		}
		portals = append(portals, portal{l, r})
	}
	portals = append(portals, portal{goal, goal})

	out := []mgl32.Vec3{start}
	apex, left, right := start, start, start
	apexIdx, leftIdx, rightIdx := 0, 0, 0

	for i := 1; i < len(portals); i++ {
		pl, pr := portals[i].left, portals[i].right

		// Tighten the right side of the funnel.
		if triArea2(apex, right, pr) <= 0 {
			if vEqual(apex, right) || triArea2(apex, left, pr) > 0 {
				right = pr
				rightIdx = i
			} else {
				// Right swept past left: commit the left corner and
				// restart the scan from it.
				out = append(out, left)
				apex = left
				apexIdx = leftIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}

		// Tighten the left side of the funnel.
		if triArea2(apex, left, pl) >= 0 {
			if vEqual(apex, left) || triArea2(apex, right, pl) < 0 {
				left = pl
				leftIdx = i
			} else {
				out = append(out, right)
				apex = right
				apexIdx = rightIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	if !vEqual(out[len(out)-1], goal) {
		out = append(out, goal)
	}
	return out
}

// portalBetween returns the shared edge between consecutive path
// triangles as (left, right) relative to travel out of from. Walkable
// triangles wind counter-clockwise seen from above, so the directed
// shared edge in from's winding already carries the orientation.
func portalBetween(from, to *NavTri) (left, right mgl32.Vec3, ok bool) {
	for e := 0; e < 3; e++ {
		u := from.Verts[e]
		v := from.Verts[(e+1)%3]
		if weldedToAny(u, to) && weldedToAny(v, to) {
			return u, v, true
		}
	}
	return mgl32.Vec3{}, mgl32.Vec3{}, false
}

// weldedToAny reports whether p coincides with any vertex of t within
// the adjacency tolerance.
func weldedToAny(p mgl32.Vec3, t *NavTri) bool {
	for _, v := range t.Verts {
		if p.Sub(v).Len() <= weldDist {
			return true
		}
	}
	return false
}

// triArea2 is twice the signed area of triangle abc projected onto the
// XZ plane.
func triArea2(a, b, c mgl32.Vec3) float32 {
	abx := b.X() - a.X()
	abz := b.Z() - a.Z()
	acx := c.X() - a.X()
	acz := c.Z() - a.Z()
	return acx*abz - abx*acz
}

// vEqual reports whether two points coincide within the adjacency
// tolerance.
func vEqual(a, b mgl32.Vec3) bool {
	return a.Sub(b).LenSqr() < weldDist*weldDist
}
