package navmesh

import (
	"github.com/Faultbox/bifrost/pkg/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// InvalidateRegion marks a world-space box as stale. Overlapping or
// touching an existing dirty region grows that region to the merged
// bounds of both; otherwise the box is tracked as a new region. Only
// the first overlapping region absorbs the box, regions are not
// re-merged against each other afterwards.
func (m *NavMesh) InvalidateRegion(region geom.AABB) {
	for i := range m.dirty {
		if m.dirty[i].Intersects(region) {
			m.dirty[i] = m.dirty[i].Merge(region)
			return
		}
	}
	m.dirty = append(m.dirty, region)
}

// NeedsRebake reports whether any dirty regions are pending.
func (m *NavMesh) NeedsRebake() bool {
	return len(m.dirty) > 0
}

// DirtyRegionCount returns the number of pending dirty regions.
func (m *NavMesh) DirtyRegionCount() int {
	return len(m.dirty)
}

// DirtyRegions returns a copy of the pending dirty regions.
func (m *NavMesh) DirtyRegions() []geom.AABB {
	out := make([]geom.AABB, len(m.dirty))
	copy(out, m.dirty)
	return out
}

// ClearDirtyRegions discards all pending dirty regions without
// rebaking. The rebake counter is left untouched.
func (m *NavMesh) ClearDirtyRegions() {
	m.dirty = nil
}

// RebakeDirtyRegions rebuilds the whole mesh from tris using the bake
// parameters the mesh was created with, then clears the dirty set and
// bumps the rebake counter. Does nothing when no regions are pending.
// Triangle references held from before the call are invalid after it.
func (m *NavMesh) RebakeDirtyRegions(tris []geom.Triangle) {
	if len(m.dirty) == 0 {
		return
	}
	rebaked := Bake(tris, m.maxStep, m.maxSlopeDeg)
	m.tris = rebaked.tris
	m.dirty = nil
	m.rebakes++
}

// PartialRebake counts the triangles of tris whose bounds intersect a
// pending dirty region, rebuilds the mesh when any do, and returns the
// count. Rebuilding goes through RebakeDirtyRegions, so the whole mesh
// is rebaked; the count only reports how much of the soup was stale.
// When no regions are pending the mesh is left untouched and the count
// is zero.
func (m *NavMesh) PartialRebake(tris []geom.Triangle) int {
	if len(m.dirty) == 0 {
		return 0
	}
	affected := 0
	for _, t := range tris {
		bounds := t.Bounds()
		for _, region := range m.dirty {
			if region.Intersects(bounds) {
				affected++
				break
			}
		}
	}
	if affected > 0 {
		m.RebakeDirtyRegions(tris)
	}
	return affected
}

// PathCrossesDirtyRegion reports whether any waypoint of path lies
// inside a pending dirty region. Paths produced before an invalidation
// can be checked with this before being trusted.
func (m *NavMesh) PathCrossesDirtyRegion(path []mgl32.Vec3) bool {
	for _, p := range path {
		for _, region := range m.dirty {
			if region.Contains(p) {
				return true
			}
		}
	}
	return false
}

// RebakeCount returns how many times the mesh has been rebaked.
func (m *NavMesh) RebakeCount() int {
	return m.rebakes
}
