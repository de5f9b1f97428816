package navmesh

import (
	"fmt"
	"strings"

	"github.com/Faultbox/bifrost/pkg/geom"
)

// NavMesh is a baked navigation mesh: an indexed triangle collection
// with symmetric adjacency, the bake parameters, and bookkeeping for
// dirty regions and rebakes.
//
// A NavMesh is not safe for concurrent use. Queries only read, but
// InvalidateRegion, RebakeDirtyRegions, PartialRebake,
// ClearDirtyRegions and SetPathShaper mutate; callers integrating the
// mesh into a threaded engine must serialize writers against readers.
// No reference into the mesh stays valid across a rebake.
type NavMesh struct {
	tris        []NavTri
	maxStep     float32
	maxSlopeDeg float32
	dirty       []geom.AABB
	rebakes     int
	shaper      PathShaper
}

// Triangles returns the baked triangle collection. Callers must treat
// it as read-only.
func (m *NavMesh) Triangles() []NavTri {
	return m.tris
}

// TriangleAt returns the triangle at mesh position i, or nil when i is
// out of range. The returned triangle is read-only.
func (m *NavMesh) TriangleAt(i int) *NavTri {
	if i < 0 || i >= len(m.tris) {
		return nil
	}
	return &m.tris[i]
}

// TriangleCount returns the number of baked triangles.
func (m *NavMesh) TriangleCount() int {
	return len(m.tris)
}

// EdgeCount returns the number of adjacency links. Each shared edge is
// recorded in both triangles, so the neighbor total halves.
func (m *NavMesh) EdgeCount() int {
	total := 0
	for i := range m.tris {
		total += len(m.tris[i].Neighbors)
	}
	return total / 2
}

// IsolatedCount returns the number of triangles with no neighbors.
func (m *NavMesh) IsolatedCount() int {
	count := 0
	for i := range m.tris {
		if m.tris[i].IsIsolated() {
			count++
		}
	}
	return count
}

// AverageNeighborCount returns the mean neighbor-list length, or 0 for
// an empty mesh.
func (m *NavMesh) AverageNeighborCount() float32 {
	if len(m.tris) == 0 {
		return 0
	}
	total := 0
	for i := range m.tris {
		total += len(m.tris[i].Neighbors)
	}
	return float32(total) / float32(len(m.tris))
}

// TotalArea returns the summed area of all baked triangles.
func (m *NavMesh) TotalArea() float32 {
	var total float32
	for i := range m.tris {
		total += m.tris[i].Area()
	}
	return total
}

// Bounds returns the bounding box of the whole mesh. The second return
// is false for an empty mesh.
func (m *NavMesh) Bounds() (geom.AABB, bool) {
	if len(m.tris) == 0 {
		return geom.AABB{}, false
	}
	bounds := geom.TriangleFromVertices(m.tris[0].Verts).Bounds()
	for i := 1; i < len(m.tris); i++ {
		bounds = bounds.Merge(geom.TriangleFromVertices(m.tris[i].Verts).Bounds())
	}
	return bounds, true
}

// MaxStep returns the stored step-height parameter.
func (m *NavMesh) MaxStep() float32 {
	return m.maxStep
}

// MaxSlopeDegrees returns the slope limit the mesh was baked with.
func (m *NavMesh) MaxSlopeDegrees() float32 {
	return m.maxSlopeDeg
}

// SetPathShaper swaps the post-processing strategy applied by
// FindPath. Passing nil restores the default two-pass smoother.
func (m *NavMesh) SetPathShaper(s PathShaper) {
	if s == nil {
		s = defaultShaper
	}
	m.shaper = s
}

// Summary returns a multi-line human-readable overview of the mesh.
func (m *NavMesh) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NavMesh: %d triangles, %d edges\n", m.TriangleCount(), m.EdgeCount())
	fmt.Fprintf(&b, "  isolated: %d, avg neighbors: %.2f\n", m.IsolatedCount(), m.AverageNeighborCount())
	fmt.Fprintf(&b, "  total area: %.2f\n", m.TotalArea())
	if bounds, ok := m.Bounds(); ok {
		fmt.Fprintf(&b, "  bounds: %v\n", bounds)
	}
	fmt.Fprintf(&b, "  max step: %g, max slope: %g deg", m.maxStep, m.maxSlopeDeg)
	return b.String()
}

// String returns a one-line description.
func (m *NavMesh) String() string {
	return fmt.Sprintf("NavMesh(%d triangles, %d dirty regions)", len(m.tris), len(m.dirty))
}
