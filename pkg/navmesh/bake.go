package navmesh

import "github.com/Faultbox/bifrost/pkg/geom"

const (
	// degenerateNormalSqr rejects triangles whose edge cross product is
	// too short to define a face.
	degenerateNormalSqr = 1e-6
	// weldDist is the vertex distance within which two triangle corners
	// count as the same position for adjacency.
	weldDist = 1e-3
)

// Bake filters a triangle soup down to walkable faces and links
// adjacent faces into a traversal graph.
//
// A triangle is dropped when its normal is degenerate, faces downward,
// or leans more than maxSlopeDeg degrees away from vertical; a face at
// exactly maxSlopeDeg is kept. maxStep is recorded for callers doing
// their own step-height checks and is not enforced here.
//
// Baking never fails. An empty or fully filtered soup produces an
// empty mesh whose queries all return empty results.
func Bake(tris []geom.Triangle, maxStep, maxSlopeDeg float32) *NavMesh {
	m := &NavMesh{
		maxStep:     maxStep,
		maxSlopeDeg: maxSlopeDeg,
		shaper:      defaultShaper,
	}

	for i, tri := range tris {
		n := tri.Normal()
		if n.LenSqr() < degenerateNormalSqr {
			continue
		}
		unit := n.Normalize()
		if unit.Dot(up) < 0 {
			continue
		}
		if slopeDegrees(unit) > maxSlopeDeg {
			continue
		}
		m.tris = append(m.tris, NavTri{
			Idx:    i,
			Verts:  tri.Vertices(),
			Normal: unit,
			Center: tri.Center(),
		})
	}

	linkNeighbors(m.tris)
	return m
}

// linkNeighbors runs the all-pairs shared-edge test and fills the
// neighbor lists symmetrically. Quadratic in triangle count, which is
// acceptable for moderate meshes; large soups pay for it at bake time,
// not query time.
func linkNeighbors(tris []NavTri) {
	for i := 0; i < len(tris); i++ {
		for j := i + 1; j < len(tris); j++ {
			if shareEdge(&tris[i], &tris[j]) {
				tris[i].Neighbors = append(tris[i].Neighbors, j)
				tris[j].Neighbors = append(tris[j].Neighbors, i)
			}
		}
	}
}

// shareEdge reports whether at least two corner pairs of a and b sit
// within weldDist of each other.
func shareEdge(a, b *NavTri) bool {
	shared := 0
	for _, va := range a.Verts {
		for _, vb := range b.Verts {
			if va.Sub(vb).Len() <= weldDist {
				shared++
			}
		}
	}
	return shared >= 2
}
