package navmesh

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl32"
)

// pathNode carries the A* bookkeeping for one triangle.
type pathNode struct {
	tri    int     // position in the mesh collection
	g      float32 // cost from start
	h      float32 // heuristic (centroid distance to goal)
	f      float32 // total cost (g + h)
	parent *pathNode
	index  int // index in heap
}

// pathHeap is a priority queue ordered by ascending f.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*pathNode)
	node.index = n
	*h = append(*h, node)
}

func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// NearestTriangle returns the mesh position of the triangle whose
// centroid is closest to p. The second return is false for an empty
// mesh.
func (m *NavMesh) NearestTriangle(p mgl32.Vec3) (int, bool) {
	if len(m.tris) == 0 {
		return 0, false
	}
	best := 0
	bestDist := m.tris[0].DistanceSquaredTo(p)
	for i := 1; i < len(m.tris); i++ {
		if d := m.tris[i].DistanceSquaredTo(p); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, true
}

// FindPath returns waypoints leading from start to goal across the
// mesh. The first point is always exactly start and the last exactly
// goal; interior waypoints are triangle centroids run through the
// mesh's path shaper. An empty result means no traversable route
// exists (empty mesh or disconnected triangles) and should be treated
// as "no path", not as an error.
func (m *NavMesh) FindPath(start, goal mgl32.Vec3) []mgl32.Vec3 {
	startTri, ok := m.NearestTriangle(start)
	if !ok {
		return nil
	}
	goalTri, _ := m.NearestTriangle(goal)

	triPath := m.searchTriPath(startTri, goalTri)
	if triPath == nil {
		return nil
	}

	pts := make([]mgl32.Vec3, 0, len(triPath))
	pts = append(pts, start)
	for i := 1; i+1 < len(triPath); i++ {
		pts = append(pts, m.tris[triPath[i]].Center)
	}
	pts = append(pts, goal)

	if m.shaper != nil {
		pts = m.shaper.Shape(m, triPath, pts)
	}
	return pts
}

// searchTriPath runs A* over triangle positions. Edge cost and
// heuristic are both centroid distances, so the heuristic never
// overestimates and the first pop of the goal is optimal. Returns nil
// when the goal is unreachable.
func (m *NavMesh) searchTriPath(start, goal int) []int {
	goalCenter := m.tris[goal].Center

	openSet := &pathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*pathNode)

	startNode := &pathNode{
		tri: start,
		g:   0,
		h:   m.tris[start].Center.Sub(goalCenter).Len(),
	}
	startNode.f = startNode.g + startNode.h
	heap.Push(openSet, startNode)
	nodeMap[start] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode)

		if current.tri == goal {
			return reconstructTriPath(current)
		}

		closedSet[current.tri] = true

		for _, nb := range m.tris[current.tri].Neighbors {
			if closedSet[nb] {
				continue
			}

			g := current.g + m.tris[current.tri].Center.Sub(m.tris[nb].Center).Len()

			neighbor, exists := nodeMap[nb]
			if !exists {
				neighbor = &pathNode{
					tri:    nb,
					g:      g,
					h:      m.tris[nb].Center.Sub(goalCenter).Len(),
					parent: current,
				}
				neighbor.f = neighbor.g + neighbor.h
				nodeMap[nb] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.g {
				// Found a cheaper route to an open node
				neighbor.g = g
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parent = current
				heap.Fix(openSet, neighbor.index)
			}
		}
	}

	// Open set exhausted without reaching the goal
	return nil
}

// reconstructTriPath walks parent links back to the start and reverses.
func reconstructTriPath(node *pathNode) []int {
	var path []int
	for node != nil {
		path = append(path, node.tri)
		node = node.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
