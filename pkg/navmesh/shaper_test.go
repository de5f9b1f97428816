package navmesh

import (
	"testing"

	"github.com/Faultbox/bifrost/pkg/geom"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNopShaper(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 5, 0}, {2, 0, 0}}
	got := NopShaper{}.Shape(nil, nil, pts)
	if len(got) != 3 || got[1] != pts[1] {
		t.Errorf("Shape() = %v, want input unchanged", got)
	}
}

func TestSmoothShaper_PullsInteriorDown(t *testing.T) {
	pts := []mgl32.Vec3{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	}
	got := SmoothShaper{Passes: 2}.Shape(nil, nil, pts)

	// One pass averages the spike to 5, the second to 2.5.
	if y := got[1].Y(); y != 2.5 {
		t.Errorf("interior y = %v, want 2.5", y)
	}
	if got[0].Y() != 0 || got[2].Y() != 0 {
		t.Errorf("endpoints moved: %v", got)
	}
}

func TestSmoothShaper_KeepsEndpoints(t *testing.T) {
	pts := []mgl32.Vec3{
		{0, 0, 0},
		{1, 3, 1},
		{2, -2, 0},
		{4, 0, 2},
	}
	first, last := pts[0], pts[len(pts)-1]

	got := SmoothShaper{Passes: 2}.Shape(nil, nil, pts)
	if got[0] != first {
		t.Errorf("first = %v, want %v", got[0], first)
	}
	if got[len(got)-1] != last {
		t.Errorf("last = %v, want %v", got[len(got)-1], last)
	}
}

func TestSmoothShaper_StraightLineStable(t *testing.T) {
	pts := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
	}
	got := SmoothShaper{Passes: 2}.Shape(nil, nil, pts)

	// The interior point is the midpoint of its neighbors, so the
	// weighted average reproduces it.
	if got[1] != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("interior = %v, want unchanged (1, 0, 1)", got[1])
	}
}

func TestSmoothShaper_ShortPath(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {7, 7, 7}}
	got := SmoothShaper{Passes: 2}.Shape(nil, nil, pts)
	if got[0] != pts[0] || got[1] != pts[1] {
		t.Errorf("Shape() = %v, want two points unchanged", got)
	}
}

func TestFunnelShaper_StraightCorridor(t *testing.T) {
	m := Bake(flatStrip(3), 0.5, 45)
	m.SetPathShaper(FunnelShaper{})

	start := mgl32.Vec3{0.2, 0, 0.5}
	goal := mgl32.Vec3{2.8, 0, 0.5}
	path := m.FindPath(start, goal)

	// Nothing blocks the straight line, so string pulling removes
	// every interior waypoint.
	if len(path) != 2 {
		t.Fatalf("FindPath() returned %d points, want 2: %v", len(path), path)
	}
	if path[0] != start || path[1] != goal {
		t.Errorf("path = %v, want [%v %v]", path, start, goal)
	}
}

func TestFunnelShaper_CornerKeepsInnerVertex(t *testing.T) {
	// An L of three quads: two along +X, one stacked on +Z. The bend's
	// inner corner sits at (1,0,1).
	soup := flatStrip(2)
	soup = append(soup,
		geom.NewTriangle(mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0, 2}, mgl32.Vec3{2, 0, 1}),
		geom.NewTriangle(mgl32.Vec3{2, 0, 1}, mgl32.Vec3{1, 0, 2}, mgl32.Vec3{2, 0, 2}),
	)
	m := Bake(soup, 0.5, 45)
	m.SetPathShaper(FunnelShaper{})

	start := mgl32.Vec3{0.3, 0, 0.3}
	goal := mgl32.Vec3{1.5, 0, 1.8}
	path := m.FindPath(start, goal)

	if len(path) != 3 {
		t.Fatalf("FindPath() returned %d points, want 3: %v", len(path), path)
	}
	corner := mgl32.Vec3{1, 0, 1}
	if !path[1].ApproxEqualThreshold(corner, 1e-5) {
		t.Errorf("path[1] = %v, want the inner corner %v", path[1], corner)
	}
	if path[0] != start || path[2] != goal {
		t.Errorf("endpoints = %v and %v, want %v and %v", path[0], path[2], start, goal)
	}
}

func TestFunnelShaper_ShortInput(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 0, 1}}
	got := FunnelShaper{}.Shape(nil, nil, pts)
	if len(got) != 2 || got[0] != pts[0] || got[1] != pts[1] {
		t.Errorf("Shape() = %v, want input unchanged", got)
	}
}
