package geom

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTriangle_Center(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{3, 0, 0},
		mgl32.Vec3{0, 3, 0},
	)

	got := tri.Center()
	want := mgl32.Vec3{1, 1, 0}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestTriangle_Normal(t *testing.T) {
	// CCW winding seen from above, normal points up
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, 1},
		mgl32.Vec3{1, 0, 0},
	)

	got := tri.Normal()
	want := mgl32.Vec3{0, 1, 0}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Normal() = %v, want %v", got, want)
	}
}

func TestTriangle_UnitNormal(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, 2},
		mgl32.Vec3{2, 0, 0},
	)

	n := tri.UnitNormal()
	if l := n.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("UnitNormal().Len() = %v, want ~1", l)
	}
	if n.Y() <= 0 {
		t.Errorf("UnitNormal() = %v, want upward-facing", n)
	}
}

func TestTriangle_UnitNormal_Degenerate(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 1, 1},
		mgl32.Vec3{2, 2, 2},
	)

	got := tri.UnitNormal()
	if got != (mgl32.Vec3{}) {
		t.Errorf("UnitNormal() of degenerate triangle = %v, want zero vector", got)
	}
}

func TestTriangle_Area(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want float32
	}{
		{
			name: "unit right triangle",
			tri: NewTriangle(
				mgl32.Vec3{0, 0, 0},
				mgl32.Vec3{0, 0, 1},
				mgl32.Vec3{1, 0, 0},
			),
			want: 0.5,
		},
		{
			name: "3-4-5 right triangle",
			tri: NewTriangle(
				mgl32.Vec3{0, 0, 0},
				mgl32.Vec3{3, 0, 0},
				mgl32.Vec3{3, 4, 0},
			),
			want: 6,
		},
		{
			name: "collinear",
			tri: NewTriangle(
				mgl32.Vec3{0, 0, 0},
				mgl32.Vec3{1, 0, 0},
				mgl32.Vec3{2, 0, 0},
			),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.Area()
			if !mgl32.FloatEqualThreshold(got, tt.want, 1e-5) {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangle_IsDegenerate(t *testing.T) {
	collinear := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 1, 1},
		mgl32.Vec3{2, 2, 2},
	)
	if !collinear.IsDegenerate() {
		t.Error("expected collinear triangle to be degenerate")
	}

	proper := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 0, 1},
	)
	if proper.IsDegenerate() {
		t.Error("expected proper triangle to not be degenerate")
	}
}

func TestTriangle_EdgeLengths(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{3, 0, 0},
		mgl32.Vec3{3, 4, 0},
	)

	got := tri.EdgeLengths()
	want := [3]float32{3, 4, 5} // AB, BC, CA
	for i := range want {
		if !mgl32.FloatEqualThreshold(got[i], want[i], 1e-5) {
			t.Errorf("EdgeLengths()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if p := tri.Perimeter(); !mgl32.FloatEqualThreshold(p, 12, 1e-5) {
		t.Errorf("Perimeter() = %v, want 12", p)
	}
	if m := tri.MinEdgeLength(); !mgl32.FloatEqualThreshold(m, 3, 1e-5) {
		t.Errorf("MinEdgeLength() = %v, want 3", m)
	}
	if m := tri.MaxEdgeLength(); !mgl32.FloatEqualThreshold(m, 5, 1e-5) {
		t.Errorf("MaxEdgeLength() = %v, want 5", m)
	}
}

func TestTriangle_Bounds(t *testing.T) {
	tri := NewTriangle(
		mgl32.Vec3{3, 1, 7},
		mgl32.Vec3{1, 5, 2},
		mgl32.Vec3{8, 3, 4},
	)

	got := tri.Bounds()
	wantMin := mgl32.Vec3{1, 1, 2}
	wantMax := mgl32.Vec3{8, 5, 7}
	if got.Min != wantMin {
		t.Errorf("Bounds().Min = %v, want %v", got.Min, wantMin)
	}
	if got.Max != wantMax {
		t.Errorf("Bounds().Max = %v, want %v", got.Max, wantMax)
	}
}

func TestTriangleFromVertices(t *testing.T) {
	verts := [3]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	tri := TriangleFromVertices(verts)

	if tri.Vertices() != verts {
		t.Errorf("Vertices() = %v, want %v", tri.Vertices(), verts)
	}
}

func TestTriangle_String(t *testing.T) {
	tri := NewTriangle(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1})

	s := tri.String()
	if s == "" {
		t.Fatal("String() returned empty string")
	}
	if !strings.Contains(s, "Triangle") {
		t.Errorf("String() = %q, want it to contain %q", s, "Triangle")
	}
}
