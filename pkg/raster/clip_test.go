package raster

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
)

// scalarVars is a minimal Vars[V] implementation local to this test file;
// pkg/shaders can't be imported here since it depends on pkg/raster.
type scalarVars struct {
	V float32
}

func (s scalarVars) Add(o scalarVars) scalarVars         { return scalarVars{s.V + o.V} }
func (s scalarVars) Sub(o scalarVars) scalarVars         { return scalarVars{s.V - o.V} }
func (s scalarVars) Scale(f float32) scalarVars          { return scalarVars{s.V * f} }
func (s scalarVars) Lerp(o scalarVars, t float32) scalarVars {
	return scalarVars{s.V + (o.V-s.V)*t}
}

func cv(x, y, z, w, attr float32) clipVertex[scalarVars] {
	return clipVertex[scalarVars]{Pos: math3d.V4(x, y, z, w), Attrs: scalarVars{attr}}
}

func TestClipTriangleFullyInside(t *testing.T) {
	var c clipper[scalarVars]
	a := cv(0, 0, 0, 1, 1)
	b := cv(0.1, 0, 0, 1, 2)
	cc := cv(0, 0.1, 0, 1, 3)

	poly := c.clipTriangle(a, b, cc)
	if len(poly) != 3 {
		t.Fatalf("fully inside triangle: got %d vertices, want 3", len(poly))
	}
}

func TestClipTriangleFullyOutside(t *testing.T) {
	var c clipper[scalarVars]
	// All three vertices are beyond the right plane (x > w).
	a := cv(5, 0, 0, 1, 1)
	b := cv(6, 0, 0, 1, 2)
	cc := cv(5, 1, 0, 1, 3)

	poly := c.clipTriangle(a, b, cc)
	if len(poly) != 0 {
		t.Fatalf("fully outside triangle: got %d vertices, want 0", len(poly))
	}
}

func TestClipTriangleStraddlingGrowsPolygon(t *testing.T) {
	var c clipper[scalarVars]
	// One vertex outside the right plane (x > w), two inside: the clipped
	// polygon should gain a vertex, becoming a quad.
	a := cv(0, 0, 0, 1, 1)
	b := cv(0, 0.5, 0, 1, 2)
	cc := cv(5, 0.25, 0, 1, 3)

	poly := c.clipTriangle(a, b, cc)
	if len(poly) != 4 {
		t.Fatalf("straddling triangle: got %d vertices, want 4", len(poly))
	}
	for _, v := range poly {
		if v.Pos.X > v.Pos.W+1e-4 {
			t.Errorf("clipped vertex %v still violates the right plane", v.Pos)
		}
	}
}

func TestClipTriangleStraddlingNearPlane(t *testing.T) {
	var c clipper[scalarVars]
	// One vertex behind the camera (z+w < 0), two ahead.
	a := cv(0, 0, -2, 1, 1)
	b := cv(0.2, 0, 0.5, 1, 2)
	cc := cv(-0.2, 0, 0.5, 1, 3)

	poly := c.clipTriangle(a, b, cc)
	if len(poly) < 3 {
		t.Fatalf("triangle straddling near plane: got %d vertices, want >= 3", len(poly))
	}
	for _, v := range poly {
		if v.Pos.Z+v.Pos.W < -1e-4 {
			t.Errorf("clipped vertex %v still behind the near plane", v.Pos)
		}
	}
}

func TestLerpClipVertexInterpolatesAttrs(t *testing.T) {
	a := cv(0, 0, 0, 1, 0)
	b := cv(1, 0, 0, 1, 10)
	got := lerpClipVertex(a, b, 0.5)
	if got.Attrs.V != 5 {
		t.Errorf("lerpClipVertex attrs = %v, want 5", got.Attrs.V)
	}
}
