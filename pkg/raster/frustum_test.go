package raster

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
)

func testFrustum() WorldFrustum {
	proj := math3d.Perspective(1.2, 1.0, 0.1, 100)
	view := math3d.LookAt(math3d.V3(0, 0, 5), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	return NewWorldFrustum(proj.Mul(view))
}

func TestIntersectAABBBoxInsideFrustum(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math3d.V3(-0.5, -0.5, -0.5), Max: math3d.V3(0.5, 0.5, 0.5)}
	if !f.IntersectAABB(box) {
		t.Error("box at the origin, in front of the camera, should intersect the frustum")
	}
}

func TestIntersectAABBBoxBehindCamera(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math3d.V3(-0.5, -0.5, 9), Max: math3d.V3(0.5, 0.5, 10)}
	if f.IntersectAABB(box) {
		t.Error("box far behind the camera should not intersect the frustum")
	}
}

func TestIntersectAABBBoxFarOffToTheSide(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math3d.V3(1000, 1000, -1), Max: math3d.V3(1001, 1001, 1)}
	if f.IntersectAABB(box) {
		t.Error("box far outside the frustum's side planes should not intersect")
	}
}

func TestAABBTransformTranslate(t *testing.T) {
	box := AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	moved := box.Transform(math3d.Translate(math3d.V3(5, 0, 0)))
	want := AABB{Min: math3d.V3(4, -1, -1), Max: math3d.V3(6, 1, 1)}
	if moved.Min != want.Min || moved.Max != want.Max {
		t.Errorf("Transform = %+v, want %+v", moved, want)
	}
}

func TestWorldPlaneDistanceToPoint(t *testing.T) {
	p := WorldPlane{Normal: math3d.V3(0, 1, 0), D: 0}
	if got := p.DistanceToPoint(math3d.V3(0, 5, 0)); got != 5 {
		t.Errorf("DistanceToPoint above plane = %v, want 5", got)
	}
	if got := p.DistanceToPoint(math3d.V3(0, -5, 0)); got != -5 {
		t.Errorf("DistanceToPoint below plane = %v, want -5", got)
	}
}
