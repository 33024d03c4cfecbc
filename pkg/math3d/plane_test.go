package math3d

import "testing"

func TestPlaneClassifyHomogeneous(t *testing.T) {
	// The left clip plane in the convention used throughout pkg/raster:
	// inside when x + w >= 0.
	left := NewPlane(1, 0, 0, 1)

	inside := V4(0, 0, 0, 1)
	if got := left.ClassifyHomogeneous(inside); got < 0 {
		t.Errorf("origin should be inside the left plane, got %v", got)
	}

	outside := V4(-2, 0, 0, 1)
	if got := left.ClassifyHomogeneous(outside); got >= 0 {
		t.Errorf("point beyond the left plane should classify negative, got %v", got)
	}

	onPlane := V4(-1, 0, 0, 1)
	if got := left.ClassifyHomogeneous(onPlane); !approxEq32(got, 0, 1e-6) {
		t.Errorf("point exactly on the plane should classify ~0, got %v", got)
	}
}

func TestPlaneClassifyNearPlaneSign(t *testing.T) {
	near := NewPlane(0, 0, 1, 0)
	behind := V4(0, 0, -1, 1)
	ahead := V4(0, 0, 1, 1)

	if got := near.ClassifyHomogeneous(behind); got >= 0 {
		t.Errorf("point behind the near plane should classify negative, got %v", got)
	}
	if got := near.ClassifyHomogeneous(ahead); got <= 0 {
		t.Errorf("point ahead of the near plane should classify positive, got %v", got)
	}
}
