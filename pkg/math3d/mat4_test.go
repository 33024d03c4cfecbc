package math3d

import "testing"

func TestMat4IdentityMulVec3(t *testing.T) {
	v := V3(1, 2, 3)
	got := Identity().MulVec3(v)
	if got != v {
		t.Errorf("Identity().MulVec3(%v) = %v, want %v", v, got, v)
	}
}

func TestMat4TranslateMulVec3(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	got := m.MulVec3(V3(0, 0, 0))
	want := V3(1, 2, 3)
	if got != want {
		t.Errorf("Translate.MulVec3 = %v, want %v", got, want)
	}
}

func TestMat4MulVec3Dir(t *testing.T) {
	m := Translate(V3(5, 5, 5))
	got := m.MulVec3Dir(V3(1, 0, 0))
	want := V3(1, 0, 0)
	if !approxEq32(got.X, want.X, 1e-4) || !approxEq32(got.Y, want.Y, 1e-4) || !approxEq32(got.Z, want.Z, 1e-4) {
		t.Errorf("MulVec3Dir should ignore translation, got %v want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.7)).Mul(Scale(V3(2, 3, 4)))
	inv := m.Inverse()
	roundTrip := m.Mul(inv)

	id := Identity()
	for i := range roundTrip {
		if !approxEq32(roundTrip[i], id[i], 1e-3) {
			t.Fatalf("M * M^-1 != identity at element %d: got %v want %v", i, roundTrip[i], id[i])
		}
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	tt := m.Transpose().Transpose()
	for i := range m {
		if !approxEq32(m[i], tt[i], 1e-6) {
			t.Fatalf("double transpose mismatch at %d: got %v want %v", i, tt[i], m[i])
		}
	}
}

func TestNormalMatrixUndoesNonUniformScale(t *testing.T) {
	m := Scale(V3(2, 1, 1))
	n := m.NormalMatrix()

	normal := V3(1, 0, 0)
	transformed := n.MulVec3Dir(normal).Normalize()
	// Scaling X by 2 should shrink the transformed normal's X component
	// relative to a direction transformed without the normal-matrix
	// correction, but the direction must still point along +X here since
	// the scale is axis-aligned.
	if transformed.X <= 0 {
		t.Errorf("NormalMatrix transformed normal = %v, want positive X", transformed)
	}
}

func TestPerspectiveProjectsOriginAheadIntoClipVolume(t *testing.T) {
	proj := Perspective(1.0, 1.0, 0.1, 100)
	clip := proj.MulVec4(V4(0, 0, -10, 1))
	if clip.W <= 0 {
		t.Fatalf("expected positive W for a point in front of the camera, got %v", clip.W)
	}
	ndc := clip.PerspectiveDivide()
	if ndc.X != 0 || ndc.Y != 0 {
		t.Errorf("on-axis point should project to NDC (0,0,_), got %v", ndc)
	}
}

func TestLookAtOrthonormal(t *testing.T) {
	view := LookAt(V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0))
	// Rotation part of a LookAt matrix should be orthonormal: transposing
	// it should equal its inverse for the upper 3x3 block, which we check
	// indirectly by confirming a round-trip through view then its inverse
	// returns the original point.
	p := V3(1, 2, 3)
	back := view.Inverse().MulVec3(view.MulVec3(p))
	if !approxEq32(back.X, p.X, 1e-3) || !approxEq32(back.Y, p.Y, 1e-3) || !approxEq32(back.Z, p.Z, 1e-3) {
		t.Errorf("LookAt round trip = %v, want %v", back, p)
	}
}
