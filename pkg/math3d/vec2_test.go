package math3d

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, 4)

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Sub = %v, want {2 2}", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale = %v, want {2 4}", got)
	}
	if got := a.Lerp(b, 0.5); !approxEq32(got.X, 2, 1e-5) || !approxEq32(got.Y, 3, 1e-5) {
		t.Errorf("Lerp = %v, want {2 3}", got)
	}
}

func TestVec2Len(t *testing.T) {
	v := V2(3, 4)
	if got := v.Len(); !approxEq32(got, 5, 1e-5) {
		t.Errorf("Len = %v, want 5", got)
	}
}
