package math3d

import "testing"

func approxEq32(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, 7, 9)},
		{"sub", a.Sub(b), V3(-3, -3, -3)},
		{"mul", a.Mul(b), V3(4, 10, 18)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"lerp half", a.Lerp(b, 0.5), V3(2.5, 3.5, 4.5)},
		{"min", a.Min(b), a},
		{"max", a.Max(b), b},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !approxEq32(tc.got.X, tc.want.X, 1e-5) ||
				!approxEq32(tc.got.Y, tc.want.Y, 1e-5) ||
				!approxEq32(tc.got.Z, tc.want.Z, 1e-5) {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	got := x.Cross(y)
	want := V3(0, 0, 1)
	if got != want {
		t.Errorf("Cross(X, Y) = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0)
	n := v.Normalize()
	if !approxEq32(n.Len(), 1, 1e-5) {
		t.Errorf("Normalize length = %v, want 1", n.Len())
	}

	zero := Zero3().Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec3LenSq(t *testing.T) {
	v := V3(3, 4, 0)
	if got := v.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
}

func TestVec3Reflect(t *testing.T) {
	incoming := V3(1, -1, 0)
	normal := V3(0, 1, 0)
	got := incoming.Reflect(normal)
	want := V3(1, 1, 0)
	if !approxEq32(got.X, want.X, 1e-5) || !approxEq32(got.Y, want.Y, 1e-5) {
		t.Errorf("Reflect = %v, want %v", got, want)
	}
}
