package math3d

// Plane is a homogeneous clip-space plane: a·x + b·y + c·z + d·w ≥ 0 is
// "inside". Unlike the Euclidean Plane a scene-graph frustum test would use,
// this one classifies Vec4 clip-space vertices directly, without a
// perspective divide — that is what makes Sutherland-Hodgman clipping safe
// to run before the divide.
type Plane struct {
	A, B, C, D float32
}

// NewPlane builds a homogeneous plane from its four coefficients.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{a, b, c, d}
}

// ClassifyHomogeneous returns a·x + b·y + c·z + d·w for a clip-space vertex.
// Non-negative means the vertex is on the inside half-space of the plane.
func (p Plane) ClassifyHomogeneous(v Vec4) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D*v.W
}
