package raster

import "github.com/go-raster/raster3d/pkg/math3d"

// WorldPlane is a Euclidean world-space plane (Ax + By + Cz + D = 0), used
// for whole-mesh frustum pre-culling before any per-triangle work happens.
// This is a different thing from math3d.Plane: that one classifies
// clip-space Vec4s for Sutherland-Hodgman clipping, before the perspective
// divide; this one tests plain Vec3 world points, after it, and only ever
// against a mesh's bounding box, never a single triangle.
type WorldPlane struct {
	Normal math3d.Vec3
	D      float32
}

// normalize scales the plane so its normal is unit length, done once at
// extraction time so DistanceToPoint never has to renormalize.
func (p *WorldPlane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point;
// positive is on the side the normal points to (inside the frustum).
func (p WorldPlane) DistanceToPoint(point math3d.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// WorldFrustum is the 6 planes (left, right, bottom, top, near, far) of a
// camera's view volume in world space, extracted once per camera move and
// reused to pre-cull whole meshes before their triangles ever reach
// RenderTriangleList.
type WorldFrustum struct {
	Planes [6]WorldPlane
}

const (
	frustumLeft = iota
	frustumRight
	frustumBottom
	frustumTop
	frustumNear
	frustumFar
)

// NewWorldFrustum extracts the 6 frustum planes from a view-projection
// matrix via the Gribb/Hartmann method: each plane is a signed combination
// of the matrix's rows, which falls out of the clip-space half-space
// inequalities (-w <= x <= w, etc.) pushed back through the inverse
// transform implicit in the matrix itself.
func NewWorldFrustum(viewProj math3d.Mat4) WorldFrustum {
	m := viewProj
	var f WorldFrustum

	f.Planes[frustumLeft] = WorldPlane{Normal: math3d.V3(m[3]+m[0], m[7]+m[4], m[11]+m[8]), D: m[15] + m[12]}
	f.Planes[frustumRight] = WorldPlane{Normal: math3d.V3(m[3]-m[0], m[7]-m[4], m[11]-m[8]), D: m[15] - m[12]}
	f.Planes[frustumBottom] = WorldPlane{Normal: math3d.V3(m[3]+m[1], m[7]+m[5], m[11]+m[9]), D: m[15] + m[13]}
	f.Planes[frustumTop] = WorldPlane{Normal: math3d.V3(m[3]-m[1], m[7]-m[5], m[11]-m[9]), D: m[15] - m[13]}
	f.Planes[frustumNear] = WorldPlane{Normal: math3d.V3(m[3]+m[2], m[7]+m[6], m[11]+m[10]), D: m[15] + m[14]}
	f.Planes[frustumFar] = WorldPlane{Normal: math3d.V3(m[3]-m[2], m[7]-m[6], m[11]-m[10]), D: m[15] - m[14]}

	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// AABB is an axis-aligned world-space bounding box.
type AABB struct {
	Min, Max math3d.Vec3
}

// Transform returns the AABB that bounds this box's 8 corners after m.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]math3d.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
	out := m.MulVec3(corners[0])
	newMin, newMax := out, out
	for _, c := range corners[1:] {
		t := m.MulVec3(c)
		newMin = newMin.Min(t)
		newMax = newMax.Max(t)
	}
	return AABB{Min: newMin, Max: newMax}
}

// IntersectAABB reports whether any part of box is inside the frustum,
// using the positive-vertex trick: for each plane, only the AABB corner
// furthest along the plane's normal can save the box from rejection.
func (f WorldFrustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		p := math3d.V3(
			selectf(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectf(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectf(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectf(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
