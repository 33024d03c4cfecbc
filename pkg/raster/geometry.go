package raster

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/vars"
)

// CullMode selects which winding direction is treated as a back face.
type CullMode int

const (
	// CullCW discards clockwise-winding screen-space triangles; a triangle
	// survives when its vertices run counter-clockwise. This is the
	// rasterizer's default.
	CullCW CullMode = iota
	// CullCCW discards counter-clockwise triangles, the mirror convention.
	CullCCW
	// CullNone disables backface culling; both windings are drawn.
	CullNone
)

// screenVertex is a vertex after the perspective divide and viewport
// mapping: screen-space (X, Y), a Z suitable for the depth test, the
// reciprocal of the pre-divide W, and vertex variables, pre-multiplied by
// InvW when the rasterizer's perspective-correct mode is on.
type screenVertex[V vars.Vars[V]] struct {
	X, Y  float32
	Z     float32
	InvW  float32
	Attrs V
}

// toScreen perspective-divides a clip-space vertex and maps it into the
// surface's pixel grid. NDC (-1..1) X maps left-to-right, Y is flipped
// since NDC +Y is up but screen rows grow downward. The pixel-center
// sampling offset is applied later, in the fill loop, not here — baking it
// in at this stage would double it once the scanline loop adds its own.
func toScreen[V vars.Vars[V]](cv clipVertex[V], width, height int, perspectiveCorrect bool) screenVertex[V] {
	invW := float32(0)
	if cv.Pos.W != 0 {
		invW = 1 / cv.Pos.W
	}
	ndc := math3d.Vec3{X: cv.Pos.X * invW, Y: cv.Pos.Y * invW, Z: cv.Pos.Z * invW}

	attrs := cv.Attrs
	if perspectiveCorrect {
		attrs = attrs.Scale(invW)
	}

	return screenVertex[V]{
		X:     (ndc.X + 1) * 0.5 * float32(width),
		Y:     (1 - ndc.Y) * 0.5 * float32(height),
		Z:     ndc.Z,
		InvW:  invW,
		Attrs: attrs,
	}
}

// signedArea2 returns twice the signed area of the screen-space triangle
// (a, b, c). Its sign encodes winding: positive is counter-clockwise in a
// Y-down screen space.
func signedArea2[V vars.Vars[V]](a, b, c screenVertex[V]) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// culled reports whether a triangle of the given winding should be
// discarded under mode.
func culled(area2 float32, mode CullMode) bool {
	switch mode {
	case CullCW:
		return area2 <= 0
	case CullCCW:
		return area2 >= 0
	default:
		return false
	}
}
