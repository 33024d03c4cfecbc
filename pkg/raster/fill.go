package raster

import (
	"github.com/go-raster/raster3d/pkg/vars"
)

// edge holds a screen-space edge function A*x + B*y + C, incremented by
// (A, B) per pixel step instead of recomputed from scratch, the same
// incremental-stepping idea as the teacher's rasterizer_opt.go, generalized
// to float32 and to an arbitrary vertex-variables type.
type edge struct {
	a, b, c float32
	topLeft bool
}

// newEdge builds the edge function for the directed edge from -> to, and
// classifies it under the top-left fill convention: an edge owns pixels
// exactly on its line only if it's a top edge (horizontal, pointing +X) or
// a left edge (pointing upward in screen space, -Y). Those are the top and
// left sides of a triangle with positive signedArea2. This is what keeps
// shared edges between adjacent triangles from double-shading or leaving a
// gap.
func newEdge(fromX, fromY, toX, toY float32) edge {
	a := fromY - toY
	b := toX - fromX
	c := fromX*toY - toX*fromY
	dy := toY - fromY
	dx := toX - fromX
	topLeft := (dy == 0 && dx > 0) || dy < 0
	return edge{a: a, b: b, c: c, topLeft: topLeft}
}

func (e edge) at(x, y float32) float32 { return e.a*x + e.b*y + e.c }

// inside reports whether a pixel exactly on the edge belongs to this
// triangle under the top-left rule. newEdge always measures a.x+b.y+c in
// the direction that is positive for a counter-clockwise-wound triangle;
// for a clockwise-wound one every interior edge value is the same
// magnitude but negated, so ccw flips the sign before applying the rule.
// Strictly-inside values are always inside regardless of which edge
// they're on.
func (e edge) inside(v float32, ccw bool) bool {
	if !ccw {
		v = -v
	}
	if e.topLeft {
		return v >= 0
	}
	return v > 0
}

// fillTriangle rasterizes one screen-space triangle: depth-tests every
// covered pixel, reconstructs perspective-correct attributes when enabled,
// and dispatches the pixel program. area2 is twice the signed area computed
// by the caller (already known from the backface test, reused here instead
// of recomputed).
func fillTriangle[V vars.Vars[V], C any](
	target Surface,
	depth *DepthBuffer,
	v0, v1, v2 screenVertex[V],
	area2 float32,
	perspectiveCorrect bool,
	shader Shader[V, C],
	u Uniforms[C],
	textures []*BoundTexture,
) {
	// The bounding box only needs to be conservative, not exact: Go's
	// float-to-int conversion already truncates toward zero, and every
	// edge in the box still gets the precise inside/outside test below, so
	// there's no separate rounding-mode state to scope and release here.
	minX := clampInt(int(min3f(v0.X, v1.X, v2.X)), 0, target.Width()-1)
	maxX := clampInt(int(max3f(v0.X, v1.X, v2.X))+1, 0, target.Width()-1)
	minY := clampInt(int(min3f(v0.Y, v1.Y, v2.Y)), 0, target.Height()-1)
	maxY := clampInt(int(max3f(v0.Y, v1.Y, v2.Y))+1, 0, target.Height()-1)
	if minX > maxX || minY > maxY {
		return
	}

	e0 := newEdge(v1.X, v1.Y, v2.X, v2.Y) // opposite v0, weighs v0
	e1 := newEdge(v2.X, v2.Y, v0.X, v0.Y) // opposite v1, weighs v1
	e2 := newEdge(v0.X, v0.Y, v1.X, v1.Y) // opposite v2, weighs v2
	invArea := 1 / area2
	ccw := area2 > 0

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := e0.at(px, py)
			w1 := e1.at(px, py)
			w2 := e2.at(px, py)
			if !e0.inside(w0, ccw) || !e1.inside(w1, ccw) || !e2.inside(w2, ccw) {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			if z >= depth.Get(x, y) {
				continue
			}

			var attrs V
			if perspectiveCorrect {
				invW := w0*v0.InvW + w1*v1.InvW + w2*v2.InvW
				if invW == 0 {
					continue
				}
				blended := v0.Attrs.Scale(w0).Add(v1.Attrs.Scale(w1)).Add(v2.Attrs.Scale(w2))
				attrs = blended.Scale(1 / invW)
			} else {
				attrs = v0.Attrs.Scale(w0).Add(v1.Attrs.Scale(w1)).Add(v2.Attrs.Scale(w2))
			}

			color := shader.Pixel(attrs, u, textures)
			depth.Set(x, y, z)
			target.Set(x, y, color)
		}
	}
}

func min3f(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3f(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
