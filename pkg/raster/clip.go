package raster

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/vars"
)

// maxClipVertices bounds the polygon a triangle can grow into after being
// cut by all 6 frustum planes. Sutherland-Hodgman against N convex planes
// can grow a triangle to at most 3+N vertices; with 6 planes that is 9, but
// in practice the near/far pair and the four side planes are never all hit
// at once by a single triangle, so 8 is the scratch capacity the clipper
// actually needs. Exceeding it means the clipper itself regressed.
const maxClipVertices = 8

// clipVertex is a vertex still in clip space (pre perspective-divide),
// carrying whatever vertex variables the concrete shader produced.
type clipVertex[V vars.Vars[V]] struct {
	Pos   math3d.Vec4
	Attrs V
}

// sideEpsilon nudges the four side planes outward by a hair so that
// vertices lying almost exactly on a frustum edge are classified inside
// rather than being clipped away and reintroduced on the next frame as the
// camera's floating-point matrices drift — a degenerate sliver flickering
// in and out is worse than keeping it one pixel too wide.
const sideEpsilon = 1e-5

// frustumPlanes are the 6 homogeneous clip-space planes satisfied by any
// point inside the canonical clip volume -w <= x,y,z <= w.
var frustumPlanes = [6]math3d.Plane{
	math3d.NewPlane(1, 0, 0, 1+sideEpsilon),  // left:   x + w >= 0
	math3d.NewPlane(-1, 0, 0, 1+sideEpsilon), // right:  w - x >= 0
	math3d.NewPlane(0, 1, 0, 1+sideEpsilon),  // bottom: y + w >= 0
	math3d.NewPlane(0, -1, 0, 1+sideEpsilon), // top:    w - y >= 0
	math3d.NewPlane(0, 0, 1, 1),              // near:   z + w >= 0
	math3d.NewPlane(0, 0, -1, 1),             // far:    w - z >= 0
}

// clipper owns the ping-ponged scratch buffers a single triangle's
// Sutherland-Hodgman pass clips into, reused across calls so clipping a
// frame's worth of triangles does no per-triangle heap allocation.
type clipper[V vars.Vars[V]] struct {
	bufA, bufB [maxClipVertices]clipVertex[V]
}

// clipTriangle cuts a, b, c against all 6 frustum planes and returns the
// resulting convex polygon's vertices. A polygon of fewer than 3 vertices
// means the triangle was entirely outside the view volume.
func (c *clipper[V]) clipTriangle(a, b, cc clipVertex[V]) []clipVertex[V] {
	cur := c.bufA[:0]
	cur = append(cur, a, b, cc)
	next := c.bufB[:0]

	for _, plane := range frustumPlanes {
		if len(cur) == 0 {
			return cur
		}
		next = next[:0]
		prev := cur[len(cur)-1]
		prevDist := plane.ClassifyHomogeneous(prev.Pos)
		for _, v := range cur {
			dist := plane.ClassifyHomogeneous(v.Pos)
			switch {
			case dist >= 0 && prevDist >= 0:
				next = append(next, v)
			case dist >= 0 && prevDist < 0:
				next = append(next, lerpClipVertex(prev, v, prevDist/(prevDist-dist)))
				next = append(next, v)
			case dist < 0 && prevDist >= 0:
				next = append(next, lerpClipVertex(prev, v, prevDist/(prevDist-dist)))
			}
			if len(next) > maxClipVertices {
				panic(clippingOverflowError{got: len(next), max: maxClipVertices})
			}
			prev, prevDist = v, dist
		}
		cur, next = next, cur
	}
	return cur
}

// lerpClipVertex interpolates both the clip-space position and the vertex
// variables at parameter t along the edge prev -> cur. This runs before the
// perspective divide, which is exactly what makes it safe to interpolate
// Pos linearly here: the divide happens once, after clipping, in the
// viewport stage.
func lerpClipVertex[V vars.Vars[V]](prev, cur clipVertex[V], t float32) clipVertex[V] {
	return clipVertex[V]{
		Pos:   prev.Pos.Lerp(cur.Pos, t),
		Attrs: prev.Attrs.Lerp(cur.Attrs, t),
	}
}
