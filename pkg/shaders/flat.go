// Package shaders provides concrete vertex/pixel program bundles for
// pkg/raster.Rasterizer: one bundle per the teacher's original
// DrawTriangle/DrawTriangleGouraud/DrawTriangleTextured family, generalized
// from hardcoded barycentric loops into Shader[V, C] instantiations.
package shaders

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

// FlatVars is the per-vertex payload for flat shading: a single color, the
// same on all three vertices of a triangle, so interpolating it across the
// triangle is a no-op in practice — exactly the teacher's DrawTriangleFlat,
// generalized to flow through the generic clip/fill stages instead of a
// hand-written barycentric blend.
type FlatVars struct {
	Color math3d.Color
}

func (v FlatVars) Add(o FlatVars) FlatVars        { return FlatVars{Color: v.Color.Add(o.Color)} }
func (v FlatVars) Sub(o FlatVars) FlatVars        { return FlatVars{Color: v.Color.Sub(o.Color)} }
func (v FlatVars) Scale(f float32) FlatVars       { return FlatVars{Color: v.Color.Scale(f)} }
func (v FlatVars) Lerp(o FlatVars, t float32) FlatVars {
	return FlatVars{Color: v.Color.Lerp(o.Color, t)}
}

// FlatConstants carries nothing the vertex/pixel programs need beyond the
// matrices Uniforms already supplies; it exists so Rasterizer[FlatVars, C]
// has a concrete C to instantiate.
type FlatConstants struct{}

// NewFlatShader builds the shader bundle for unlit, flat-colored triangles:
// the vertex program only transforms position, the pixel program passes
// the (constant) interpolated color straight through.
func NewFlatShader() raster.Shader[FlatVars, FlatConstants] {
	return raster.Shader[FlatVars, FlatConstants]{
		Vertex: func(pos math3d.Vec3, attrs FlatVars, u raster.Uniforms[FlatConstants]) (math3d.Vec4, FlatVars) {
			clip := u.WorldViewProjection.MulVec4(math3d.V4FromV3(pos, 1))
			return clip, attrs
		},
		Pixel: func(attrs FlatVars, u raster.Uniforms[FlatConstants], textures []*raster.BoundTexture) math3d.Color {
			return attrs.Color
		},
	}
}
