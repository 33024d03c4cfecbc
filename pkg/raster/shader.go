package raster

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/vars"
)

// Uniforms bundles the per-draw-call matrices and the caller's shader
// constants. Its matrices are refreshed once per RenderTriangleList or
// CullMeshBounds call, and only those a SetWorld/SetView/SetProjection call
// made stale, rather than rebuilt per vertex.
type Uniforms[C any] struct {
	World, View, Projection   math3d.Mat4
	WorldView, ViewProjection math3d.Mat4
	WorldViewProjection       math3d.Mat4
	NormalMatrix              math3d.Mat4
	Constants                 C
}

// Vertex is the caller-facing per-vertex input: an object-space position
// plus whatever attributes the concrete vertex-variables type V carries
// (normal, UV, color, ...).
type Vertex[V vars.Vars[V]] struct {
	Position math3d.Vec3
	Attrs    V
}

// VertexProgram maps one object-space vertex to a clip-space position and
// the (possibly transformed) vertex variables that get clipped,
// interpolated across the triangle, and handed to the pixel program.
type VertexProgram[V vars.Vars[V], C any] func(pos math3d.Vec3, attrs V, u Uniforms[C]) (clip math3d.Vec4, out V)

// PixelProgram maps interpolated vertex variables at one pixel to a final
// color. textures is the list bound via Rasterizer.SetTextures, addressed
// by whatever slot convention the concrete shader documents.
type PixelProgram[V vars.Vars[V], C any] func(attrs V, u Uniforms[C], textures []*BoundTexture) math3d.Color

// Shader binds a vertex program and a pixel program as plain function
// values, once, at construction. There is no virtual dispatch in the fill
// loop: Rasterizer.shader.Pixel is a direct call through a func field, the
// same shape as the teacher's one-function-per-variant DrawTriangle family,
// just generalized over V and C instead of hardcoded to Color/UV/Normal.
type Shader[V vars.Vars[V], C any] struct {
	Vertex VertexProgram[V, C]
	Pixel  PixelProgram[V, C]
}
