package raster

import (
	"fmt"

	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/vars"
)

// CullingStats tracks whole-mesh frustum pre-culling, carried over from the
// teacher's Rasterizer.CullingStats so a caller can still report how much
// work WorldFrustum culling saved.
type CullingStats struct {
	MeshesTested int
	MeshesCulled int
	MeshesDrawn  int
}

// Rasterizer is the facade tying the geometry, clipping, fill and sampling
// stages together for one concrete vertex-variables type V and shader
// constants type C. Every generic instantiation of Rasterizer is a
// distinct concrete type at compile time, so shader.Vertex/shader.Pixel are
// direct function-field calls in the hot path, never an interface method
// lookup.
type Rasterizer[V vars.Vars[V], C any] struct {
	target Surface
	depth  *DepthBuffer

	shader   Shader[V, C]
	textures []*BoundTexture

	world, view, projection math3d.Mat4
	worldDirty              bool
	viewProjDirty           bool

	uniforms Uniforms[C]

	cull               CullMode
	perspectiveCorrect bool

	CullingStats CullingStats
	clip         clipper[V]
}

// NewRasterizer validates V's field layout once and builds a Rasterizer
// bound to shader. CullMode defaults to CullCW and perspective-correct
// interpolation defaults on; both can be changed before the first draw.
func NewRasterizer[V vars.Vars[V], C any](shader Shader[V, C]) (*Rasterizer[V, C], error) {
	if err := vars.ValidateLayout[V](); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVertexVariablesLayout, err)
	}
	r := &Rasterizer[V, C]{
		shader:             shader,
		world:              math3d.Identity(),
		view:               math3d.Identity(),
		projection:         math3d.Identity(),
		cull:               CullCW,
		perspectiveCorrect: true,
		worldDirty:         true,
		viewProjDirty:      true,
	}
	return r, nil
}

// SetRenderTarget binds the color and depth targets future draws write to.
func (r *Rasterizer[V, C]) SetRenderTarget(target Surface, depth *DepthBuffer) {
	r.target = target
	r.depth = depth
}

// SetWorld sets the world (model) matrix. This is the only matrix change
// that invalidates the cached normal matrix: view and projection changes
// rotate/translate/project the whole scene but never need a normal
// transform recomputed, since N = (Wᵀ)⁻¹ only depends on W.
func (r *Rasterizer[V, C]) SetWorld(m math3d.Mat4) {
	r.world = m
	r.worldDirty = true
}

// SetView sets the view matrix.
func (r *Rasterizer[V, C]) SetView(m math3d.Mat4) {
	r.view = m
	r.viewProjDirty = true
}

// SetProjection sets the projection matrix.
func (r *Rasterizer[V, C]) SetProjection(m math3d.Mat4) {
	r.projection = m
	r.viewProjDirty = true
}

// SetConstants replaces the shader constants passed to both programs.
func (r *Rasterizer[V, C]) SetConstants(c C) {
	r.uniforms.Constants = c
}

// SetTextures replaces the bound texture list visible to the pixel program.
func (r *Rasterizer[V, C]) SetTextures(textures []*BoundTexture) {
	r.textures = textures
}

// SetCullMode changes which winding is treated as a back face.
func (r *Rasterizer[V, C]) SetCullMode(mode CullMode) {
	r.cull = mode
}

// SetPerspectiveCorrect toggles perspective-correct attribute
// interpolation. This is a per-Rasterizer setting, passed to toScreen and
// fillTriangle for each triangle drawn.
func (r *Rasterizer[V, C]) SetPerspectiveCorrect(enabled bool) {
	r.perspectiveCorrect = enabled
}

// refreshUniforms recomputes whatever derived matrices went stale since the
// last draw call.
func (r *Rasterizer[V, C]) refreshUniforms() {
	if r.worldDirty {
		r.uniforms.World = r.world
		r.uniforms.NormalMatrix = r.world.NormalMatrix()
		r.worldDirty = false
		r.viewProjDirty = true // world feeds WVP too
	}
	if r.viewProjDirty {
		r.uniforms.View = r.view
		r.uniforms.Projection = r.projection
		r.uniforms.WorldView = r.view.Mul(r.world)
		r.uniforms.ViewProjection = r.projection.Mul(r.view)
		r.uniforms.WorldViewProjection = r.uniforms.ViewProjection.Mul(r.world)
		r.viewProjDirty = false
	}
}

// RenderTriangleList draws an indexed triangle list: every 3 consecutive
// indices name one triangle's vertices into vertices.
func (r *Rasterizer[V, C]) RenderTriangleList(vertices []Vertex[V], indices []int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrMalformedIndices, len(indices))
	}
	for _, idx := range indices {
		if idx < 0 {
			return fmt.Errorf("%w: negative index %d", ErrMalformedIndices, idx)
		}
		if idx >= len(vertices) {
			return fmt.Errorf("%w: index %d exceeds vertex count %d", ErrDimensionMismatch, idx, len(vertices))
		}
	}

	r.refreshUniforms()

	for i := 0; i+2 < len(indices); i += 3 {
		a := r.shadeVertex(vertices[indices[i]])
		b := r.shadeVertex(vertices[indices[i+1]])
		c := r.shadeVertex(vertices[indices[i+2]])

		polygon := r.clip.clipTriangle(a, b, c)
		if len(polygon) < 3 {
			continue
		}
		for i := 1; i+1 < len(polygon); i++ {
			r.rasterizeClipped(polygon[0], polygon[i], polygon[i+1])
		}
	}
	return nil
}

func (r *Rasterizer[V, C]) shadeVertex(in Vertex[V]) clipVertex[V] {
	pos, attrs := r.shader.Vertex(in.Position, in.Attrs, r.uniforms)
	return clipVertex[V]{Pos: pos, Attrs: attrs}
}

func (r *Rasterizer[V, C]) rasterizeClipped(a, b, c clipVertex[V]) {
	if r.target == nil || r.depth == nil {
		return
	}
	width, height := r.target.Width(), r.target.Height()
	sa := toScreen(a, width, height, r.perspectiveCorrect)
	sb := toScreen(b, width, height, r.perspectiveCorrect)
	sc := toScreen(c, width, height, r.perspectiveCorrect)

	area2 := signedArea2(sa, sb, sc)
	if area2 == 0 || culled(area2, r.cull) {
		return
	}

	fillTriangle(r.target, r.depth, sa, sb, sc, area2, r.perspectiveCorrect, r.shader, r.uniforms, r.textures)
}

// CullMeshBounds reports whether a mesh's local-space bounding box is
// entirely outside the current view frustum, and updates CullingStats. A
// caller walking a scene graph uses this to skip RenderTriangleList for
// whole meshes without touching the per-triangle clipper at all.
func (r *Rasterizer[V, C]) CullMeshBounds(localBounds AABB, transform math3d.Mat4) bool {
	r.refreshUniforms()
	frustum := NewWorldFrustum(r.uniforms.ViewProjection)
	worldBounds := localBounds.Transform(transform)

	r.CullingStats.MeshesTested++
	if !frustum.IntersectAABB(worldBounds) {
		r.CullingStats.MeshesCulled++
		return true
	}
	r.CullingStats.MeshesDrawn++
	return false
}

// ResetCullingStats zeroes the mesh pre-culling counters; call once per
// frame before walking the scene.
func (r *Rasterizer[V, C]) ResetCullingStats() {
	r.CullingStats = CullingStats{}
}
