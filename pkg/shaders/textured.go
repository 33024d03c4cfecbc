package shaders

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

// TexturedVars is the per-vertex payload for textured + Gouraud-lit
// triangles: UV coordinates and a lighting intensity baked into a tint
// color, mirroring the teacher's DrawTriangleTexturedGouraud which
// perspective-correctly interpolates both UV and per-vertex intensity
// before sampling.
type TexturedVars struct {
	UV   math3d.Vec2
	Tint math3d.Color
}

func (v TexturedVars) Add(o TexturedVars) TexturedVars {
	return TexturedVars{UV: v.UV.Add(o.UV), Tint: v.Tint.Add(o.Tint)}
}
func (v TexturedVars) Sub(o TexturedVars) TexturedVars {
	return TexturedVars{UV: v.UV.Sub(o.UV), Tint: v.Tint.Sub(o.Tint)}
}
func (v TexturedVars) Scale(f float32) TexturedVars {
	return TexturedVars{UV: v.UV.Scale(f), Tint: v.Tint.Scale(f)}
}
func (v TexturedVars) Lerp(o TexturedVars, t float32) TexturedVars {
	return TexturedVars{UV: v.UV.Lerp(o.UV, t), Tint: v.Tint.Lerp(o.Tint, t)}
}

// textureSlotBase is the textures[] index the pixel program samples; a
// shader bundle that needs more than one bound texture would extend this
// with further named slot constants.
const textureSlotBase = 0

// NewTexturedGouraudShader builds the shader bundle for perspective-correct
// texture mapping modulated by a per-vertex Tint: the vertex program only
// transforms the position and passes UV and Tint through unchanged; the
// pixel program samples the bound texture and modulates it by the
// interpolated Tint. Neither program reads LightConstants, so lighting
// appears only where the caller baked it into Tint beforehand (for example
// with VertexWithLitNormal).
func NewTexturedGouraudShader() raster.Shader[TexturedVars, LightConstants] {
	return raster.Shader[TexturedVars, LightConstants]{
		Vertex: func(pos math3d.Vec3, attrs TexturedVars, u raster.Uniforms[LightConstants]) (math3d.Vec4, TexturedVars) {
			clip := u.WorldViewProjection.MulVec4(math3d.V4FromV3(pos, 1))
			return clip, attrs
		},
		Pixel: func(attrs TexturedVars, u raster.Uniforms[LightConstants], textures []*raster.BoundTexture) math3d.Color {
			if len(textures) <= textureSlotBase || textures[textureSlotBase] == nil {
				return attrs.Tint
			}
			texel := textures[textureSlotBase].Sample(attrs.UV.X, attrs.UV.Y)
			return texel.Modulate(attrs.Tint)
		},
	}
}

// VertexWithLitNormal is a convenience the caller's mesh-to-Vertex
// conversion can use to bake Gouraud-style lighting into TexturedVars.Tint
// ahead of RenderTriangleList, matching the teacher's pre-lighting step in
// DrawTriangleTexturedGouraud.
func VertexWithLitNormal(normal, lightDir math3d.Vec3, base math3d.Color) math3d.Color {
	return base.Scale(lightIntensity(normal, lightDir.Normalize()))
}
