package shaders

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

// LightConstants is the shader-constants type shared by every lit shader
// bundle in this package: one directional light, ambient + diffuse, the
// same lighting model the teacher's DrawTriangleLit/DrawTriangleGouraud use
// (intensity = 0.3 ambient + 0.7 * max(0, N·L)).
type LightConstants struct {
	LightDir math3d.Vec3
}

func lightIntensity(normal, lightDir math3d.Vec3) float32 {
	d := normal.Dot(lightDir)
	if d < 0 {
		d = 0
	}
	return 0.3 + 0.7*d
}

// GouraudVars is the per-vertex payload for Gouraud shading: a base color
// and a world-space normal. The vertex program bakes per-vertex lighting
// into Color; interpolating Color and Normal across the triangle (rather
// than relighting per pixel from an interpolated normal) is what makes this
// Gouraud rather than Phong shading.
type GouraudVars struct {
	Color  math3d.Color
	Normal math3d.Vec3
}

func (v GouraudVars) Add(o GouraudVars) GouraudVars {
	return GouraudVars{Color: v.Color.Add(o.Color), Normal: v.Normal.Add(o.Normal)}
}
func (v GouraudVars) Sub(o GouraudVars) GouraudVars {
	return GouraudVars{Color: v.Color.Sub(o.Color), Normal: v.Normal.Sub(o.Normal)}
}
func (v GouraudVars) Scale(f float32) GouraudVars {
	return GouraudVars{Color: v.Color.Scale(f), Normal: v.Normal.Scale(f)}
}
func (v GouraudVars) Lerp(o GouraudVars, t float32) GouraudVars {
	return GouraudVars{Color: v.Color.Lerp(o.Color, t), Normal: v.Normal.Lerp(o.Normal, t)}
}

// NewGouraudShader builds the shader bundle for smooth per-vertex lighting:
// the vertex program transforms the normal into world space and scales the
// vertex color by the lighting intensity at that vertex; the pixel program
// has nothing left to do but pass the interpolated color through.
func NewGouraudShader() raster.Shader[GouraudVars, LightConstants] {
	return raster.Shader[GouraudVars, LightConstants]{
		Vertex: func(pos math3d.Vec3, attrs GouraudVars, u raster.Uniforms[LightConstants]) (math3d.Vec4, GouraudVars) {
			clip := u.WorldViewProjection.MulVec4(math3d.V4FromV3(pos, 1))
			worldNormal := u.NormalMatrix.MulVec3Dir(attrs.Normal).Normalize()
			intensity := lightIntensity(worldNormal, u.Constants.LightDir.Normalize())
			return clip, GouraudVars{Color: attrs.Color.Scale(intensity), Normal: worldNormal}
		},
		Pixel: func(attrs GouraudVars, u raster.Uniforms[LightConstants], textures []*raster.BoundTexture) math3d.Color {
			return attrs.Color
		},
	}
}
