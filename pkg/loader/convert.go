package loader

import (
	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
	"github.com/go-raster/raster3d/pkg/shaders"
)

// ToIndices flattens a mesh's faces into the flat index list
// Rasterizer.RenderTriangleList expects.
func (m *Mesh) ToIndices() []int {
	indices := make([]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, f.V[0], f.V[1], f.V[2])
	}
	return indices
}

// ToGouraudVertices builds the Vertex[GouraudVars] list for Gouraud-shaded
// drawing, using each face's material base color (white if unassigned).
func (m *Mesh) ToGouraudVertices() []raster.Vertex[shaders.GouraudVars] {
	baseColor := make([]math3d.Color, len(m.Vertices))
	for i := range baseColor {
		baseColor[i] = math3d.ColorWhite
	}
	for _, f := range m.Faces {
		mat := m.GetMaterial(f.Material)
		if mat == nil {
			continue
		}
		c := materialBaseColor(mat)
		baseColor[f.V[0]] = c
		baseColor[f.V[1]] = c
		baseColor[f.V[2]] = c
	}

	verts := make([]raster.Vertex[shaders.GouraudVars], len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = raster.Vertex[shaders.GouraudVars]{
			Position: v.Position,
			Attrs:    shaders.GouraudVars{Color: baseColor[i], Normal: v.Normal},
		}
	}
	return verts
}

// ToTexturedVertices builds the Vertex[TexturedVars] list for textured
// drawing; Tint starts at white and is expected to be relit by the caller
// (e.g. via shaders.VertexWithLitNormal) if dynamic lighting is wanted.
func (m *Mesh) ToTexturedVertices() []raster.Vertex[shaders.TexturedVars] {
	verts := make([]raster.Vertex[shaders.TexturedVars], len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = raster.Vertex[shaders.TexturedVars]{
			Position: v.Position,
			Attrs:    shaders.TexturedVars{UV: v.UV, Tint: math3d.ColorWhite},
		}
	}
	return verts
}

func materialBaseColor(mat *Material) math3d.Color {
	return math3d.ARGB(
		clamp255(mat.BaseColor[3]),
		clamp255(mat.BaseColor[0]),
		clamp255(mat.BaseColor[1]),
		clamp255(mat.BaseColor[2]),
	)
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
