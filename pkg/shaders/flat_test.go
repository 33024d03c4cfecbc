package shaders

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

func TestFlatShaderPassesColorThrough(t *testing.T) {
	shader := NewFlatShader()
	u := raster.Uniforms[FlatConstants]{WorldViewProjection: math3d.Identity()}

	clip, attrs := shader.Vertex(math3d.V3(1, 2, 3), FlatVars{Color: math3d.ColorRed}, u)
	if clip != math3d.V4(1, 2, 3, 1) {
		t.Errorf("Vertex clip position = %v, want {1 2 3 1}", clip)
	}
	if attrs.Color != math3d.ColorRed {
		t.Errorf("Vertex attrs.Color = %v, want ColorRed", attrs.Color)
	}

	got := shader.Pixel(FlatVars{Color: math3d.ColorGreen}, u, nil)
	if got != math3d.ColorGreen {
		t.Errorf("Pixel = %v, want ColorGreen", got)
	}
}

func TestFlatVarsArithmetic(t *testing.T) {
	a := FlatVars{Color: math3d.RGB(10, 10, 10)}
	b := FlatVars{Color: math3d.RGB(20, 20, 20)}
	if got := a.Add(b).Color; got != math3d.RGB(30, 30, 30) {
		t.Errorf("Add = %v, want {30 30 30}", got)
	}
	if got := a.Scale(2).Color; got != math3d.RGB(20, 20, 20) {
		t.Errorf("Scale = %v, want {20 20 20}", got)
	}
}

func TestNewRasterizerAcceptsFlatVars(t *testing.T) {
	_, err := raster.NewRasterizer[FlatVars, FlatConstants](NewFlatShader())
	if err != nil {
		t.Fatalf("NewRasterizer rejected FlatVars: %v", err)
	}
}
