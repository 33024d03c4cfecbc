package shaders

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

func TestLightIntensityRange(t *testing.T) {
	lit := lightIntensity(math3d.V3(0, 0, 1), math3d.V3(0, 0, 1))
	if !approxEqual(lit, 1.0, 1e-5) {
		t.Errorf("fully lit intensity = %v, want 1.0 (0.3 ambient + 0.7 diffuse)", lit)
	}

	unlit := lightIntensity(math3d.V3(0, 0, 1), math3d.V3(0, 0, -1))
	if !approxEqual(unlit, 0.3, 1e-5) {
		t.Errorf("facing away intensity = %v, want 0.3 (ambient floor only)", unlit)
	}
}

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestGouraudShaderBakesLightingIntoColor(t *testing.T) {
	shader := NewGouraudShader()
	u := raster.Uniforms[LightConstants]{
		WorldViewProjection: math3d.Identity(),
		NormalMatrix:        math3d.Identity(),
		Constants:           LightConstants{LightDir: math3d.V3(0, 0, 1)},
	}

	_, out := shader.Vertex(math3d.V3(0, 0, 0), GouraudVars{
		Color:  math3d.ColorWhite,
		Normal: math3d.V3(0, 0, 1),
	}, u)

	if out.Color.R() != 255 {
		t.Errorf("fully-lit white vertex should stay at full brightness, got R=%d", out.Color.R())
	}

	color := shader.Pixel(out, u, nil)
	if color != out.Color {
		t.Errorf("Pixel should pass the baked color through unchanged, got %v want %v", color, out.Color)
	}
}

func TestGouraudVarsArithmetic(t *testing.T) {
	a := GouraudVars{Color: math3d.RGB(10, 10, 10), Normal: math3d.V3(1, 0, 0)}
	b := GouraudVars{Color: math3d.RGB(20, 20, 20), Normal: math3d.V3(0, 1, 0)}
	sum := a.Add(b)
	if sum.Color != math3d.RGB(30, 30, 30) || sum.Normal != math3d.V3(1, 1, 0) {
		t.Errorf("Add = %+v, want Color={30 30 30} Normal={1 1 0}", sum)
	}
}

func TestNewRasterizerAcceptsGouraudVars(t *testing.T) {
	_, err := raster.NewRasterizer[GouraudVars, LightConstants](NewGouraudShader())
	if err != nil {
		t.Fatalf("NewRasterizer rejected GouraudVars: %v", err)
	}
}
