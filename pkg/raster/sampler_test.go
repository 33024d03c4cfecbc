package raster

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
)

func checkerTexture() *math3d.Texture {
	return math3d.NewCheckerTexture(4, 4, 1, math3d.ColorBlack, math3d.ColorWhite)
}

func TestSampleNearestCenter(t *testing.T) {
	tex := checkerTexture()
	bt := BindTexture(tex, WrapTile, WrapTile, FilterNearest)

	// u,v at the center of texel (0,0) should land exactly on that texel.
	got := bt.Sample(1.0/8, 1.0/8)
	if got != math3d.ColorBlack {
		t.Errorf("Sample center of (0,0) = %v, want ColorBlack", got)
	}

	got = bt.Sample(3.0/8, 1.0/8)
	if got != math3d.ColorWhite {
		t.Errorf("Sample center of (1,0) = %v, want ColorWhite", got)
	}
}

func TestSampleWrapTile(t *testing.T) {
	tex := checkerTexture()
	bt := BindTexture(tex, WrapTile, WrapTile, FilterNearest)

	inRange := bt.Sample(1.0/8, 1.0/8)
	wrapped := bt.Sample(1.0+1.0/8, 1.0/8)
	if inRange != wrapped {
		t.Errorf("tiled sample at u+1 = %v, want same as u (%v)", wrapped, inRange)
	}
}

func TestSampleWrapClamp(t *testing.T) {
	tex := checkerTexture()
	bt := BindTexture(tex, WrapClamp, WrapClamp, FilterNearest)

	edge := bt.Sample(1-1e-6, 1.0/8)
	beyond := bt.Sample(5.0, 1.0/8)
	if edge != beyond {
		t.Errorf("clamped sample beyond u=1 = %v, want same as sample at the edge (%v)", beyond, edge)
	}
}

func TestSampleBilinearBetweenTexels(t *testing.T) {
	tex := math3d.NewGradientTexture(2, 2, math3d.ColorBlack, math3d.ColorBlack, math3d.ColorWhite, math3d.ColorWhite)
	bt := BindTexture(tex, WrapClamp, WrapClamp, FilterBilinear)

	top := bt.Sample(0.25, 0.0)
	bottom := bt.Sample(0.25, 0.99)
	// v = 0.25 addresses halfway between rows 0 and 1; v = 0.5 is row 1.
	mid := bt.Sample(0.25, 0.25)

	if !(mid.R() > top.R() && mid.R() < bottom.R()) {
		t.Errorf("bilinear midpoint R=%d should fall strictly between top R=%d and bottom R=%d", mid.R(), top.R(), bottom.R())
	}
}

func TestAddressTileNegative(t *testing.T) {
	got := address(-1, 1023, 1024, WrapTile)
	if got != 1023 {
		t.Errorf("address(-1) tiled = %v, want 1023", got)
	}
}

func TestAddressClampNegative(t *testing.T) {
	got := address(-50, 1023, 1024, WrapClamp)
	if got != 0 {
		t.Errorf("address(-50) clamped = %v, want 0", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-5, 0, 10); got != 0 {
		t.Errorf("clampInt(-5,0,10) = %v, want 0", got)
	}
	if got := clampInt(15, 0, 10); got != 10 {
		t.Errorf("clampInt(15,0,10) = %v, want 10", got)
	}
	if got := clampInt(5, 0, 10); got != 5 {
		t.Errorf("clampInt(5,0,10) = %v, want 5", got)
	}
}
