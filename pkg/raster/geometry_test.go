package raster

import (
	"testing"

	"github.com/go-raster/raster3d/pkg/math3d"
)

func TestToScreenMapsNDCCenterToViewportCenter(t *testing.T) {
	v := clipVertex[scalarVars]{Pos: math3d.V4(0, 0, 0, 1), Attrs: scalarVars{1}}
	sv := toScreen(v, 100, 50, false)
	if sv.X != 50 || sv.Y != 25 {
		t.Errorf("toScreen center = (%v, %v), want (50, 25)", sv.X, sv.Y)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	// NDC +Y is up; screen rows grow downward, so NDC top (y=1) should map
	// near screen row 0, and NDC bottom (y=-1) near the last row.
	top := toScreen(clipVertex[scalarVars]{Pos: math3d.V4(0, 1, 0, 1)}, 100, 100, false)
	bottom := toScreen(clipVertex[scalarVars]{Pos: math3d.V4(0, -1, 0, 1)}, 100, 100, false)
	if top.Y >= bottom.Y {
		t.Errorf("NDC +Y (got Y=%v) should map above NDC -Y (got Y=%v) in screen space", top.Y, bottom.Y)
	}
}

func TestToScreenPerspectiveCorrectPremultipliesAttrs(t *testing.T) {
	v := clipVertex[scalarVars]{Pos: math3d.V4(0, 0, 0, 2), Attrs: scalarVars{10}}
	sv := toScreen(v, 10, 10, true)
	if sv.Attrs.V != 5 {
		t.Errorf("perspective-correct attrs = %v, want 5 (10 * invW=0.5)", sv.Attrs.V)
	}

	flat := toScreen(v, 10, 10, false)
	if flat.Attrs.V != 10 {
		t.Errorf("non-perspective-correct attrs = %v, want unchanged 10", flat.Attrs.V)
	}
}

func TestToScreenZeroWDoesNotDivideByZero(t *testing.T) {
	v := clipVertex[scalarVars]{Pos: math3d.V4(1, 1, 1, 0)}
	sv := toScreen(v, 10, 10, false)
	if sv.InvW != 0 {
		t.Errorf("InvW for W=0 = %v, want 0", sv.InvW)
	}
}

func TestSignedArea2Winding(t *testing.T) {
	ccw := signedArea2(
		screenVertex[scalarVars]{X: 0, Y: 0},
		screenVertex[scalarVars]{X: 1, Y: 0},
		screenVertex[scalarVars]{X: 0, Y: 1},
	)
	if ccw <= 0 {
		t.Errorf("expected positive area for CCW winding, got %v", ccw)
	}

	cw := signedArea2(
		screenVertex[scalarVars]{X: 0, Y: 0},
		screenVertex[scalarVars]{X: 0, Y: 1},
		screenVertex[scalarVars]{X: 1, Y: 0},
	)
	if cw >= 0 {
		t.Errorf("expected negative area for CW winding, got %v", cw)
	}
}

func TestCulledModes(t *testing.T) {
	if !culled(-1, CullCW) {
		t.Error("CullCW should discard a negative-area (CW) triangle")
	}
	if culled(1, CullCW) {
		t.Error("CullCW should keep a positive-area (CCW) triangle")
	}
	if !culled(1, CullCCW) {
		t.Error("CullCCW should discard a positive-area (CCW) triangle")
	}
	if culled(-1, CullNone) || culled(1, CullNone) {
		t.Error("CullNone should never discard a triangle")
	}
}
