package raster

import (
	"github.com/chewxy/math32"

	"github.com/go-raster/raster3d/pkg/math3d"
)

// WrapMode selects how out-of-range texture coordinates address the image.
type WrapMode int

const (
	WrapTile WrapMode = iota
	WrapClamp
)

// FilterMode selects the reconstruction filter.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)

// sampleShift is the number of fractional bits (S in the spec's fixed-point
// addressing scheme); sampleOne is 2^S, the fixed-point representation of
// one full texel step.
const (
	sampleShift = 8
	sampleOne   = 1 << sampleShift
	sampleMask  = sampleOne - 1
)

// BoundTexture pairs a Texture with the addressing state the sampler needs,
// precomputed once at bind time rather than recomputed per pixel: the
// shifted width/height put the whole addressable range in fixed point, and
// shifted limits are the clamp-mode ceiling for each axis.
type BoundTexture struct {
	Tex    *math3d.Texture
	WrapU  WrapMode
	WrapV  WrapMode
	Filter FilterMode

	shiftedWidth, shiftedHeight  int32
	shiftedXLimit, shiftedYLimit int32
}

// BindTexture precomputes a texture's fixed-point addressing state.
func BindTexture(tex *math3d.Texture, wrapU, wrapV WrapMode, filter FilterMode) *BoundTexture {
	return &BoundTexture{
		Tex:           tex,
		WrapU:         wrapU,
		WrapV:         wrapV,
		Filter:        filter,
		shiftedWidth:  int32(tex.Width) << sampleShift,
		shiftedHeight: int32(tex.Height) << sampleShift,
		shiftedXLimit: int32(tex.Width-1) << sampleShift,
		shiftedYLimit: int32(tex.Height-1) << sampleShift,
	}
}

// Sample reads the texture at normalized coordinates (u, v), applying this
// texture's wrap modes and filter.
func (b *BoundTexture) Sample(u, v float32) math3d.Color {
	fx := address(int32(math32.Round(u*float32(b.shiftedWidth))), b.shiftedXLimit, b.shiftedWidth, b.WrapU)
	fy := address(int32(math32.Round(v*float32(b.shiftedHeight))), b.shiftedYLimit, b.shiftedHeight, b.WrapV)

	if b.Filter == FilterBilinear {
		return b.sampleBilinear(fx, fy)
	}
	return b.sampleNearest(fx, fy)
}

// address maps a fixed-point coordinate into the valid range for one axis,
// either by wrapping (modulo the shifted texture size) or clamping (to the
// shifted width/height minus one texel).
func address(coord, limit, shiftedSize int32, mode WrapMode) int32 {
	if mode == WrapTile {
		coord %= shiftedSize
		if coord < 0 {
			coord += shiftedSize
		}
		return coord
	}
	if coord < 0 {
		return 0
	}
	if coord > limit {
		return limit
	}
	return coord
}

func (b *BoundTexture) sampleNearest(fx, fy int32) math3d.Color {
	x := int(fx >> sampleShift)
	y := int(fy >> sampleShift)
	return b.Tex.At(clampInt(x, 0, b.Tex.Width-1), clampInt(y, 0, b.Tex.Height-1))
}

func (b *BoundTexture) sampleBilinear(fx, fy int32) math3d.Color {
	x0 := int(fx >> sampleShift)
	y0 := int(fy >> sampleShift)
	fracX := float32(fx&sampleMask) / float32(sampleOne)
	fracY := float32(fy&sampleMask) / float32(sampleOne)

	x1 := b.wrapTexel(x0+1, b.Tex.Width, b.WrapU)
	y1 := b.wrapTexel(y0+1, b.Tex.Height, b.WrapV)
	x0c := clampInt(x0, 0, b.Tex.Width-1)
	y0c := clampInt(y0, 0, b.Tex.Height-1)

	top := b.Tex.At(x0c, y0c).Lerp(b.Tex.At(x1, y0c), fracX)
	bottom := b.Tex.At(x0c, y1).Lerp(b.Tex.At(x1, y1), fracX)
	return top.Lerp(bottom, fracY)
}

func (b *BoundTexture) wrapTexel(c, size int, mode WrapMode) int {
	if mode == WrapTile {
		c %= size
		if c < 0 {
			c += size
		}
		return c
	}
	return clampInt(c, 0, size-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
