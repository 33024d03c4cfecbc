// Package raster implements the software rasterizer core: geometry
// transform, homogeneous-space clipping, scanline fill with depth testing,
// and fixed-point texture sampling, parameterized over a caller-supplied
// vertex-variables type and shader-constants type via generics so the inner
// loops dispatch through plain function fields instead of interface calls.
package raster

import (
	"math"
	"sync"

	"github.com/go-raster/raster3d/pkg/math3d"
)

// Surface is a lockable color render target. Lock/Unlock mirror the
// teacher's framebuffer-as-shared-resource pattern (cmd/trophy swaps
// buffers across goroutines between frames); the fill core itself never
// calls them; they exist for a caller driving double-buffered presentation.
type Surface interface {
	Width() int
	Height() int
	Set(x, y int, c math3d.Color)
	At(x, y int) math3d.Color
	Lock()
	Unlock()
}

// ColorSurface is the default Surface implementation: a flat packed-color
// buffer, row-major, matching the teacher's Framebuffer layout.
type ColorSurface struct {
	width, height int
	pixels        []math3d.Color
	mu            sync.Mutex
}

// NewColorSurface allocates a cleared color surface.
func NewColorSurface(width, height int) *ColorSurface {
	return &ColorSurface{
		width:  width,
		height: height,
		pixels: make([]math3d.Color, width*height),
	}
}

func (s *ColorSurface) Width() int  { return s.width }
func (s *ColorSurface) Height() int { return s.height }

func (s *ColorSurface) Set(x, y int, c math3d.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = c
}

func (s *ColorSurface) At(x, y int) math3d.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pixels[y*s.width+x]
}

// Clear fills the surface with a single color.
func (s *ColorSurface) Clear(c math3d.Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Lock/Unlock guard presentation against concurrent writes from the
// rasterizer while a consumer reads pixels out for display.
func (s *ColorSurface) Lock()   { s.mu.Lock() }
func (s *ColorSurface) Unlock() { s.mu.Unlock() }

// Pixels exposes the backing slice read-only, for blitting to a terminal or
// image.Image without a per-pixel method-call round trip.
func (s *ColorSurface) Pixels() []math3d.Color { return s.pixels }

// DepthBuffer is the Z-buffer: one float32 per pixel, row-major.
type DepthBuffer struct {
	Width, Height int
	Z             []float32
}

// NewDepthBuffer allocates a depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	return &DepthBuffer{Width: width, Height: height, Z: make([]float32, width*height)}
}

// Clear resets every depth value to far (cmd/trophyview passes
// math.MaxFloat32), using the same copy-doubling trick the
// teacher's Rasterizer.ClearDepth uses to avoid a plain per-element loop.
func (d *DepthBuffer) Clear(far float32) {
	n := len(d.Z)
	if n == 0 {
		return
	}
	d.Z[0] = far
	for i := 1; i < n; i *= 2 {
		copy(d.Z[i:], d.Z[:i])
	}
}

// Get returns the depth at (x, y), or math.MaxFloat32 if out of bounds.
func (d *DepthBuffer) Get(x, y int) float32 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return math.MaxFloat32
	}
	return d.Z[y*d.Width+x]
}

// Set writes the depth at (x, y).
func (d *DepthBuffer) Set(x, y int, z float32) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	d.Z[y*d.Width+x] = z
}
