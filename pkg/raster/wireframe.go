package raster

import "github.com/go-raster/raster3d/pkg/math3d"

// DrawLine draws a line between two already-projected screen points using
// Bresenham's algorithm, the same integer-only stepping the teacher's
// Framebuffer.DrawLine uses.
func (s *ColorSurface) DrawLine(x0, y0, x1, y1 int, c math3d.Color) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawWireframeTriangle transforms three positions by viewProj, projects them
// to screen space and draws the triangle's three edges instead of filling it — the line
// alternative to fillTriangle that spec §4.5/§4.8 names as the other fill
// core. Edges entirely behind the camera (both endpoints with W <= 0) are
// skipped; partial clipping of a single edge isn't attempted since a
// wireframe overlay tolerates a vanished edge far better than filled
// geometry would.
func DrawWireframeTriangle(target Surface, viewProj math3d.Mat4, a, b, c math3d.Vec3, color math3d.Color) {
	drawWireEdge(target, viewProj, a, b, color)
	drawWireEdge(target, viewProj, b, c, color)
	drawWireEdge(target, viewProj, c, a, color)
}

func drawWireEdge(target Surface, viewProj math3d.Mat4, a, b math3d.Vec3, color math3d.Color) {
	ca := viewProj.MulVec4(math3d.V4FromV3(a, 1))
	cb := viewProj.MulVec4(math3d.V4FromV3(b, 1))
	if ca.W <= 0 && cb.W <= 0 {
		return
	}
	if ca.W > 0 {
		ca.X /= ca.W
		ca.Y /= ca.W
	}
	if cb.W > 0 {
		cb.X /= cb.W
		cb.Y /= cb.W
	}

	width, height := float32(target.Width()), float32(target.Height())
	x0 := int((ca.X + 1) * 0.5 * width)
	y0 := int((1 - ca.Y) * 0.5 * height)
	x1 := int((cb.X + 1) * 0.5 * width)
	y1 := int((1 - cb.Y) * 0.5 * height)

	if surf, ok := target.(*ColorSurface); ok {
		surf.DrawLine(x0, y0, x1, y1, color)
		return
	}
	bresenham(x0, y0, x1, y1, func(x, y int) { target.Set(x, y, color) })
}

// bresenham is the Surface-interface fallback for wireframe drawing against
// a Surface implementation other than *ColorSurface.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
