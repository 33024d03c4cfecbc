// Package present blits a rasterizer color surface to a terminal using
// half-block characters, doubling the effective vertical resolution.
package present

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/go-raster/raster3d/pkg/math3d"
	"github.com/go-raster/raster3d/pkg/raster"
)

// TerminalRenderer draws a *raster.ColorSurface into a terminal screen using
// the upper-half-block trick: each terminal cell encodes two framebuffer
// rows as Fg (top row) and Bg (bottom row) of a single "▀" glyph.
type TerminalRenderer struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewTerminalRenderer builds a renderer targeting a terminal of the given
// size in character cells.
func NewTerminalRenderer(term *uv.Terminal, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions the color surface passed to
// Render should have: the same column count, but twice the row count, since
// each terminal row packs two framebuffer rows.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render copies surface into the terminal's screen buffer. It does not push
// the result to the tty; call Flush for that.
func (t *TerminalRenderer) Render(surface *raster.ColorSurface) {
	width := surface.Width()
	for row := 0; row < t.rows; row++ {
		topY := row * 2
		botY := topY + 1

		for col := 0; col < t.cols && col < width; col++ {
			top := surface.At(col, topY)
			bot := surface.At(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: colorToRGBA(top),
					Bg: colorToRGBA(bot),
				},
			}
			t.term.SetCell(col, row, cell)
		}
	}
}

// Flush pushes the screen buffer built up by Render to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.term.Display()
}

func colorToRGBA(c math3d.Color) color.Color {
	if c.A() == 0 {
		return nil
	}
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
