package math3d

// Texture is an immutable packed-pixel image. It carries no wrap or filter
// mode of its own — addressing and sampling are the fill stage's concern
// (pkg/raster/sampler.go); this type only owns the pixels.
type Texture struct {
	Width, Height int
	Pixels        []Color
}

// NewTexture allocates a texture filled with transparent black.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// TextureFromPixels wraps an existing pixel slice, which must have exactly
// width*height elements.
func TextureFromPixels(width, height int, pixels []Color) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// At returns the pixel at (x, y), unchecked.
func (t *Texture) At(x, y int) Color {
	return t.Pixels[y*t.Width+x]
}

// Set writes the pixel at (x, y), unchecked.
func (t *Texture) Set(x, y int, c Color) {
	t.Pixels[y*t.Width+x] = c
}

// NewCheckerTexture builds a procedural checkerboard texture, useful for
// exercising the sampler and viewing UV layout without an asset pipeline.
func NewCheckerTexture(width, height, cellSize int, a, b Color) *Texture {
	t := NewTexture(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/cellSize)+(y/cellSize))%2 == 0 {
				t.Set(x, y, a)
			} else {
				t.Set(x, y, b)
			}
		}
	}
	return t
}

// NewGradientTexture builds a procedural texture that interpolates between
// four corner colors, useful as a bilinear-filtering test pattern.
func NewGradientTexture(width, height int, topLeft, topRight, bottomLeft, bottomRight Color) *Texture {
	t := NewTexture(width, height)
	for y := 0; y < height; y++ {
		v := float32(y) / float32(height-1)
		if height == 1 {
			v = 0
		}
		left := topLeft.Lerp(bottomLeft, v)
		right := topRight.Lerp(bottomRight, v)
		for x := 0; x < width; x++ {
			u := float32(x) / float32(width-1)
			if width == 1 {
				u = 0
			}
			t.Set(x, y, left.Lerp(right, u))
		}
	}
	return t
}
