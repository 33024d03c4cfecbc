package main

import (
	"fmt"
	"image"
	"os"

	"github.com/go-raster/raster3d/pkg/loader"
	"github.com/go-raster/raster3d/pkg/math3d"
)

// loadTextureFile decodes an image file from disk into a Texture, relying
// on whatever decoders pkg/loader's init registers (png/jpeg/bmp/tiff).
func loadTextureFile(path string) (*math3d.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return loader.TextureFromImage(img), nil
}
