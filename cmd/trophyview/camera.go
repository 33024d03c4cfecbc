package main

import (
	"github.com/chewxy/math32"

	"github.com/go-raster/raster3d/pkg/math3d"
)

// Camera is a minimal look-at camera: orientation is derived from Position
// and a fixed look-at target rather than stored Euler angles, which is all
// the orbit-style controls in this viewer need.
type Camera struct {
	Position    math3d.Vec3
	Target      math3d.Vec3
	Up          math3d.Vec3
	FOV         float32
	AspectRatio float32
	Near        float32
	Far         float32
}

// NewCamera creates a camera looking at the origin from five units out.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 0, 5),
		Target:      math3d.V3(0, 0, 0),
		Up:          math3d.V3(0, 1, 0),
		FOV:         math32.Pi / 3,
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         100,
	}
}

// View returns the camera's view matrix.
func (c *Camera) View() math3d.Mat4 {
	return math3d.LookAt(c.Position, c.Target, c.Up)
}

// Projection returns the camera's projection matrix.
func (c *Camera) Projection() math3d.Mat4 {
	return math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() math3d.Mat4 {
	return c.Projection().Mul(c.View())
}
