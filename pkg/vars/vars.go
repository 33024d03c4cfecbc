// Package vars defines the contract that a concrete vertex-variables type
// must satisfy to flow through the rasterizer's clipping and fill stages:
// plain elementwise Add/Sub/Scale/Lerp, the same way the teacher's
// barycentric interpolation combines per-vertex colors and UVs by hand in
// rasterizer.go, generalized so the fill core never needs to know which
// concrete shader produced the values.
package vars

import (
	"fmt"
	"reflect"

	"github.com/go-raster/raster3d/pkg/math3d"
)

// Vars is the constraint every concrete vertex-variables type must satisfy.
// Clipping interpolates two vertices along a homogeneous plane intersection
// with Lerp; the fill core accumulates per-pixel attributes from barycentric
// weights with Scale and Add.
type Vars[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(f float32) V
	Lerp(o V, t float32) V
}

// Field-level lerp helpers for concrete Vars implementations. The shaders in
// pkg/shaders call the math3d methods these wrap directly.

// LerpF32 linearly interpolates two scalars.
func LerpF32(a, b, t float32) float32 { return a + (b-a)*t }

// LerpVec2 linearly interpolates two 2D vectors.
func LerpVec2(a, b math3d.Vec2, t float32) math3d.Vec2 { return a.Lerp(b, t) }

// LerpVec3 linearly interpolates two 3D vectors.
func LerpVec3(a, b math3d.Vec3, t float32) math3d.Vec3 { return a.Lerp(b, t) }

// LerpColor linearly interpolates two colors.
func LerpColor(a, b math3d.Color, t float32) math3d.Color { return a.Lerp(b, t) }

// ValidateLayout checks that every exported field of a concrete
// vertex-variables type is one of the kinds the generic stages know how to
// treat as a plain interpolable value: float32, or one of the math3d
// vector/color types. It is called once, at shader construction, never in
// the per-pixel hot path — that is what keeps InvalidVertexVariablesLayout
// a construction-time error rather than a runtime one.
func ValidateLayout[V any]() error {
	var zero V
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Errorf("vars: %w: nil vertex variables type", ErrInvalidLayout)
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("vars: %w: %s is not a struct", ErrInvalidLayout, t)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		switch f.Type {
		case reflect.TypeOf(float32(0)),
			reflect.TypeOf(math3d.Vec2{}),
			reflect.TypeOf(math3d.Vec3{}),
			reflect.TypeOf(math3d.Vec4{}),
			reflect.TypeOf(math3d.Color(0)):
			continue
		default:
			return fmt.Errorf("vars: %w: field %s has unsupported type %s", ErrInvalidLayout, f.Name, f.Type)
		}
	}
	return nil
}

// ErrInvalidLayout is the sentinel wrapped into every layout validation
// failure; callers compare with errors.Is.
var ErrInvalidLayout = fmt.Errorf("invalid vertex variables layout")
