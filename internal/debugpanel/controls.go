package debugpanel

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Control is one widget in the panel.
type Control interface {
	Label() string
}

// NumberSpec identifies a numeric control. Object must be comparable, in
// practice a pointer to the owning light, material or mesh.
type NumberSpec struct {
	Object   any
	Property string
	Min      float32
	Max      float32
	Step     float32 // 0 means continuous
	Label    string
}

type NumberControl struct {
	Spec    NumberSpec
	binding Binding
}

func (c *NumberControl) Label() string {
	if c.Spec.Label != "" {
		return c.Spec.Label
	}
	return c.Spec.Property
}

// Value reads the live property, so the display never drifts from the object.
func (c *NumberControl) Value() float32 {
	return c.binding.Get()
}

// Apply clamps raw to [Min, Max], snaps it to the nearest Min + k*Step, writes
// it through the binding and returns the stored value.
func (c *NumberControl) Apply(raw float32) float32 {
	v := c.Normalize(raw)
	c.binding.Set(v)
	return v
}

// Normalize is Apply without the write.
func (c *NumberControl) Normalize(raw float32) float32 {
	spec := c.Spec
	if math32.IsNaN(raw) {
		raw = spec.Min
	}
	v := mgl32.Clamp(raw, spec.Min, spec.Max)
	if spec.Step > 0 {
		v = spec.Min + math32.Floor((v-spec.Min)/spec.Step+0.5)*spec.Step
		v = mgl32.Clamp(v, spec.Min, spec.Max)
	}
	return v
}

type ColorControl struct {
	Object   any
	Property string
	label    string
	binding  ColorBinding
}

func (c *ColorControl) Label() string {
	return c.label
}

func (c *ColorControl) Value() mgl32.Vec3 {
	return c.binding.Get()
}

// Apply clamps each channel to [0,1] and writes the colour back.
func (c *ColorControl) Apply(raw mgl32.Vec3) mgl32.Vec3 {
	v := mgl32.Vec3{
		mgl32.Clamp(raw[0], 0, 1),
		mgl32.Clamp(raw[1], 0, 1),
		mgl32.Clamp(raw[2], 0, 1),
	}
	c.binding.Set(v)
	return v
}

type BoolControl struct {
	Object   any
	Property string
	label    string
	binding  BoolBinding
}

func (c *BoolControl) Label() string {
	return c.label
}

func (c *BoolControl) Value() bool {
	return c.binding.Get()
}

func (c *BoolControl) Apply(v bool) bool {
	c.binding.Set(v)
	return v
}

// Toggle flips the property and returns the new value.
func (c *BoolControl) Toggle() bool {
	return c.Apply(!c.Value())
}
