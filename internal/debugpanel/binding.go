package debugpanel

import "github.com/go-gl/mathgl/mgl32"

// Binding is a typed accessor pair for one float property, resolved when the
// control is registered.
type Binding struct {
	Get func() float32
	Set func(float32)
}

// Float binds directly to a field.
func Float(ptr *float32) Binding {
	return Binding{
		Get: func() float32 { return *ptr },
		Set: func(v float32) { *ptr = v },
	}
}

// Func binds through accessor functions, for properties with side effects
// (e.g. a camera field that needs its projection rebuilt).
func Func(get func() float32, set func(float32)) Binding {
	return Binding{Get: get, Set: set}
}

func (b Binding) valid() bool {
	return b.Get != nil && b.Set != nil
}

type ColorBinding struct {
	Get func() mgl32.Vec3
	Set func(mgl32.Vec3)
}

func Color(ptr *mgl32.Vec3) ColorBinding {
	return ColorBinding{
		Get: func() mgl32.Vec3 { return *ptr },
		Set: func(v mgl32.Vec3) { *ptr = v },
	}
}

func (b ColorBinding) valid() bool {
	return b.Get != nil && b.Set != nil
}

type BoolBinding struct {
	Get func() bool
	Set func(bool)
}

func Bool(ptr *bool) BoolBinding {
	return BoolBinding{
		Get: func() bool { return *ptr },
		Set: func(v bool) { *ptr = v },
	}
}

func BoolFunc(get func() bool, set func(bool)) BoolBinding {
	return BoolBinding{Get: get, Set: set}
}

func (b BoolBinding) valid() bool {
	return b.Get != nil && b.Set != nil
}
