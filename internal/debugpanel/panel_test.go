package debugpanel

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type lamp struct {
	Intensity float32
	Color     mgl32.Vec3
	On        bool
}

func TestNumberControlClamps(t *testing.T) {
	l := &lamp{Intensity: 1}
	panel := NewPanel("test")
	control, err := panel.AddNumber(NumberSpec{Object: l, Property: "intensity", Min: 0, Max: 3, Step: 0.001}, Float(&l.Intensity))
	if err != nil {
		t.Fatalf("AddNumber failed: %v", err)
	}

	if got := control.Apply(-2); got != 0 || l.Intensity != 0 {
		t.Errorf("Below min should store 0, got %f/%f", got, l.Intensity)
	}
	if got := control.Apply(10); got != 3 || l.Intensity != 3 {
		t.Errorf("Above max should store 3, got %f/%f", got, l.Intensity)
	}
}

func TestNumberControlQuantizesFromMin(t *testing.T) {
	x := float32(0)
	panel := NewPanel("test")
	control, _ := panel.AddNumber(NumberSpec{Object: &x, Property: "x", Min: -5, Max: 5, Step: 0.5}, Float(&x))

	cases := []struct{ raw, want float32 }{
		{1.2, 1.0},
		{1.3, 1.5},
		{-4.9, -5},
		{4.76, 5},
	}
	for _, c := range cases {
		if got := control.Apply(c.raw); math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("Apply(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNumberControlStepOffsetFromMin(t *testing.T) {
	x := float32(0)
	panel := NewPanel("test")
	// Steps are counted from min, so 0.1 + k*0.25.
	control, _ := panel.AddNumber(NumberSpec{Object: &x, Property: "x", Min: 0.1, Max: 2, Step: 0.25}, Float(&x))

	if got := control.Apply(0.5); math.Abs(float64(got)-0.6) > 1e-6 {
		t.Errorf("Expected 0.6, got %v", got)
	}
}

func TestNumberControlApplyIdempotent(t *testing.T) {
	x := float32(0)
	panel := NewPanel("test")
	control, _ := panel.AddNumber(NumberSpec{Object: &x, Property: "x", Min: -5, Max: 5, Step: 0.001}, Float(&x))

	first := control.Apply(2.34567)
	second := control.Apply(2.34567)
	if first != second || x != second {
		t.Errorf("Applying the same input twice should be stable: %v %v %v", first, second, x)
	}
	if again := control.Apply(x); again != x {
		t.Errorf("Re-applying a stored value should not move it: %v -> %v", x, again)
	}
}

func TestNumberControlDisplaysLiveValue(t *testing.T) {
	l := &lamp{Intensity: 1.5}
	panel := NewPanel("test")
	control, _ := panel.AddNumber(NumberSpec{Object: l, Property: "intensity", Min: 0, Max: 3, Step: 0.001}, Float(&l.Intensity))

	if control.Value() != 1.5 {
		t.Errorf("Control should start from the live value, got %f", control.Value())
	}
	if l.Intensity != 1.5 {
		t.Error("Registering must not write to the object")
	}

	l.Intensity = 2.25
	if control.Value() != 2.25 {
		t.Errorf("Control should follow writes made elsewhere, got %f", control.Value())
	}
}

func TestAddNumberDeduplicates(t *testing.T) {
	l := &lamp{Intensity: 1}
	writes := 0
	binding := Func(func() float32 { return l.Intensity }, func(v float32) {
		writes++
		l.Intensity = v
	})
	spec := NumberSpec{Object: l, Property: "intensity", Min: 0, Max: 3, Step: 0.001, Label: "Intensity"}

	panel := NewPanel("test")
	a, _ := panel.AddNumber(spec, binding)
	b, _ := panel.AddNumber(spec, binding)

	if a != b {
		t.Error("Same tuple should return the same control")
	}
	if panel.Len() != 1 || len(panel.Controls()) != 1 {
		t.Errorf("Expected one control, got %d", panel.Len())
	}
	b.Apply(2)
	if writes != 1 {
		t.Errorf("One input should write once, got %d writes", writes)
	}

	spec.Max = 4
	c, _ := panel.AddNumber(spec, binding)
	if c == a {
		t.Error("A different range is a different control")
	}
}

func TestAddNumberInvalidRange(t *testing.T) {
	x := float32(0)
	panel := NewPanel("test")

	cases := []NumberSpec{
		{Object: &x, Property: "x", Min: 1, Max: 0},
		{Object: &x, Property: "x", Min: 0, Max: 1, Step: -0.1},
		{Object: &x, Property: "x", Min: float32(math.NaN()), Max: 1},
	}
	for _, spec := range cases {
		if _, err := panel.AddNumber(spec, Float(&x)); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Expected ErrInvalidRange for %+v, got %v", spec, err)
		}
	}
	if _, err := panel.AddNumber(NumberSpec{Property: "x", Max: 1}, Binding{}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for a missing binding, got %v", err)
	}
}

func TestAddControlRejectsUncomparableOwner(t *testing.T) {
	values := []float32{0, 1}
	on := false
	panel := NewPanel("test")

	spec := NumberSpec{Object: values, Property: "values.0", Min: 0, Max: 1}
	if _, err := panel.AddNumber(spec, Float(&values[0])); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for a slice owner, got %v", err)
	}
	if _, err := panel.AddBool("", map[string]bool{}, "on", "", Bool(&on)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for a map owner, got %v", err)
	}
	if panel.Len() != 0 {
		t.Errorf("Rejected controls should not be registered, got %d", panel.Len())
	}

	spec.Object = &values
	if _, err := panel.AddNumber(spec, Float(&values[0])); err != nil {
		t.Errorf("A pointer owner should be accepted, got %v", err)
	}
}

func TestColorControlClamps(t *testing.T) {
	l := &lamp{}
	panel := NewPanel("test")
	control, err := panel.AddColor("", l, "color", "Color", Color(&l.Color))
	if err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}

	control.Apply(mgl32.Vec3{2, 0.5, -1})
	if l.Color != (mgl32.Vec3{1, 0.5, 0}) {
		t.Errorf("Unexpected colour %v", l.Color)
	}
}

func TestBoolControlToggle(t *testing.T) {
	l := &lamp{}
	panel := NewPanel("test")
	control, _ := panel.AddBool("Shadows", l, "on", "Enabled", Bool(&l.On))

	if !control.Toggle() || !l.On {
		t.Error("Toggle should switch the flag on")
	}
	if control.Toggle() || l.On {
		t.Error("Toggle should switch the flag off")
	}
}

func TestFoldersOnlyAffectDisplay(t *testing.T) {
	l := &lamp{Intensity: 1}
	panel := NewPanel("test")
	spec := NumberSpec{Object: l, Property: "intensity", Min: 0, Max: 3, Step: 0.001}

	a, _ := panel.AddNumberTo("Lights", spec, Float(&l.Intensity))
	b, _ := panel.AddNumber(spec, Float(&l.Intensity))

	if a != b {
		t.Error("Folder placement should not create a second control for the same tuple")
	}
	if len(panel.Folder("Lights").Controls()) != 1 || len(panel.Root().Controls()) != 0 {
		t.Error("Control should stay in the folder it was first registered in")
	}
}
