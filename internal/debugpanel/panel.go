package debugpanel

import (
	"errors"
	"fmt"
	"reflect"

	"LightLab/internal/logger"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// ErrInvalidRange is returned when a control is registered with a range it
// could never satisfy.
var ErrInvalidRange = errors.New("invalid control range")

type controlKey struct {
	object   any
	property string
	min      float32
	max      float32
	step     float32
	label    string
}

// Folder groups controls for display. Grouping never changes what a control
// writes.
type Folder struct {
	Name     string
	Open     bool
	controls []Control
}

func (f *Folder) Controls() []Control {
	return f.controls
}

// Panel owns every registered control. Registering the same control twice
// hands back the first registration.
type Panel struct {
	Title   string
	Visible bool

	root    *Folder
	folders []*Folder
	index   map[controlKey]Control
}

func NewPanel(title string) *Panel {
	return &Panel{
		Title:   title,
		Visible: true,
		root:    &Folder{Open: true},
		index:   make(map[controlKey]Control),
	}
}

// Folder returns the named folder, creating it on first use.
func (p *Panel) Folder(name string) *Folder {
	if name == "" {
		return p.root
	}
	for _, f := range p.folders {
		if f.Name == name {
			return f
		}
	}
	f := &Folder{Name: name}
	p.folders = append(p.folders, f)
	return f
}

func (p *Panel) Root() *Folder {
	return p.root
}

func (p *Panel) Folders() []*Folder {
	return p.folders
}

// Controls lists every control in display order: root first, then folders.
func (p *Panel) Controls() []Control {
	all := append([]Control(nil), p.root.controls...)
	for _, f := range p.folders {
		all = append(all, f.controls...)
	}
	return all
}

func (p *Panel) Len() int {
	return len(p.index)
}

func (p *Panel) AddNumber(spec NumberSpec, binding Binding) (*NumberControl, error) {
	return p.AddNumberTo("", spec, binding)
}

// AddNumberTo registers a numeric control in folder. The live value is left
// untouched; it is displayed as is until the user moves the control.
func (p *Panel) AddNumberTo(folder string, spec NumberSpec, binding Binding) (*NumberControl, error) {
	if !binding.valid() {
		return nil, fmt.Errorf("%s: missing accessor: %w", spec.Property, ErrInvalidRange)
	}
	if err := checkObject(spec.Object, spec.Property); err != nil {
		return nil, err
	}
	if math32.IsNaN(spec.Min) || math32.IsNaN(spec.Max) || spec.Min > spec.Max {
		return nil, fmt.Errorf("%s: min %v max %v: %w", spec.Property, spec.Min, spec.Max, ErrInvalidRange)
	}
	if math32.IsNaN(spec.Step) || spec.Step < 0 {
		return nil, fmt.Errorf("%s: step %v: %w", spec.Property, spec.Step, ErrInvalidRange)
	}

	key := controlKey{spec.Object, spec.Property, spec.Min, spec.Max, spec.Step, spec.Label}
	if existing, ok := p.index[key]; ok {
		logger.Log.Debug("Control already registered", zap.String("property", spec.Property))
		return existing.(*NumberControl), nil
	}

	control := &NumberControl{Spec: spec, binding: binding}
	p.register(folder, key, control)
	return control, nil
}

func (p *Panel) AddColor(folder string, object any, property, label string, binding ColorBinding) (*ColorControl, error) {
	if !binding.valid() {
		return nil, fmt.Errorf("%s: missing accessor: %w", property, ErrInvalidRange)
	}
	if err := checkObject(object, property); err != nil {
		return nil, err
	}
	key := controlKey{object: object, property: property, label: "color:" + label}
	if existing, ok := p.index[key]; ok {
		return existing.(*ColorControl), nil
	}
	control := &ColorControl{Object: object, Property: property, label: labelOr(label, property), binding: binding}
	p.register(folder, key, control)
	return control, nil
}

func (p *Panel) AddBool(folder string, object any, property, label string, binding BoolBinding) (*BoolControl, error) {
	if !binding.valid() {
		return nil, fmt.Errorf("%s: missing accessor: %w", property, ErrInvalidRange)
	}
	if err := checkObject(object, property); err != nil {
		return nil, err
	}
	key := controlKey{object: object, property: property, label: "bool:" + label}
	if existing, ok := p.index[key]; ok {
		return existing.(*BoolControl), nil
	}
	control := &BoolControl{Object: object, Property: property, label: labelOr(label, property), binding: binding}
	p.register(folder, key, control)
	return control, nil
}

func (p *Panel) register(folder string, key controlKey, control Control) {
	f := p.Folder(folder)
	f.controls = append(f.controls, control)
	p.index[key] = control
	logger.Log.Debug("Control registered",
		zap.String("folder", folder), zap.String("label", control.Label()))
}

// checkObject rejects owners that cannot key the dedupe index. Pass a pointer
// rather than a slice, map or func.
func checkObject(object any, property string) error {
	if object == nil || reflect.TypeOf(object).Comparable() {
		return nil
	}
	return fmt.Errorf("%s: owner of type %T is not comparable: %w", property, object, ErrInvalidRange)
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
