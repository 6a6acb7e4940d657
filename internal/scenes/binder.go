package scenes

import (
	"fmt"
	"math"
	"strings"

	"LightLab/internal/debugpanel"
	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type bindingKind int

const (
	NUMBER_BINDING bindingKind = iota
	COLOR_BINDING
	BOOL_BINDING
)

// target is a resolved property path. Exactly one binding is set, picked by
// kind.
type target struct {
	kind   bindingKind
	object any

	number debugpanel.Binding
	color  debugpanel.ColorBinding
	flag   debugpanel.BoolBinding
}

// BindControls registers every control listed in the config's debug section.
// Nothing is written to the scene while binding; the panel shows live values.
func BindControls(panel *debugpanel.Panel, a *Assembly) error {
	for _, d := range a.Config.Debug {
		t, err := a.resolve(d.Path)
		if err != nil {
			return err
		}
		label := d.Label
		if label == "" {
			label = d.Path
		}

		switch t.kind {
		case NUMBER_BINDING:
			spec := debugpanel.NumberSpec{
				Object:   t.object,
				Property: d.Path,
				Min:      d.Min,
				Max:      d.Max,
				Step:     d.Step,
				Label:    label,
			}
			_, err = panel.AddNumberTo(d.Folder, spec, t.number)
		case COLOR_BINDING:
			_, err = panel.AddColor(d.Folder, t.object, d.Path, label, t.color)
		case BOOL_BINDING:
			_, err = panel.AddBool(d.Folder, t.object, d.Path, label, t.flag)
		}
		if err != nil {
			return fmt.Errorf("debug control %q: %w", d.Path, err)
		}
	}
	logger.Log.Info("Debug controls bound",
		zap.String("variant", a.Config.Name), zap.Int("controls", panel.Len()))
	return nil
}

func (a *Assembly) resolve(path string) (target, error) {
	parts := strings.Split(path, ".")
	unknown := fmt.Errorf("unknown property path %q: %w", path, ErrInvalidConfig)

	switch parts[0] {
	case "material":
		return resolveMaterial(a.Material, parts[1:], unknown)
	case "sphere":
		return resolveMesh(a.Sphere, parts[1:], unknown)
	case "plane":
		return resolveMesh(a.Plane, parts[1:], unknown)
	case "camera":
		return resolveCamera(a.Camera, parts[1:], unknown)
	case "background":
		if len(parts) == 1 {
			return colorTarget(a.Scene, debugpanel.Color(&a.Scene.Background)), nil
		}
	case "shadows":
		if len(parts) == 2 && parts[1] == "enabled" {
			return boolTarget(a, debugpanel.BoolFunc(
				func() bool { return a.Shadows.Enabled },
				a.SetShadowsEnabled,
			)), nil
		}
	case "animation":
		if len(parts) == 2 && parts[1] == "enabled" {
			return boolTarget(a, debugpanel.Bool(&a.AnimationEnabled)), nil
		}
	case "helpers", "shadowhelpers":
		if len(parts) != 3 || parts[2] != "visible" {
			return target{}, unknown
		}
		suffix := "-helper"
		if parts[0] == "shadowhelpers" {
			suffix = "-shadow-camera"
		}
		h := a.Helper(parts[1] + suffix)
		if h == nil {
			return target{}, fmt.Errorf("no helper for light %q: %w", parts[1], ErrInvalidConfig)
		}
		return boolTarget(h, debugpanel.Bool(&h.Visible)), nil
	default:
		if light := a.Light(parts[0]); light != nil {
			return resolveLight(light, parts[1:], unknown)
		}
	}
	return target{}, unknown
}

func resolveLight(l *renderer.Light, rest []string, unknown error) (target, error) {
	if len(rest) == 0 {
		return target{}, unknown
	}
	spot := l.Kind == renderer.SPOT_LIGHT
	placed := l.CanCastShadow()

	switch rest[0] {
	case "intensity":
		if len(rest) == 1 {
			return numberTarget(l, debugpanel.Func(
				func() float32 { return l.Intensity },
				l.SetIntensity,
			)), nil
		}
	case "position":
		if placed {
			return vecComponent(l, &l.Position, rest[1:], unknown)
		}
	case "target":
		if placed {
			return vecComponent(l, &l.Target, rest[1:], unknown)
		}
	case "color":
		if len(rest) == 1 {
			return colorTarget(l, debugpanel.Color(&l.Color)), nil
		}
	case "groundColor":
		if len(rest) == 1 && l.Kind == renderer.HEMISPHERE_LIGHT {
			return colorTarget(l, debugpanel.Color(&l.GroundColor)), nil
		}
	case "angle":
		if len(rest) == 1 && spot {
			return numberTarget(l, debugpanel.Func(
				func() float32 { return l.Angle },
				func(v float32) { l.Angle = mgl32.Clamp(v, 0, math.Pi/2) },
			)), nil
		}
	case "penumbra":
		if len(rest) == 1 && spot {
			return numberTarget(l, debugpanel.Func(
				func() float32 { return l.Penumbra },
				func(v float32) { l.Penumbra = mgl32.Clamp(v, 0, 1) },
			)), nil
		}
	case "decay":
		if len(rest) == 1 && spot {
			return numberTarget(l, debugpanel.Float(&l.Decay)), nil
		}
	case "distance":
		if len(rest) == 1 && spot {
			return numberTarget(l, debugpanel.Float(&l.Distance)), nil
		}
	case "castShadow":
		if len(rest) == 1 && placed {
			return boolTarget(l, debugpanel.Bool(&l.CastShadow)), nil
		}
	case "shadow":
		if len(rest) == 2 && placed {
			return shadowField(l, rest[1], unknown)
		}
	}
	return target{}, unknown
}

// shadowField reads through l.Shadow on every access, since shadow setup may
// replace it after binding.
func shadowField(l *renderer.Light, name string, unknown error) (target, error) {
	var field func(s *renderer.LightShadow) *float32
	switch name {
	case "radius":
		field = func(s *renderer.LightShadow) *float32 { return &s.Radius }
	case "bias":
		field = func(s *renderer.LightShadow) *float32 { return &s.Bias }
	case "near":
		field = func(s *renderer.LightShadow) *float32 { return &s.Camera.Near }
	case "far":
		field = func(s *renderer.LightShadow) *float32 { return &s.Camera.Far }
	default:
		return target{}, unknown
	}
	return numberTarget(l, debugpanel.Func(
		func() float32 {
			if l.Shadow == nil {
				return 0
			}
			return *field(l.Shadow)
		},
		func(v float32) {
			if l.Shadow != nil {
				*field(l.Shadow) = v
			}
		},
	)), nil
}

func resolveMaterial(m *renderer.StandardMaterial, rest []string, unknown error) (target, error) {
	if len(rest) != 1 {
		return target{}, unknown
	}
	switch rest[0] {
	case "roughness":
		return numberTarget(m, debugpanel.Func(func() float32 { return m.Roughness }, m.SetRoughness)), nil
	case "metalness":
		return numberTarget(m, debugpanel.Func(func() float32 { return m.Metalness }, m.SetMetalness)), nil
	case "color":
		return colorTarget(m, debugpanel.ColorBinding{
			Get: func() mgl32.Vec3 { return m.Color },
			Set: func(c mgl32.Vec3) { m.SetColor(c[0], c[1], c[2]) },
		}), nil
	}
	return target{}, unknown
}

func resolveMesh(m *renderer.Mesh, rest []string, unknown error) (target, error) {
	if len(rest) == 0 {
		return target{}, unknown
	}
	switch rest[0] {
	case "position":
		return vecComponent(m, &m.Position, rest[1:], unknown)
	case "rotation":
		return vecComponent(m, &m.Rotation, rest[1:], unknown)
	case "visible":
		if len(rest) == 1 {
			return boolTarget(m, debugpanel.Bool(&m.Visible)), nil
		}
	case "castShadow":
		if len(rest) == 1 {
			return boolTarget(m, debugpanel.Bool(&m.CastShadow)), nil
		}
	case "receiveShadow":
		if len(rest) == 1 {
			return boolTarget(m, debugpanel.Bool(&m.ReceiveShadow)), nil
		}
	}
	return target{}, unknown
}

func resolveCamera(c *renderer.Camera, rest []string, unknown error) (target, error) {
	if len(rest) != 1 {
		if len(rest) == 2 && rest[0] == "position" {
			return vecComponent(c, &c.Position, rest[1:], unknown)
		}
		return target{}, unknown
	}
	switch rest[0] {
	case "fov":
		return numberTarget(c, debugpanel.Func(func() float32 { return c.Fov }, c.SetFov)), nil
	case "near":
		return numberTarget(c, debugpanel.Func(func() float32 { return c.Near }, c.SetNear)), nil
	case "far":
		return numberTarget(c, debugpanel.Func(func() float32 { return c.Far }, c.SetFar)), nil
	}
	return target{}, unknown
}

func vecComponent(object any, v *mgl32.Vec3, rest []string, unknown error) (target, error) {
	if len(rest) != 1 {
		return target{}, unknown
	}
	axis := strings.Index("xyz", rest[0])
	if len(rest[0]) != 1 || axis < 0 {
		return target{}, unknown
	}
	return numberTarget(object, debugpanel.Float(&v[axis])), nil
}

func numberTarget(object any, b debugpanel.Binding) target {
	return target{kind: NUMBER_BINDING, object: object, number: b}
}

func colorTarget(object any, b debugpanel.ColorBinding) target {
	return target{kind: COLOR_BINDING, object: object, color: b}
}

func boolTarget(object any, b debugpanel.BoolBinding) target {
	return target{kind: BOOL_BINDING, object: object, flag: b}
}
