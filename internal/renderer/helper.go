package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type HelperKind int

const (
	DIRECTIONAL_LIGHT_HELPER HelperKind = iota
	SPOT_LIGHT_HELPER
	SHADOW_CAMERA_HELPER
)

// Helper draws debug lines for a light or its shadow camera. Helpers never
// take part in lighting or shadowing.
type Helper struct {
	Name    string
	Kind    HelperKind
	Light   *Light
	Color   mgl32.Vec3
	Visible bool
}

func NewLightHelper(light *Light) *Helper {
	kind := DIRECTIONAL_LIGHT_HELPER
	if light.Kind == SPOT_LIGHT {
		kind = SPOT_LIGHT_HELPER
	}
	return &Helper{
		Name:    light.Name + "-helper",
		Kind:    kind,
		Light:   light,
		Color:   light.Color,
		Visible: true,
	}
}

func NewShadowCameraHelper(light *Light) *Helper {
	return &Helper{
		Name:    light.Name + "-shadow-camera",
		Kind:    SHADOW_CAMERA_HELPER,
		Light:   light,
		Color:   mgl32.Vec3{1, 0.6, 0},
		Visible: true,
	}
}

func (h *Helper) NodeName() string {
	return h.Name
}

// Lines returns world space segments as consecutive point pairs.
func (h *Helper) Lines() []mgl32.Vec3 {
	if h.Light == nil {
		return nil
	}
	switch h.Kind {
	case SHADOW_CAMERA_HELPER:
		return h.frustumLines()
	case SPOT_LIGHT_HELPER:
		return h.coneLines()
	default:
		return h.directionLines()
	}
}

func (h *Helper) directionLines() []mgl32.Vec3 {
	l := h.Light
	const size = 0.5

	right := l.Direction().Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize().Mul(size)
	up := right.Cross(l.Direction()).Normalize().Mul(size)

	c := [4]mgl32.Vec3{
		l.Position.Add(right).Add(up),
		l.Position.Sub(right).Add(up),
		l.Position.Sub(right).Sub(up),
		l.Position.Add(right).Sub(up),
	}
	return []mgl32.Vec3{
		c[0], c[1], c[1], c[2], c[2], c[3], c[3], c[0],
		l.Position, l.Target,
	}
}

func (h *Helper) coneLines() []mgl32.Vec3 {
	l := h.Light
	length := l.Distance
	if length <= 0 {
		length = 1
	}
	dir := l.Direction()
	tip := l.Position
	base := tip.Add(dir.Mul(length))
	radius := length * math32.Tan(l.Angle)

	right := dir.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(dir).Normalize()

	const segments = 16
	var lines []mgl32.Vec3
	var prev mgl32.Vec3
	for i := 0; i <= segments; i++ {
		a := float32(i) / segments * 2 * math32.Pi
		p := base.Add(right.Mul(math32.Cos(a) * radius)).Add(up.Mul(math32.Sin(a) * radius))
		if i > 0 {
			lines = append(lines, prev, p)
		}
		if i%4 == 0 && i < segments {
			lines = append(lines, tip, p)
		}
		prev = p
	}
	return lines
}

// frustumLines unprojects the corners of the light's shadow volume.
func (h *Helper) frustumLines() []mgl32.Vec3 {
	inv := h.Light.ShadowMatrix().Inv()

	var corners [8]mgl32.Vec3
	i := 0
	for _, z := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, x := range []float32{-1, 1} {
				p := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
				corners[i] = p.Vec3().Mul(1 / p.W())
				i++
			}
		}
	}

	edges := [12][2]int{
		{0, 1}, {1, 3}, {3, 2}, {2, 0},
		{4, 5}, {5, 7}, {7, 6}, {6, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	lines := make([]mgl32.Vec3, 0, len(edges)*2)
	for _, e := range edges {
		lines = append(lines, corners[e[0]], corners[e[1]])
	}
	return lines
}
