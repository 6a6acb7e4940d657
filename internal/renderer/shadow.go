package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxShadowPasses is the number of shadow maps the main shader can sample.
const MaxShadowPasses = 2

// DefaultShadowMapSize is the width and height of a shadow map in texels.
const DefaultShadowMapSize = 512

type ShadowMapType int

const (
	BASIC_SHADOW_MAP ShadowMapType = iota
	PCF_SHADOW_MAP
	PCF_SOFT_SHADOW_MAP
)

func (t ShadowMapType) String() string {
	switch t {
	case BASIC_SHADOW_MAP:
		return "basic"
	case PCF_SHADOW_MAP:
		return "pcf"
	case PCF_SOFT_SHADOW_MAP:
		return "pcfsoft"
	}
	return "unknown"
}

func ParseShadowMapType(name string) (ShadowMapType, bool) {
	switch name {
	case "basic":
		return BASIC_SHADOW_MAP, true
	case "pcf", "":
		return PCF_SHADOW_MAP, true
	case "pcfsoft":
		return PCF_SOFT_SHADOW_MAP, true
	}
	return 0, false
}

// ShadowSettings is the renderer wide switch for shadow mapping. The zero value
// means shadows are off.
type ShadowSettings struct {
	Enabled bool          `json:"enabled"`
	Type    ShadowMapType `json:"type"`
}

// ShadowCamera bounds the volume rasterized into a shadow map. Left, Right,
// Top and Bottom only apply to directional lights; spot lights derive their
// frustum from the cone angle.
type ShadowCamera struct {
	Near   float32
	Far    float32
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

type LightShadow struct {
	MapSize int32
	Camera  ShadowCamera
	Radius  float32 // blur radius in texels, PCF only
	Bias    float32
}

func DefaultDirectionalShadow() *LightShadow {
	return &LightShadow{
		MapSize: DefaultShadowMapSize,
		Camera:  ShadowCamera{Near: 0.5, Far: 500, Left: -5, Right: 5, Top: 5, Bottom: -5},
		Radius:  1,
	}
}

func DefaultSpotShadow() *LightShadow {
	return &LightShadow{
		MapSize: DefaultShadowMapSize,
		Camera:  ShadowCamera{Near: 0.5, Far: 500},
		Radius:  1,
	}
}

// IsPowerOfTwo reports whether n is a positive power of two. Other sizes still
// work but waste texels.
func IsPowerOfTwo(n int32) bool {
	return n > 0 && n&(n-1) == 0
}

// ShadowMatrix returns the light space view-projection used to rasterize and
// sample the light's shadow map.
func (l *Light) ShadowMatrix() mgl32.Mat4 {
	shadow := l.Shadow
	if shadow == nil {
		return mgl32.Ident4()
	}
	cam := shadow.Camera

	up := mgl32.Vec3{0, 1, 0}
	dir := l.Direction()
	if math32.Abs(dir.Dot(up)) > 0.999 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(l.Position, l.Position.Add(dir), up)

	var proj mgl32.Mat4
	switch l.Kind {
	case SPOT_LIGHT:
		fov := 2 * l.Angle
		if fov <= 0 {
			fov = mgl32.DegToRad(50)
		}
		proj = mgl32.Perspective(fov, 1, cam.Near, cam.Far)
	default:
		proj = mgl32.Ortho(cam.Left, cam.Right, cam.Bottom, cam.Top, cam.Near, cam.Far)
	}
	return proj.Mul4(view)
}

type ShadowPass struct {
	Light      *Light
	LightSpace mgl32.Mat4
	Casters    []*Mesh
	Receivers  []*Mesh
}

// ShadowPlan is what a backend needs to render one frame's shadows.
type ShadowPlan struct {
	Settings ShadowSettings
	Passes   []ShadowPass
}

// PlanShadows collects the shadow passes for scene. With shadows disabled the
// plan is empty whatever the per-light and per-mesh flags say.
func PlanShadows(scene *Scene, settings ShadowSettings) ShadowPlan {
	plan := ShadowPlan{Settings: settings}
	if !settings.Enabled || scene == nil {
		return plan
	}

	var casters, receivers []*Mesh
	for _, mesh := range scene.Meshes() {
		if !mesh.Visible {
			continue
		}
		if mesh.CastShadow {
			casters = append(casters, mesh)
		}
		if mesh.ReceiveShadow {
			receivers = append(receivers, mesh)
		}
	}

	for _, light := range scene.Lights() {
		if len(plan.Passes) == MaxShadowPasses {
			break
		}
		if !light.CastShadow || light.Shadow == nil || !light.CanCastShadow() {
			continue
		}
		plan.Passes = append(plan.Passes, ShadowPass{
			Light:      light,
			LightSpace: light.ShadowMatrix(),
			Casters:    casters,
			Receivers:  receivers,
		})
	}
	return plan
}

func (p ShadowPlan) Empty() bool {
	return len(p.Passes) == 0
}

// ShadowedBy lists the lights whose shadows fall on mesh.
func (p ShadowPlan) ShadowedBy(mesh *Mesh) []*Light {
	var lights []*Light
	for _, pass := range p.Passes {
		for _, r := range pass.Receivers {
			if r == mesh {
				lights = append(lights, pass.Light)
				break
			}
		}
	}
	return lights
}
