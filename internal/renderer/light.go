package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type LightKind int

const (
	AMBIENT_LIGHT LightKind = iota
	DIRECTIONAL_LIGHT
	HEMISPHERE_LIGHT
	SPOT_LIGHT
)

func (k LightKind) String() string {
	switch k {
	case AMBIENT_LIGHT:
		return "ambient"
	case DIRECTIONAL_LIGHT:
		return "directional"
	case HEMISPHERE_LIGHT:
		return "hemisphere"
	case SPOT_LIGHT:
		return "spot"
	}
	return "unknown"
}

// ParseLightKind maps a config name back to its kind.
func ParseLightKind(name string) (LightKind, bool) {
	switch name {
	case "ambient":
		return AMBIENT_LIGHT, true
	case "directional":
		return DIRECTIONAL_LIGHT, true
	case "hemisphere":
		return HEMISPHERE_LIGHT, true
	case "spot":
		return SPOT_LIGHT, true
	}
	return 0, false
}

type Light struct {
	Name       string
	Kind       LightKind
	Color      mgl32.Vec3
	Intensity  float32
	Position   mgl32.Vec3 // directional and spot only
	Target     mgl32.Vec3 // directional and spot aim at this point
	CastShadow bool
	Shadow     *LightShadow

	// Hemisphere
	GroundColor mgl32.Vec3

	// Spot
	Distance float32 // 0 means unlimited range
	Angle    float32 // cone half angle in radians
	Penumbra float32 // 0..1
	Decay    float32
}

func (l *Light) NodeName() string {
	return l.Name
}

// SetIntensity stores the intensity, clamping negatives to zero.
func (l *Light) SetIntensity(intensity float32) {
	if intensity < 0 {
		intensity = 0
	}
	l.Intensity = intensity
}

func (l *Light) SetPosition(x, y, z float32) {
	l.Position = mgl32.Vec3{x, y, z}
}

// Direction points from the light towards its target.
func (l *Light) Direction() mgl32.Vec3 {
	dir := l.Target.Sub(l.Position)
	if dir.Len() < 1e-6 {
		return mgl32.Vec3{0, -1, 0}
	}
	return dir.Normalize()
}

// CanCastShadow reports whether the light kind supports a shadow map.
func (l *Light) CanCastShadow() bool {
	return l.Kind == DIRECTIONAL_LIGHT || l.Kind == SPOT_LIGHT
}

func NewAmbientLight(color mgl32.Vec3, intensity float32) *Light {
	light := &Light{Name: "ambient", Kind: AMBIENT_LIGHT, Color: color}
	light.SetIntensity(intensity)
	return light
}

// NewDirectionalLight creates a light above the origin aiming at it.
func NewDirectionalLight(color mgl32.Vec3, intensity float32) *Light {
	light := &Light{
		Name:     "directional",
		Kind:     DIRECTIONAL_LIGHT,
		Color:    color,
		Position: mgl32.Vec3{0, 1, 0},
		Shadow:   DefaultDirectionalShadow(),
	}
	light.SetIntensity(intensity)
	return light
}

func NewHemisphereLight(skyColor, groundColor mgl32.Vec3, intensity float32) *Light {
	light := &Light{
		Name:        "hemisphere",
		Kind:        HEMISPHERE_LIGHT,
		Color:       skyColor,
		GroundColor: groundColor,
		Position:    mgl32.Vec3{0, 1, 0},
	}
	light.SetIntensity(intensity)
	return light
}

// NewSpotLight creates a cone light. angle is the half angle in radians and is
// capped at pi/2.
func NewSpotLight(color mgl32.Vec3, intensity, distance, angle, penumbra, decay float32) *Light {
	if angle > math.Pi/2 {
		angle = math.Pi / 2
	}
	light := &Light{
		Name:     "spot",
		Kind:     SPOT_LIGHT,
		Color:    color,
		Position: mgl32.Vec3{0, 1, 0},
		Distance: distance,
		Angle:    angle,
		Penumbra: penumbra,
		Decay:    decay,
		Shadow:   DefaultSpotShadow(),
	}
	light.SetIntensity(intensity)
	return light
}

// HexColor converts 0xRRGGBB to a linear 0..1 colour vector.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
