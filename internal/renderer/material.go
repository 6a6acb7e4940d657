package renderer

import "github.com/go-gl/mathgl/mgl32"

// StandardMaterial is a metalness/roughness PBR material. One instance may be
// shared by several meshes; writes through any of them are seen by all.
type StandardMaterial struct {
	// HOT DATA - uploaded every draw
	Color     mgl32.Vec3
	Roughness float32 // 0.0 = mirror, 1.0 = completely rough
	Metalness float32 // 0.0 = dielectric, 1.0 = metallic

	// COLD DATA
	Name string
}

// NewStandardMaterial returns a white, fully rough dielectric.
func NewStandardMaterial() *StandardMaterial {
	return &StandardMaterial{
		Name:      "standard",
		Color:     mgl32.Vec3{1, 1, 1},
		Roughness: 1.0,
		Metalness: 0.0,
	}
}

func (m *StandardMaterial) SetRoughness(roughness float32) {
	m.Roughness = clamp01(roughness)
}

func (m *StandardMaterial) SetMetalness(metalness float32) {
	m.Metalness = clamp01(metalness)
}

func (m *StandardMaterial) SetColor(r, g, b float32) {
	m.Color = mgl32.Vec3{clamp01(r), clamp01(g), clamp01(b)}
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}
