package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh pairs a geometry with a (possibly shared) material and a transform.
type Mesh struct {
	// HOT DATA - read every frame
	Position      mgl32.Vec3
	Rotation      mgl32.Vec3 // Euler angles in radians, XYZ order (Rx * Ry * Rz)
	Scale         mgl32.Vec3
	Material      *StandardMaterial
	Geometry      *Geometry
	CastShadow    bool
	ReceiveShadow bool
	Visible       bool

	// COLD DATA
	Name string
}

func NewMesh(name string, geometry *Geometry, material *StandardMaterial) *Mesh {
	return &Mesh{
		Name:     name,
		Geometry: geometry,
		Material: material,
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

func (m *Mesh) NodeName() string {
	return m.Name
}

func (m *Mesh) X() float32 {
	return m.Position[0]
}

func (m *Mesh) Y() float32 {
	return m.Position[1]
}

func (m *Mesh) Z() float32 {
	return m.Position[2]
}

// SetPosition sets the position of the mesh
func (m *Mesh) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
}

func (m *Mesh) SetRotation(x, y, z float32) {
	m.Rotation = mgl32.Vec3{x, y, z}
}

// ModelMatrix is translation * rotation * scale.
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := mgl32.HomogRotate3DX(m.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(m.Rotation[2]))
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	return translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// WorldPoint transforms a local space point into world space.
func (m *Mesh) WorldPoint(local mgl32.Vec3) mgl32.Vec3 {
	return m.ModelMatrix().Mul4x1(local.Vec4(1)).Vec3()
}
