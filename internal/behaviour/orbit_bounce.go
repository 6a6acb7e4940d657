package behaviour

import (
	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// OrbitBounce moves a mesh around the Y axis on the XZ plane while it bounces.
// The bounce is |sin| so the mesh never dips below its rest height.
type OrbitBounce struct {
	Mesh         *renderer.Mesh
	Radius       float32
	Amplitude    float32
	Speed        float32 // radians per second
	BobFrequency float32 // bounces per orbit radian
}

func NewOrbitBounce(mesh *renderer.Mesh, params Params) *OrbitBounce {
	ob := &OrbitBounce{
		Mesh:         mesh,
		Radius:       params.Radius,
		Amplitude:    params.Amplitude,
		Speed:        params.Speed,
		BobFrequency: params.BobFrequency,
	}
	if ob.Speed == 0 {
		ob.Speed = 1
	}
	if ob.BobFrequency == 0 {
		ob.BobFrequency = 3
	}
	return ob
}

func (ob *OrbitBounce) Start() {
	logger.Log.Debug("Orbit animation started",
		zap.String("mesh", ob.Mesh.Name),
		zap.Float32("radius", ob.Radius),
		zap.Float32("amplitude", ob.Amplitude))
}

func (ob *OrbitBounce) Update(frame Frame) {
	if !frame.Animate || ob.Mesh == nil {
		return
	}
	ob.Mesh.SetPosition(ob.PositionAt(frame.Seconds()))
}

// PositionAt returns the mesh position t seconds into the animation.
func (ob *OrbitBounce) PositionAt(t float32) (x, y, z float32) {
	angle := t * ob.Speed
	x = math32.Cos(angle) * ob.Radius
	z = math32.Sin(angle) * ob.Radius
	y = math32.Abs(math32.Sin(angle*ob.BobFrequency)) * ob.Amplitude
	return x, y, z
}
