package controls

import (
	"LightLab/internal/renderer"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// DefaultDampingFactor is the fraction of the pending motion applied per step.
const DefaultDampingFactor float32 = 0.05

type pointerState int

const (
	POINTER_NONE pointerState = iota
	POINTER_ROTATE
	POINTER_PAN
)

type PointerButton int

const (
	BUTTON_LEFT PointerButton = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
)

// OrbitControls rotates, zooms and pans a camera around Target. Motion is
// accumulated from pointer input and applied by Update, once per frame.
type OrbitControls struct {
	Camera *renderer.Camera
	Target mgl32.Vec3

	Enabled       bool
	EnableDamping bool
	DampingFactor float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32 // radians from +Y
	MaxPolarAngle float32

	// Pending motion, decayed by Update when damping is on.
	thetaDelta float32
	phiDelta   float32
	scale      float32
	panOffset  mgl32.Vec3

	viewportHeight float32
	state          pointerState
	lastX, lastY   float32
}

func NewOrbitControls(camera *renderer.Camera) *OrbitControls {
	return &OrbitControls{
		Camera:         camera,
		Target:         camera.Target,
		Enabled:        true,
		DampingFactor:  DefaultDampingFactor,
		RotateSpeed:    1,
		ZoomSpeed:      1,
		PanSpeed:       1,
		MinDistance:    0,
		MaxDistance:    math32.Inf(1),
		MinPolarAngle:  0,
		MaxPolarAngle:  math32.Pi,
		scale:          1,
		viewportHeight: 1,
	}
}

// SetViewportHeight converts pixel deltas to angles. Non-positive heights are ignored.
func (oc *OrbitControls) SetViewportHeight(height float32) {
	if height > 0 {
		oc.viewportHeight = height
	}
}

// RotateLeft adds an azimuth change in radians.
func (oc *OrbitControls) RotateLeft(angle float32) {
	oc.thetaDelta -= angle
}

// RotateUp adds a polar change in radians.
func (oc *OrbitControls) RotateUp(angle float32) {
	oc.phiDelta -= angle
}

// Dolly scales the orbit radius. factor < 1 moves the camera in.
func (oc *OrbitControls) Dolly(factor float32) {
	if factor > 0 {
		oc.scale *= factor
	}
}

// Pan moves the target by a world space offset.
func (oc *OrbitControls) Pan(offset mgl32.Vec3) {
	oc.panOffset = oc.panOffset.Add(offset)
}

func (oc *OrbitControls) PointerDown(button PointerButton, x, y float32) {
	if !oc.Enabled {
		return
	}
	switch button {
	case BUTTON_LEFT:
		oc.state = POINTER_ROTATE
	case BUTTON_RIGHT, BUTTON_MIDDLE:
		oc.state = POINTER_PAN
	}
	oc.lastX, oc.lastY = x, y
}

func (oc *OrbitControls) PointerMove(x, y float32) {
	dx, dy := x-oc.lastX, y-oc.lastY
	oc.lastX, oc.lastY = x, y
	if !oc.Enabled {
		return
	}
	switch oc.state {
	case POINTER_ROTATE:
		oc.RotateLeft(2 * math32.Pi * dx / oc.viewportHeight * oc.RotateSpeed)
		oc.RotateUp(2 * math32.Pi * dy / oc.viewportHeight * oc.RotateSpeed)
	case POINTER_PAN:
		oc.panPixels(dx, dy)
	}
}

func (oc *OrbitControls) PointerUp() {
	oc.state = POINTER_NONE
}

// Wheel handles a scroll step. Positive offsets zoom in.
func (oc *OrbitControls) Wheel(yOffset float32) {
	if !oc.Enabled || yOffset == 0 {
		return
	}
	zoomScale := math32.Pow(0.95, oc.ZoomSpeed)
	if yOffset > 0 {
		oc.Dolly(zoomScale)
	} else {
		oc.Dolly(1 / zoomScale)
	}
}

func (oc *OrbitControls) panPixels(dx, dy float32) {
	cam := oc.Camera
	offset := cam.Position.Sub(oc.Target)
	// Half the visible height at the target distance.
	targetDistance := offset.Len() * math32.Tan(mgl32.DegToRad(cam.Fov)/2)

	front := cam.Front()
	right := front.Cross(cam.Up)
	if right.Len() < polarEpsilon {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(front).Normalize()

	left := right.Mul(-2 * dx * targetDistance / oc.viewportHeight * oc.PanSpeed)
	upward := up.Mul(2 * dy * targetDistance / oc.viewportHeight * oc.PanSpeed)
	oc.Pan(left.Add(upward))
}

// Update applies one step of pending motion and moves the camera. It reports
// whether the camera moved.
func (oc *OrbitControls) Update() bool {
	cam := oc.Camera
	offset := cam.Position.Sub(oc.Target)

	radius := offset.Len()
	var theta, phi float32
	if radius > 0 {
		theta = math32.Atan2(offset.X(), offset.Z())
		phi = math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))
	}

	factor := float32(1)
	if oc.EnableDamping {
		factor = oc.DampingFactor
	}

	theta += oc.thetaDelta * factor
	phi += oc.phiDelta * factor
	phi = mgl32.Clamp(phi, oc.MinPolarAngle, oc.MaxPolarAngle)
	phi = mgl32.Clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)

	radius *= oc.scale
	radius = mgl32.Clamp(radius, oc.MinDistance, oc.MaxDistance)

	oc.Target = oc.Target.Add(oc.panOffset.Mul(factor))

	sinPhi := math32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}
	previous := cam.Position
	cam.Position = oc.Target.Add(offset)
	cam.LookAt(oc.Target)

	if oc.EnableDamping {
		oc.thetaDelta *= 1 - oc.DampingFactor
		oc.phiDelta *= 1 - oc.DampingFactor
		oc.panOffset = oc.panOffset.Mul(1 - oc.DampingFactor)
	} else {
		oc.thetaDelta, oc.phiDelta = 0, 0
		oc.panOffset = mgl32.Vec3{}
	}
	oc.scale = 1

	return previous.Sub(cam.Position).Len() > polarEpsilon
}

// Pending reports the motion still to be applied.
func (oc *OrbitControls) Pending() (theta, phi float32, pan mgl32.Vec3) {
	return oc.thetaDelta, oc.phiDelta, oc.panOffset
}
