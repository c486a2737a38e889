package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/curveboard/pkg/math"
)

// Orbit moves a Camera around its look-at target on a sphere.
type Orbit struct {
	camera *Camera

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians, around +Y

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit controller for cam, starting from its current
// pose.
func NewOrbit(cam *Camera) *Orbit {
	o := &Orbit{
		camera:          cam,
		MinDistance:     0.5,
		MaxDistance:     100,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}

	offset := cam.Position().Sub(cam.At())
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.Pitch = math32.Asin(offset.Y / o.Distance)
		o.Yaw = math32.Atan2(offset.X, offset.Z)
	}
	return o
}

// Offset returns the camera position relative to the target.
func (o *Orbit) Offset() math.Vec3 {
	sinP, cosP := math32.Sincos(o.Pitch)
	sinY, cosY := math32.Sincos(o.Yaw)
	return math.Vec3{
		X: o.Distance * cosP * sinY,
		Y: o.Distance * sinP,
		Z: o.Distance * cosP * cosY,
	}
}

// HandleDrag rotates around the target by a pointer delta in pixels.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	o.Yaw -= deltaX * o.DragSensitivity
	o.Pitch += deltaY * o.DragSensitivity
	o.Pitch = clamp(o.Pitch, -o.MaxPitch, o.MaxPitch)
	o.apply()
}

// HandleZoom scales the distance by a wheel delta.
func (o *Orbit) HandleZoom(delta float32) {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	o.Distance = clamp(o.Distance, o.MinDistance, o.MaxDistance)
	o.apply()
}

func (o *Orbit) apply() {
	o.camera.SetPosition(o.camera.At().Add(o.Offset()))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
