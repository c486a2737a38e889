// Package camera provides the perspective camera used to draw curves.
package camera

import (
	"github.com/Faultbox/curveboard/pkg/math"
)

// Default projection parameters.
const (
	DefaultFieldOfView = 70.0
	DefaultNear        = 0.1
	DefaultFar         = 1000.0
)

// Camera is a perspective camera with a lazily computed projection-view
// matrix.
//
// The pose (position, at, up) is turned into a look-at matrix which is then
// inverted before it is combined with the projection. Any setter only marks
// the cached matrices dirty; they are rebuilt on the next read.
//
// A Camera is not safe for concurrent use.
type Camera struct {
	position math.Vec3
	at       math.Vec3
	up       math.Vec3

	fov    float32 // degrees
	near   float32
	far    float32
	aspect float32

	// Viewport size in pixels, as last reported by the paint surface.
	width, height int

	view                  math.Mat4
	projection            math.Mat4
	projectionView        math.Mat4
	inverseProjectionView math.Mat4

	dirty        bool
	dirtyInverse bool
}

// New creates a camera with the given vertical field of view (degrees) and
// clip planes. It sits at (0, 0, -1) looking at the origin with +Y up.
func New(fov, near, far float32) *Camera {
	return &Camera{
		position:     math.Vec3{X: 0, Y: 0, Z: -1},
		at:           math.Vec3{},
		up:           math.Vec3{X: 0, Y: 1, Z: 0},
		fov:          fov,
		near:         near,
		far:          far,
		aspect:       1,
		dirty:        true,
		dirtyInverse: true,
	}
}

// NewDefault creates a camera with the default projection parameters.
func NewDefault() *Camera {
	return New(DefaultFieldOfView, DefaultNear, DefaultFar)
}

// Position returns the camera position.
func (c *Camera) Position() math.Vec3 { return c.position }

// At returns the look-at target.
func (c *Camera) At() math.Vec3 { return c.at }

// Up returns the up vector.
func (c *Camera) Up() math.Vec3 { return c.up }

// AspectRatio returns width/height.
func (c *Camera) AspectRatio() float32 { return c.aspect }

// FieldOfView returns the vertical field of view in degrees.
func (c *Camera) FieldOfView() float32 { return c.fov }

// Near returns the near clip plane distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clip plane distance.
func (c *Camera) Far() float32 { return c.far }

// SetPosition moves the camera.
func (c *Camera) SetPosition(p math.Vec3) {
	c.position = p
	c.invalidate()
}

// SetAt sets the look-at target.
func (c *Camera) SetAt(p math.Vec3) {
	c.at = p
	c.invalidate()
}

// SetUp sets the up vector.
func (c *Camera) SetUp(v math.Vec3) {
	c.up = v
	c.invalidate()
}

// SetAspectRatio sets width/height. Callers must keep it positive.
func (c *Camera) SetAspectRatio(ar float32) {
	c.aspect = ar
	c.invalidate()
}

// SetFieldOfView sets the vertical field of view in degrees.
func (c *Camera) SetFieldOfView(deg float32) {
	c.fov = deg
	c.invalidate()
}

// Translate adds a delta to the camera position.
func (c *Camera) Translate(dx, dy, dz float32) {
	c.position.X += dx
	c.position.Y += dy
	c.position.Z += dz
	c.invalidate()
}

// SetViewport records the surface size in pixels and updates the aspect
// ratio to width/height. A zero height leaves the aspect ratio untouched.
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
	if height > 0 {
		c.SetAspectRatio(float32(width) / float32(height))
	}
}

// Viewport returns the last size passed to SetViewport.
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// ProjectionViewMatrix returns projection * view for the current parameters.
func (c *Camera) ProjectionViewMatrix() math.Mat4 {
	if c.dirty {
		c.update()
		c.dirty = false
	}
	return c.projectionView
}

// InverseProjectionViewMatrix returns the inverse of ProjectionViewMatrix.
// If the forward matrix is singular the previous inverse is kept.
func (c *Camera) InverseProjectionViewMatrix() math.Mat4 {
	pv := c.ProjectionViewMatrix()
	if c.dirtyInverse {
		if inv, ok := pv.Inverse(); ok {
			c.inverseProjectionView = inv
		}
		c.dirtyInverse = false
	}
	return c.inverseProjectionView
}

func (c *Camera) invalidate() {
	c.dirty = true
	c.dirtyInverse = true
}

// update rebuilds the view, projection and combined matrices.
func (c *Camera) update() {
	lookAt := math.LookAt(c.position, c.at, c.up)
	if view, ok := lookAt.Inverse(); ok {
		c.view = view
	}
	c.projection = math.Perspective(math.Radians(c.fov), c.aspect, c.near, c.far)
	c.projectionView = c.projection.Mul(c.view)
}
