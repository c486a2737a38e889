// Package picking maps screen positions back into the scene.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/curveboard/pkg/math"
)

// Ray is a half-line in world space.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// viewportW/H are the dimensions the coordinates are measured in, and
// invViewProj is the inverse of the projection-view matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// normalized device coordinates, Y up
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	// The second point sits at NDC depth 0 rather than on the far plane,
	// which unprojects badly in float32 with a large far/near ratio.
	near := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	mid := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 0})

	return Ray{
		Origin:    near,
		Direction: mid.Sub(near).Normalize(),
	}
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneZ intersects the ray with the plane z = planeZ, where the
// curves live. ok is false if the ray is parallel to the plane or points away
// from it.
func (r Ray) IntersectPlaneZ(planeZ float32) (p math.Vec3, ok bool) {
	if math32.Abs(r.Direction.Z) < 1e-6 {
		return math.Vec3{}, false
	}

	t := (planeZ - r.Origin.Z) / r.Direction.Z
	if t < 0 {
		return math.Vec3{}, false
	}

	p = r.At(t)
	p.Z = planeZ
	return p, true
}
