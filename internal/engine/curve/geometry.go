package curve

import "github.com/Faultbox/curveboard/pkg/math"

// forward is the axis tangents are crossed with to get in-plane normals.
var forward = math.Vec3{X: 0, Y: 0, Z: -1}

// segment returns the finite-difference tangent at sample i in the XY plane:
// the step from the previous sample, or from sample 0 to 1 for the first one.
// samples must hold at least two points.
func segment(samples []float32, i int) math.Vec2 {
	prev := max(i-1, 0)
	from := math.Vec2{X: samples[prev*3], Y: samples[prev*3+1]}
	to := math.Vec2{X: samples[prev*3+3], Y: samples[prev*3+4]}
	return to.Sub(from)
}

// Tangents writes atan2(dy, dx) of each sample's tangent into dst, one angle
// per sample. These approximate the curve's direction; they are not the
// derivative of the underlying shape.
func Tangents(samples, dst []float32) {
	for i := range dst {
		dst[i] = segment(samples, i).Angle()
	}
}

// Normals writes a unit in-plane normal per sample into dst (3 scalars per
// sample), perpendicular to the tangent. Consecutive duplicate samples have
// no direction and yield a zero normal.
func Normals(samples, dst []float32) {
	for i := 0; i < len(dst)/3; i++ {
		n := segment(samples, i).Extend(0).Cross(forward).Normalize()
		dst[i*3], dst[i*3+1], dst[i*3+2] = n.X, n.Y, n.Z
	}
}
