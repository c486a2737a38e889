// Package shapes provides concrete curve shapes.
package shapes

import (
	"fmt"
	"strings"

	"github.com/Faultbox/curveboard/internal/engine/curve"
	"github.com/Faultbox/curveboard/pkg/math"
)

// Shape names accepted by ByName.
const (
	NamePolyline = "polyline"
	NameBezier   = "bezier"
)

// ByName returns a new shape for a configuration name.
func ByName(name string) (curve.Shape, error) {
	switch strings.ToLower(name) {
	case NamePolyline:
		return &Polyline{}, nil
	case NameBezier, "":
		return &Bezier{}, nil
	default:
		return nil, fmt.Errorf("unknown curve shape %q", name)
	}
}

// Polyline passes through every control point, spending an equal share of
// the samples on each segment.
type Polyline struct{}

// Calculate implements curve.Shape.
func (Polyline) Calculate(control, samples []float32) {
	if fillTrivial(control, samples) {
		return
	}
	segments := len(control)/3 - 1
	last := len(samples)/3 - 1
	for i := 0; i <= last; i++ {
		t := float32(i) / float32(last) * float32(segments)
		seg := min(int(t), segments-1)
		a := math.Vec3From(control[seg*3:])
		b := math.Vec3From(control[seg*3+3:])
		put(samples, i, a.Lerp(b, t-float32(seg)))
	}
}

// Bezier is a single Bézier curve of degree len(control)-1, evaluated with
// de Casteljau's algorithm.
type Bezier struct {
	scratch []math.Vec3
}

// Calculate implements curve.Shape.
func (b *Bezier) Calculate(control, samples []float32) {
	if fillTrivial(control, samples) {
		return
	}
	n := len(control) / 3
	if cap(b.scratch) < n {
		b.scratch = make([]math.Vec3, n)
	}
	pts := b.scratch[:n]
	last := len(samples)/3 - 1
	for i := 0; i <= last; i++ {
		t := float32(i) / float32(last)
		for j := range pts {
			pts[j] = math.Vec3From(control[j*3:])
		}
		for k := n - 1; k > 0; k-- {
			for j := 0; j < k; j++ {
				pts[j] = pts[j].Lerp(pts[j+1], t)
			}
		}
		put(samples, i, pts[0])
	}
}

// fillTrivial handles zero and one control points, where there is nothing to
// interpolate. It reports whether it did.
func fillTrivial(control, samples []float32) bool {
	switch len(control) / 3 {
	case 0:
		clear(samples)
	case 1:
		p := math.Vec3From(control)
		for i := 0; i < len(samples)/3; i++ {
			put(samples, i, p)
		}
	default:
		return false
	}
	return true
}

func put(samples []float32, i int, p math.Vec3) {
	samples[i*3], samples[i*3+1], samples[i*3+2] = p.X, p.Y, p.Z
}
