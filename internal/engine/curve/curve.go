// Package curve implements the parametric curve model: a fixed-capacity set
// of control points, the polyline sampled from them by a Shape, and the
// tangents and normals derived from that polyline. Every edit recomputes the
// samples immediately and pushes both point sets to their renderers.
package curve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/curveboard/internal/logger"
	"github.com/Faultbox/curveboard/pkg/math"
)

// Defaults for New.
const (
	DefaultIterations = 20
	DefaultCapacity   = 20 // control points
	DefaultEpsilon    = 0.01
)

// NotFound is returned by IntersectsControlPoint when nothing is hit.
const NotFound = -1

var (
	ErrNoShape    = errors.New("curve: no shape")
	ErrNoRenderer = errors.New("curve: missing renderer")
	ErrIterations = errors.New("curve: iterations must be at least 1")
	ErrCapacity   = errors.New("curve: control point capacity exceeded")
	ErrOffset     = errors.New("curve: offset is not a whole number of points")
	ErrIndex      = errors.New("curve: control point index out of range")
)

// Shape generates the curve samples for a set of control points.
type Shape interface {
	// Calculate fills every scalar of samples (3 per sample) from the
	// populated control scalars.
	Calculate(control, samples []float32)
}

// ShapeFunc adapts a function to Shape.
type ShapeFunc func(control, samples []float32)

// Calculate calls f(control, samples).
func (f ShapeFunc) Calculate(control, samples []float32) {
	f(control, samples)
}

// Option configures a Curve in New.
type Option func(*options)

type options struct {
	iterations int
	capacity   int
	control    []math.Vec3
}

// WithIterations sets the tessellation density; n iterations give n+1
// samples.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithCapacity sets how many control points the curve can hold.
func WithCapacity(points int) Option {
	return func(o *options) { o.capacity = points }
}

// WithControlPoints sets the initial control points.
func WithControlPoints(points ...math.Vec3) Option {
	return func(o *options) { o.control = points }
}

// Curve is a tessellated curve and its two render sinks.
// A Curve is not safe for concurrent use.
type Curve struct {
	shape  Shape
	viewer Viewer

	curveRenderer   Renderer
	controlRenderer Renderer

	iterations int
	control    *Buffer
	samples    []float32 // iterations+1 points
	tangents   []float32 // one angle per sample
	normals    []float32 // one vector per sample

	log *zap.Logger
}

// New creates a curve drawn through curveRenderer, with its control points
// drawn through controlRenderer, both against viewer.
func New(shape Shape, viewer Viewer, curveRenderer, controlRenderer Renderer, opts ...Option) (*Curve, error) {
	if shape == nil {
		return nil, ErrNoShape
	}
	if curveRenderer == nil || controlRenderer == nil {
		return nil, ErrNoRenderer
	}

	o := options{
		iterations: DefaultIterations,
		capacity:   DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, o.iterations)
	}
	if len(o.control) > o.capacity {
		return nil, fmt.Errorf("%w: %d initial points, capacity %d", ErrCapacity, len(o.control), o.capacity)
	}

	c := &Curve{
		shape:           shape,
		viewer:          viewer,
		curveRenderer:   curveRenderer,
		controlRenderer: controlRenderer,
		control:         NewBuffer(o.capacity),
		log:             logger.Named("curve"),
	}
	for _, p := range o.control {
		c.control.Append(p)
	}
	c.allocate(o.iterations)
	c.recalculate()
	c.resetControlRenderer()

	c.log.Debug("curve created",
		zap.Int("iterations", c.iterations),
		zap.Int("capacity", o.capacity),
		zap.Int("control_points", c.control.Len()),
	)
	return c, nil
}

// Iterations returns the tessellation density.
func (c *Curve) Iterations() int { return c.iterations }

// Len returns the number of control points.
func (c *Curve) Len() int { return c.control.Len() }

// Cap returns the control point capacity.
func (c *Curve) Cap() int { return c.control.Cap() }

// ControlPoints returns the populated control scalars. Do not modify.
func (c *Curve) ControlPoints() []float32 { return c.control.Scalars() }

// ControlPoint returns control point i.
func (c *Curve) ControlPoint(i int) (math.Vec3, bool) { return c.control.Point(i) }

// Samples returns the curve samples, 3 scalars each. Do not modify.
func (c *Curve) Samples() []float32 { return c.samples }

// Tangents returns one tangent angle (radians, XY plane) per sample.
func (c *Curve) Tangents() []float32 { return c.tangents }

// Normals returns one in-plane normal per sample, 3 scalars each.
func (c *Curve) Normals() []float32 { return c.normals }

// SetControlPoints replaces the control points with points[:offset], where
// offset counts scalars. Both renderers are reset.
func (c *Curve) SetControlPoints(points []float32, offset int) error {
	if offset < 0 || offset > len(points) || offset%3 != 0 {
		return fmt.Errorf("%w: offset %d for %d scalars", ErrOffset, offset, len(points))
	}
	if offset/3 > c.control.Cap() {
		return fmt.Errorf("%w: %d points, capacity %d", ErrCapacity, offset/3, c.control.Cap())
	}

	c.control.Replace(points[:offset])
	c.resetControlRenderer()
	c.recalculate()

	c.log.Debug("control points set", zap.Int("count", c.control.Len()))
	return nil
}

// AppendControlPoint adds a control point after the last one.
func (c *Curve) AppendControlPoint(p math.Vec3) error {
	if !c.control.Append(p) {
		return fmt.Errorf("%w: capacity %d", ErrCapacity, c.control.Cap())
	}
	v := p.Array()
	c.controlRenderer.Submit(coords(v[:]))
	c.recalculate()
	return nil
}

// UpdateControlPoint moves control point index to p.
func (c *Curve) UpdateControlPoint(index int, p math.Vec3) error {
	if !c.control.SetPoint(index, p) {
		return fmt.Errorf("%w: %d of %d", ErrIndex, index, c.control.Len())
	}
	v := p.Array()
	c.controlRenderer.Update(index, coords(v[:]))
	c.recalculate()
	return nil
}

// SetIterations changes the tessellation density and recomputes the curve.
func (c *Curve) SetIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrIterations, n)
	}
	c.allocate(n)
	c.recalculate()

	c.log.Debug("iterations changed", zap.Int("iterations", n))
	return nil
}

// IntersectsControlPoint returns the index of the first control point whose
// squared distance to p is below epsilon, or NotFound.
func (c *Curve) IntersectsControlPoint(p math.Vec3, epsilon float32) int {
	pts := c.control.Scalars()
	for i := 0; i < len(pts); i += 3 {
		if p.DistanceSquared(math.Vec3From(pts[i:])) < epsilon {
			return i / 3
		}
	}
	return NotFound
}

// Render draws the curve, then its control points.
func (c *Curve) Render() {
	c.curveRenderer.Flush(c.viewer)
	c.controlRenderer.Flush(c.viewer)
}

func (c *Curve) allocate(iterations int) {
	n := iterations + 1
	c.iterations = iterations
	c.samples = make([]float32, n*3)
	c.tangents = make([]float32, n)
	c.normals = make([]float32, n*3)
}

// recalculate regenerates the samples and everything derived from them, and
// resets the curve renderer.
func (c *Curve) recalculate() {
	c.shape.Calculate(c.control.Scalars(), c.samples)
	Tangents(c.samples, c.tangents)
	Normals(c.samples, c.normals)
	c.curveRenderer.Reset(coords(c.samples))
}

func (c *Curve) resetControlRenderer() {
	c.controlRenderer.Reset(coords(c.control.Scalars()))
}
