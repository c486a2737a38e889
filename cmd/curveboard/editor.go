package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/curveboard/internal/config"
	"github.com/Faultbox/curveboard/internal/engine/batch"
	"github.com/Faultbox/curveboard/internal/engine/board"
	"github.com/Faultbox/curveboard/internal/engine/camera"
	"github.com/Faultbox/curveboard/internal/engine/curve"
	"github.com/Faultbox/curveboard/internal/engine/curve/shapes"
	"github.com/Faultbox/curveboard/internal/engine/input"
	"github.com/Faultbox/curveboard/internal/engine/picking"
	"github.com/Faultbox/curveboard/internal/engine/window"
	"github.com/Faultbox/curveboard/internal/logger"
	"github.com/Faultbox/curveboard/pkg/math"
)

// editor owns the window, the camera and the edited curve.
type editor struct {
	cfg *config.Config
	log *zap.Logger

	window *window.Window
	board  *board.Board
	camera *camera.Camera

	curve           *curve.Curve
	curveRenderer   *batch.Renderer
	controlRenderer *batch.Renderer

	// Control point being dragged, or curve.NotFound.
	dragging int
	leftHeld bool
}

func newEditor(cfg *config.Config) (*editor, error) {
	e := &editor{
		cfg:      cfg,
		log:      logger.Named("editor"),
		dragging: curve.NotFound,
	}

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	e.window = win

	e.camera = camera.New(cfg.Camera.FieldOfView, cfg.Camera.Near, cfg.Camera.Far)
	e.camera.SetPosition(math.Vec3From(cfg.Camera.Position[:]))
	e.camera.SetAt(math.Vec3From(cfg.Camera.At[:]))

	e.board = board.New(win)
	e.board.SetCamera(e.camera)

	shape, err := shapes.ByName(cfg.Curve.Shape)
	if err != nil {
		e.Close()
		return nil, err
	}

	e.curveRenderer, err = batch.New(batch.LineStrip, batch.BasicMaterial{
		Color: cfg.Curve.Color,
	})
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("creating curve renderer: %w", err)
	}

	e.controlRenderer, err = batch.New(batch.Points, batch.BasicMaterial{
		Color:     cfg.Curve.ControlColor,
		PointSize: cfg.Curve.ControlSize,
	})
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("creating control renderer: %w", err)
	}

	e.curve, err = curve.New(shape, e.camera, e.curveRenderer, e.controlRenderer,
		curve.WithIterations(cfg.Curve.Iterations),
		curve.WithCapacity(cfg.Curve.Capacity),
	)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("creating curve: %w", err)
	}

	e.log.Info("editor ready",
		zap.String("shape", cfg.Curve.Shape),
		zap.Int("iterations", cfg.Curve.Iterations),
		zap.Int("capacity", cfg.Curve.Capacity),
	)
	return e, nil
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (e *editor) Run() error {
	last := time.Now()
	for {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if e.board.Update() || e.board.IsKeyActive(input.KeyEscape) {
			return nil
		}

		e.moveCamera(dt)
		e.changeIterations()
		e.edit()

		e.curve.Render()
		e.window.SwapBuffers()
	}
}

// Close releases GL resources and the window.
func (e *editor) Close() {
	if e.curveRenderer != nil {
		e.curveRenderer.Close()
	}
	if e.controlRenderer != nil {
		e.controlRenderer.Close()
	}
	if e.window != nil {
		e.window.Close()
	}
}

func (e *editor) moveCamera(dt float32) {
	step := e.cfg.Camera.PanSpeed * dt
	in := e.board.Input()

	var pan math.Vec3
	if in.IsKeyActive(input.KeyLeft) {
		pan.X += step
	}
	if in.IsKeyActive(input.KeyRight) {
		pan.X -= step
	}
	if in.IsKeyActive(input.KeyUp) {
		pan.Y += step
	}
	if in.IsKeyActive(input.KeyDown) {
		pan.Y -= step
	}
	if pan != (math.Vec3{}) {
		e.camera.Translate(pan.X, pan.Y, pan.Z)
		e.camera.SetAt(e.camera.At().Add(pan))
	}

	if in.IsKeyActive(input.KeyW) {
		e.camera.Translate(0, 0, step)
	}
	if in.IsKeyActive(input.KeyS) {
		e.camera.Translate(0, 0, -step)
	}

	if in.IsButtonActive(input.ButtonRight) {
		if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
			camera.NewOrbit(e.camera).HandleDrag(float32(dx), float32(dy))
		}
	}
	if scroll := in.Scroll(); scroll != 0 {
		camera.NewOrbit(e.camera).HandleZoom(scroll)
	}
}

func (e *editor) changeIterations() {
	in := e.board.Input()

	n := e.curve.Iterations()
	switch {
	case in.WasKeyPressed(input.KeyEquals):
		n++
	case in.WasKeyPressed(input.KeyMinus):
		n--
	default:
		return
	}

	if err := e.curve.SetIterations(n); err != nil {
		e.log.Debug("iterations unchanged", zap.Error(err))
		return
	}
	e.window.SetTitle(fmt.Sprintf("%s (%d)", e.cfg.Window.Title, n))
}

// edit handles the left button: pressing on a control point starts a drag,
// releasing elsewhere appends a point.
func (e *editor) edit() {
	in := e.board.Input()
	held := in.IsButtonActive(input.ButtonLeft)
	pressed := held && !e.leftHeld
	e.leftHeld = held

	if pressed {
		if p, ok := e.pointer(); ok {
			e.dragging = e.curve.IntersectsControlPoint(p, e.cfg.Curve.PickEpsilon)
		}
	}

	if held && e.dragging != curve.NotFound {
		if p, ok := e.pointer(); ok {
			if err := e.curve.UpdateControlPoint(e.dragging, p); err != nil {
				e.log.Warn("drag failed", zap.Int("index", e.dragging), zap.Error(err))
			}
		}
	}

	for _, click := range in.Clicks() {
		if click.Button != input.ButtonLeft {
			continue
		}
		if e.dragging == curve.NotFound {
			e.appendAt(click.X, click.Y)
		}
		e.dragging = curve.NotFound
	}
}

func (e *editor) appendAt(x, y int) {
	p, ok := e.project(x, y)
	if !ok {
		return
	}
	if err := e.curve.AppendControlPoint(p); err != nil {
		e.log.Warn("cannot add control point", zap.Error(err))
		return
	}
	e.log.Debug("control point added",
		zap.Int("index", e.curve.Len()-1),
		zap.Float32("x", p.X),
		zap.Float32("y", p.Y),
	)
}

// pointer projects the current mouse position onto the drawing plane.
func (e *editor) pointer() (math.Vec3, bool) {
	x, y := e.board.Input().Mouse()
	return e.project(x, y)
}

// project maps a window position onto the z = 0 plane.
func (e *editor) project(x, y int) (math.Vec3, bool) {
	w, h := e.window.PointSize()
	if w == 0 || h == 0 {
		return math.Vec3{}, false
	}
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h),
		e.camera.InverseProjectionViewMatrix())
	return ray.IntersectPlaneZ(0)
}
