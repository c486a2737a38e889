package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/curveboard/internal/engine/camera"
	"github.com/Faultbox/curveboard/internal/engine/input"
)

type fakeSurface struct {
	width, height int
	events        []func(*input.State)
	quit          bool

	viewports [][2]int
	clears    int
}

func (s *fakeSurface) Poll(state *input.State) bool {
	for _, e := range s.events {
		e(state)
	}
	s.events = nil
	return s.quit
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Viewport(w, h int) { s.viewports = append(s.viewports, [2]int{w, h}) }

func (s *fakeSurface) Clear() { s.clears++ }

func TestResizeUpdatesCamera(t *testing.T) {
	surface := &fakeSurface{width: 800, height: 400}
	b := New(surface)
	cam := camera.NewDefault()
	b.SetCamera(cam)

	assert.False(t, b.Update())
	assert.Equal(t, float32(2), cam.AspectRatio())
	assert.Equal(t, [][2]int{{800, 400}}, surface.viewports)
	assert.Equal(t, 1, surface.clears)

	// Same size: nothing to do.
	b.Update()
	assert.Len(t, surface.viewports, 1)

	surface.width, surface.height = 300, 600
	b.Update()
	assert.Equal(t, float32(0.5), cam.AspectRatio())
	assert.Equal(t, [][2]int{{800, 400}, {300, 600}}, surface.viewports)

	w, h := cam.Viewport()
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)
}

func TestSetCameraLate(t *testing.T) {
	surface := &fakeSurface{width: 640, height: 480}
	b := New(surface)

	// No camera yet: the viewport still follows the surface.
	b.Update()
	assert.Len(t, surface.viewports, 1)

	cam := camera.NewDefault()
	b.SetCamera(cam)
	b.Update()
	assert.InDelta(t, 640.0/480.0, cam.AspectRatio(), 1e-6)
	assert.Same(t, cam, b.Camera())
}

func TestInputFlags(t *testing.T) {
	surface := &fakeSurface{width: 1, height: 1}
	b := New(surface)

	surface.events = []func(*input.State){
		func(s *input.State) { s.KeyDown(input.KeyUp) },
		func(s *input.State) { s.ButtonDown(input.ButtonLeft, 5, 5) },
	}
	b.Update()
	assert.True(t, b.IsKeyActive(input.KeyUp))
	assert.True(t, b.IsButtonActive(input.ButtonLeft))

	surface.events = []func(*input.State){
		func(s *input.State) { s.ButtonUp(input.ButtonLeft, 6, 6) },
	}
	b.Update()
	assert.False(t, b.IsButtonActive(input.ButtonLeft))
	assert.Len(t, b.Input().Clicks(), 1)

	// Clicks last one frame.
	b.Update()
	assert.Empty(t, b.Input().Clicks())
}

func TestQuit(t *testing.T) {
	surface := &fakeSurface{width: 1, height: 1, quit: true}
	assert.True(t, New(surface).Update())
}
