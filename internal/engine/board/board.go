// Package board is the paint surface the curves are drawn on. Each frame it
// collects input, keeps the camera's aspect ratio and the GL viewport in step
// with the surface size, and clears the frame.
package board

import (
	"go.uber.org/zap"

	"github.com/Faultbox/curveboard/internal/engine/camera"
	"github.com/Faultbox/curveboard/internal/engine/input"
	"github.com/Faultbox/curveboard/internal/logger"
)

// Surface is the window the board draws to. *window.Window satisfies it.
type Surface interface {
	// Poll feeds pending events into state and reports a quit request.
	Poll(state *input.State) bool
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	Viewport(width, height int)
	Clear()
}

// Board ties a Surface to a camera and the input state.
type Board struct {
	surface Surface
	camera  *camera.Camera
	input   *input.State

	width, height int

	log *zap.Logger
}

// New creates a board on surface.
func New(surface Surface) *Board {
	return &Board{
		surface: surface,
		input:   input.NewState(),
		log:     logger.Named("board"),
	}
}

// SetCamera sets the camera whose aspect ratio follows the surface. The next
// Update pushes the current size to it.
func (b *Board) SetCamera(c *camera.Camera) {
	b.camera = c
	b.width, b.height = 0, 0
}

// Camera returns the camera set with SetCamera.
func (b *Board) Camera() *camera.Camera {
	return b.camera
}

// Input returns the raw input state.
func (b *Board) Input() *input.State {
	return b.input
}

// Size returns the surface size seen by the last Update.
func (b *Board) Size() (width, height int) {
	return b.width, b.height
}

// Update starts a frame: it polls input, handles a resize and clears the
// surface. It returns true when the user asked to quit.
func (b *Board) Update() bool {
	b.input.BeginFrame()
	quit := b.surface.Poll(b.input)
	b.resize()
	b.surface.Clear()
	return quit
}

// IsKeyActive reports whether k is held down.
func (b *Board) IsKeyActive(k input.Key) bool {
	return b.input.IsKeyActive(k)
}

// IsButtonActive reports whether button is held down.
func (b *Board) IsButtonActive(button input.Button) bool {
	return b.input.IsButtonActive(button)
}

func (b *Board) resize() {
	width, height := b.surface.Size()
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height

	if b.camera != nil {
		b.camera.SetViewport(width, height)
	}
	b.surface.Viewport(width, height)

	b.log.Debug("surface resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}
