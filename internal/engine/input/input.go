// Package input tracks raw keyboard and mouse state between frames.
package input

// Key is a physical key. Values match SDL scancodes.
type Key int

// Keys used by the editor.
const (
	KeyS      Key = 22
	KeyW      Key = 26
	KeyEscape Key = 41
	KeyMinus  Key = 45
	KeyEquals Key = 46
	KeyRight  Key = 79
	KeyLeft   Key = 80
	KeyDown   Key = 81
	KeyUp     Key = 82
)

// Button is a mouse button. Values match SDL button indices.
type Button uint8

// Mouse buttons.
const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Click is a button release at a pixel position.
type Click struct {
	X, Y   int
	Button Button
}

// State holds which keys and buttons are held down, plus what happened
// during the current frame.
type State struct {
	keys    map[Key]bool
	buttons map[Button]bool

	mouseX, mouseY int

	// per frame
	pressed        []Key
	clicks         []Click
	deltaX, deltaY int
	wheel          float32
}

// NewState creates an empty input state.
func NewState() *State {
	return &State{
		keys:    make(map[Key]bool),
		buttons: make(map[Button]bool),
		pressed: make([]Key, 0, 8),
		clicks:  make([]Click, 0, 4),
	}
}

// BeginFrame forgets the previous frame's presses and clicks. Held keys and
// buttons stay held.
func (s *State) BeginFrame() {
	s.pressed = s.pressed[:0]
	s.clicks = s.clicks[:0]
	s.deltaX, s.deltaY = 0, 0
	s.wheel = 0
}

// KeyDown records a key press.
func (s *State) KeyDown(k Key) {
	if !s.keys[k] {
		s.pressed = append(s.pressed, k)
	}
	s.keys[k] = true
}

// KeyUp records a key release.
func (s *State) KeyUp(k Key) {
	s.keys[k] = false
}

// MouseMove records the pointer position.
func (s *State) MouseMove(x, y int) {
	s.deltaX += x - s.mouseX
	s.deltaY += y - s.mouseY
	s.mouseX, s.mouseY = x, y
}

// Wheel records vertical scroll. Positive is away from the user.
func (s *State) Wheel(dy float32) {
	s.wheel += dy
}

// ButtonDown records a button press at x, y.
func (s *State) ButtonDown(b Button, x, y int) {
	s.MouseMove(x, y)
	s.buttons[b] = true
}

// ButtonUp records a button release at x, y as a click.
func (s *State) ButtonUp(b Button, x, y int) {
	s.MouseMove(x, y)
	s.buttons[b] = false
	s.clicks = append(s.clicks, Click{X: x, Y: y, Button: b})
}

// IsKeyActive reports whether k is held down.
func (s *State) IsKeyActive(k Key) bool {
	return s.keys[k]
}

// IsButtonActive reports whether b is held down.
func (s *State) IsButtonActive(b Button) bool {
	return s.buttons[b]
}

// WasKeyPressed reports whether k went down this frame.
func (s *State) WasKeyPressed(k Key) bool {
	for _, p := range s.pressed {
		if p == k {
			return true
		}
	}
	return false
}

// Mouse returns the last known pointer position.
func (s *State) Mouse() (x, y int) {
	return s.mouseX, s.mouseY
}

// Clicks returns the button releases of this frame.
func (s *State) Clicks() []Click {
	return s.clicks
}

// MouseDelta returns how far the pointer moved this frame.
func (s *State) MouseDelta() (dx, dy int) {
	return s.deltaX, s.deltaY
}

// Scroll returns the accumulated wheel movement of this frame.
func (s *State) Scroll() float32 {
	return s.wheel
}
