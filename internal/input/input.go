package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a physical keyboard key. Values match GLFW key codes so the desktop
// backend can convert without a lookup table.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyD       Key = 68
	KeyS       Key = 83
	KeyW       Key = 87
	KeyEscape  Key = 256
	KeyEnter   Key = 257
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
	KeyF1      Key = 290

	// KeyLast is the highest key code tracked.
	KeyLast Key = 348
)

// Button is a mouse button. Values match GLFW mouse button codes.
type Button int

const (
	ButtonLeft   Button = 0
	ButtonRight  Button = 1
	ButtonMiddle Button = 2

	ButtonLast Button = 7
)

// ScreenSize is the drawable size of the window in pixels.
type ScreenSize struct {
	Width  int
	Height int
}

// Vec2 returns the size as floats, the form the shader consumes.
func (s ScreenSize) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(s.Width), float32(s.Height)}
}

type keyState struct {
	down         bool
	justPressed  bool
	justReleased bool
}

// State is the per-frame input and window state shared between the frame
// driver, game logic and the renderer. It is owned by the render thread and
// is not safe for concurrent use.
type State struct {
	screen  ScreenSize
	cursor  mgl32.Vec2
	keys    [KeyLast + 1]keyState
	buttons [ButtonLast + 1]keyState
}

// NewState creates input state for a window of the given size
func NewState(screen ScreenSize) *State {
	return &State{screen: screen}
}

// ScreenSize returns the current drawable size.
func (s *State) ScreenSize() ScreenSize { return s.screen }

// SetScreenSize records a resize.
func (s *State) SetScreenSize(size ScreenSize) { s.screen = size }

// Cursor returns the last cursor position in window coordinates.
func (s *State) Cursor() mgl32.Vec2 { return s.cursor }

// SetCursor records a cursor move.
func (s *State) SetCursor(x, y float64) {
	s.cursor = mgl32.Vec2{float32(x), float32(y)}
}

// SetKey records a key transition. Unknown keys are ignored.
func (s *State) SetKey(key Key, pressed bool) {
	if key < 0 || key > KeyLast {
		return
	}
	update(&s.keys[key], pressed)
}

// SetButton records a mouse button transition.
func (s *State) SetButton(button Button, pressed bool) {
	if button < 0 || button > ButtonLast {
		return
	}
	update(&s.buttons[button], pressed)
}

func update(k *keyState, pressed bool) {
	// Detect edges immediately when event arrives
	if pressed && !k.down {
		k.justPressed = true
	}
	if !pressed && k.down {
		k.justReleased = true
	}
	k.down = pressed
}

// IsDown returns true while key is held.
func (s *State) IsDown(key Key) bool {
	if key < 0 || key > KeyLast {
		return false
	}
	return s.keys[key].down
}

// JustPressed returns true only in the frame key went down.
func (s *State) JustPressed(key Key) bool {
	if key < 0 || key > KeyLast {
		return false
	}
	return s.keys[key].justPressed
}

// JustReleased returns true only in the frame key went up.
func (s *State) JustReleased(key Key) bool {
	if key < 0 || key > KeyLast {
		return false
	}
	return s.keys[key].justReleased
}

// ButtonDown returns true while button is held.
func (s *State) ButtonDown(button Button) bool {
	if button < 0 || button > ButtonLast {
		return false
	}
	return s.buttons[button].down
}

// ButtonJustPressed returns true only in the frame button went down.
func (s *State) ButtonJustPressed(button Button) bool {
	if button < 0 || button > ButtonLast {
		return false
	}
	return s.buttons[button].justPressed
}

// PostUpdate must be called at the end of each frame to clear edge flags.
func (s *State) PostUpdate() {
	for i := range s.keys {
		s.keys[i].justPressed = false
		s.keys[i].justReleased = false
	}
	for i := range s.buttons {
		s.buttons[i].justPressed = false
		s.buttons[i].justReleased = false
	}
}
