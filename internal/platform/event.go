package platform

import "spritegl/internal/input"

// Event is a window notification drained by PollEvents.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new drawable size in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

// KeyEvent reports a key transition. Repeats arrive as Pressed.
type KeyEvent struct {
	Key     input.Key
	Pressed bool
}

// MouseButtonEvent reports a mouse button transition.
type MouseButtonEvent struct {
	Button  input.Button
	Pressed bool
}

// CursorEvent reports the cursor position in window coordinates.
type CursorEvent struct {
	X, Y float64
}

func (ResizeEvent) isEvent()      {}
func (CloseEvent) isEvent()       {}
func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (CursorEvent) isEvent()      {}
