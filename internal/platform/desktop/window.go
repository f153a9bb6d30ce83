// Package desktop is the GLFW backend: it runs the two-phase context
// bootstrap on real windows and turns GLFW callbacks into polled events.
package desktop

import (
	"fmt"
	"image"

	"spritegl/internal/assets"
	"spritegl/internal/input"
	"spritegl/internal/logging"
	"spritegl/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options describes the window to open.
type Options struct {
	Title         string
	Width, Height int
	X, Y          int
	Attribs       platform.ContextAttribs
	// IconPath is optional; a missing or undecodable icon is only logged.
	IconPath string
	VSync    bool
}

// Window is the single application window with its current context.
// All methods must be called from the thread that opened it.
type Window struct {
	win    *glfw.Window
	cursor *glfw.Cursor
	loader *platform.Loader
	events []platform.Event
}

// Open initializes GLFW, negotiates the graphics context and leaves it
// current on the calling thread.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	s, err := platform.Bootstrap(driver{}, platform.BootstrapOptions{
		Title:   opts.Title,
		Width:   opts.Width,
		Height:  opts.Height,
		X:       opts.X,
		Y:       opts.Y,
		Attribs: opts.Attribs,
	})
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &Window{
		win:    s.(*surface).win,
		loader: platform.NewLoader(glfw.GetProcAddress),
		events: make([]platform.Event, 0, 16),
	}
	w.setupCursor()
	if opts.IconPath != "" {
		w.setupIcon(opts.IconPath)
	}
	w.registerCallbacks()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return w, nil
}

func (w *Window) setupCursor() {
	w.cursor = glfw.CreateStandardCursor(glfw.ArrowCursor)
	w.win.SetCursor(w.cursor)
}

func (w *Window) setupIcon(path string) {
	icon, err := assets.DecodeRGBA8(path)
	if err != nil {
		logging.Logger().Warn("window icon not loaded", "path", path, "err", err)
		return
	}
	w.win.SetIcon([]image.Image{icon})
}

func (w *Window) registerCallbacks() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, platform.ResizeEvent{Width: width, Height: height})
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, platform.CloseEvent{})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.events = append(w.events, platform.KeyEvent{Key: input.Key(key), Pressed: action != glfw.Release})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.events = append(w.events, platform.MouseButtonEvent{Button: input.Button(button), Pressed: action == glfw.Press})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, platform.CursorEvent{X: x, Y: y})
	})
}

// PollEvents drains every pending OS message without blocking and returns
// the resulting events in arrival order. The slice is reused by the next call.
func (w *Window) PollEvents() []platform.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// ScreenSize returns the current drawable size in pixels.
func (w *Window) ScreenSize() input.ScreenSize {
	width, height := w.win.GetFramebufferSize()
	return input.ScreenSize{Width: width, Height: height}
}

// Loader resolves graphics entry points for the window's context.
func (w *Window) Loader() *platform.Loader {
	return w.loader
}

// Close destroys the window and its context and terminates GLFW.
func (w *Window) Close() {
	if w.cursor != nil {
		w.cursor.Destroy()
		w.cursor = nil
	}
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
