package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/input"
	"spritegl/internal/logging"
	"spritegl/internal/platform"
	"spritegl/internal/profiling"
	"spritegl/internal/sprite"
)

// slowFrame is the processing time above which a frame is reported.
const slowFrame = 16 * time.Millisecond

// Logic fills the batch each frame.
type Logic interface {
	Update(dt float64, in *input.State, batch *sprite.Batch)
}

// LogicFunc adapts a function to Logic.
type LogicFunc func(dt float64, in *input.State, batch *sprite.Batch)

func (f LogicFunc) Update(dt float64, in *input.State, batch *sprite.Batch) { f(dt, in, batch) }

// Surface is the window the loop pumps and presents.
type Surface interface {
	PollEvents() []platform.Event
	SwapBuffers()
}

// FrameRenderer draws the current batch.
type FrameRenderer interface {
	Render(screen input.ScreenSize) error
}

// App owns the frame loop. It is the only writer of the input state and must
// be driven from the thread that owns the context. Stop may be called from
// any goroutine.
type App struct {
	surface  Surface
	renderer FrameRenderer
	logic    Logic
	input    *input.State
	batch    *sprite.Batch
	debug    *gldebug.Sink

	running    atomic.Bool
	fpsLimiter *FPSLimiter
	lastTime   time.Time
	now        func() time.Time
}

// NewApp wires the loop together. debug may be nil.
func NewApp(surface Surface, renderer FrameRenderer, logic Logic, in *input.State, batch *sprite.Batch, debug *gldebug.Sink) *App {
	a := &App{
		surface:    surface,
		renderer:   renderer,
		logic:      logic,
		input:      in,
		batch:      batch,
		debug:      debug,
		fpsLimiter: NewFPSLimiter(),
		now:        time.Now,
	}
	a.running.Store(true)
	return a
}

// Running reports whether the loop will run another frame.
func (a *App) Running() bool { return a.running.Load() }

// Stop ends the loop after the current frame.
func (a *App) Stop() { a.running.Store(false) }

// Input returns the state the loop writes.
func (a *App) Input() *input.State { return a.input }

// Run drives frames until the window closes or Stop is called. It returns the
// first render error or driver violation.
func (a *App) Run() error {
	a.lastTime = a.now()
	for a.running.Load() {
		if err := a.tick(); err != nil {
			a.running.Store(false)
			return err
		}
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	start := a.now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	a.pump()
	if !a.running.Load() {
		return nil
	}

	func() {
		defer profiling.Track("logic.update")()
		a.logic.Update(dt, a.input, a.batch)
	}()

	if err := a.renderer.Render(a.input.ScreenSize()); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	func() {
		defer profiling.Track("surface.swap")()
		a.surface.SwapBuffers()
	}()

	if a.debug != nil {
		if err := a.debug.Err(); err != nil {
			return err
		}
	}

	if d := a.now().Sub(start); d > slowFrame {
		logging.Logger().Warn("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait()
	return nil
}

// pump drains window events into the input state.
func (a *App) pump() {
	defer profiling.Track("surface.events")()
	for _, ev := range a.surface.PollEvents() {
		switch e := ev.(type) {
		case platform.ResizeEvent:
			a.input.SetScreenSize(input.ScreenSize{Width: e.Width, Height: e.Height})
		case platform.CloseEvent:
			a.running.Store(false)
		case platform.KeyEvent:
			a.input.SetKey(e.Key, e.Pressed)
		case platform.MouseButtonEvent:
			a.input.SetButton(e.Button, e.Pressed)
		case platform.CursorEvent:
			a.input.SetCursor(e.X, e.Y)
		}
	}
}
