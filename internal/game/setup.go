package game

import (
	"fmt"

	"spritegl/internal/assets"
	"spritegl/internal/config"
	"spritegl/internal/graphics"
	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/graphics/renderer"
	"spritegl/internal/input"
	"spritegl/internal/logging"
	"spritegl/internal/platform"
	"spritegl/internal/platform/desktop"
	"spritegl/internal/sprite"
)

// Stack is the production window, context and renderer.
type Stack struct {
	Window   *desktop.Window
	Renderer *renderer.Renderer
	Debug    *gldebug.Sink
	Batch    *sprite.Batch
	Input    *input.State
}

// Setup opens the window, loads the OpenGL bindings and initializes the
// renderer. Must be called on the main thread; the context stays current on it.
func Setup(cfg config.Settings) (*Stack, error) {
	attribs := platform.DefaultContextAttribs()
	attribs.Major, attribs.Minor = cfg.GLMajor, cfg.GLMinor
	attribs.Debug = cfg.Debug

	window, err := desktop.Open(desktop.Options{
		Title:    cfg.Title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		X:        cfg.X,
		Y:        cfg.Y,
		Attribs:  attribs,
		IconPath: cfg.Icon,
		VSync:    cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("open window: %w", err)
	}

	if err := graphics.InitBindings(window.Loader()); err != nil {
		window.Close()
		return nil, err
	}

	s := &Stack{
		Window: window,
		Debug:  gldebug.NewSink(logging.Logger(), cfg.Debug),
		Batch:  sprite.NewBatch(),
		Input:  input.NewState(window.ScreenSize()),
	}
	s.Renderer = renderer.NewRenderer(graphics.NewGLDevice(), s.Batch, renderer.Assets{
		VertexShader:   cfg.VertexShader,
		FragmentShader: cfg.FragmentShader,
		Atlas:          cfg.Atlas,
	}, s.Debug)

	if err := s.Renderer.Init(assets.NewArena(cfg.ScratchSize)); err != nil {
		s.Renderer.Dispose()
		window.Close()
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	return s, nil
}

// NewApp builds the frame loop over the stack.
func (s *Stack) NewApp(logic Logic) *App {
	return NewApp(s.Window, s.Renderer, logic, s.Input, s.Batch, s.Debug)
}

// Close releases GPU resources and then the window.
func (s *Stack) Close() {
	s.Renderer.Dispose()
	s.Window.Close()
}
