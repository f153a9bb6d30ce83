package desktop

import (
	"errors"
	"fmt"
	"unsafe"

	"spritegl/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// driver implements platform.Driver on GLFW. Windows are created hidden;
// Bootstrap shows the real one once its context is current.
type driver struct{}

func (driver) Open(spec platform.SurfaceSpec) (platform.Surface, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)

	if !spec.Probe {
		applyAttribs(spec.Attribs)
	}

	win, err := glfw.CreateWindow(spec.Width, spec.Height, spec.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &surface{win: win}, nil
}

func (driver) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func applyAttribs(a platform.ContextAttribs) {
	glfw.WindowHint(glfw.ContextVersionMajor, a.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, a.Minor)
	if a.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(a.Debug))

	glfw.WindowHint(glfw.RedBits, a.RedBits)
	glfw.WindowHint(glfw.GreenBits, a.GreenBits)
	glfw.WindowHint(glfw.BlueBits, a.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, a.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, a.DepthBits)
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(a.DoubleBuffer))
	glfw.WindowHint(glfw.SRGBCapable, boolHint(a.SRGBCapable))
	glfw.WindowHint(glfw.Samples, a.Samples)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// surface is one GLFW window and its context.
type surface struct {
	win *glfw.Window
}

func (s *surface) MakeCurrent() (err error) {
	// go-gl/glfw panics on unexpected GLFW errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("make context current: %v", r)
		}
	}()
	s.win.MakeContextCurrent()
	if glfw.GetCurrentContext() != s.win {
		return errors.New("context is not current after MakeContextCurrent")
	}
	return nil
}

func (s *surface) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

func (s *surface) Destroy() {
	s.win.Destroy()
}

func (s *surface) FrameInsets() platform.Insets {
	left, top, right, bottom := s.win.GetFrameSize()
	return platform.Insets{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (s *surface) ClientSize() (int, int) {
	return s.win.GetSize()
}

func (s *surface) SetPosition(x, y int) {
	s.win.SetPos(x, y)
}

func (s *surface) Show() {
	s.win.Show()
}
