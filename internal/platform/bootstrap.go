package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"spritegl/internal/logging"
)

var (
	ErrInvalidWindow = errors.New("invalid window request")
	ErrProbe         = errors.New("probe context failed")
	ErrEntryPoint    = errors.New("failed to load OpenGL functions")
	ErrContext       = errors.New("failed to create render context")
	ErrClientSize    = errors.New("client area does not match the requested size")
)

// SurfaceSpec is what a Driver needs to open one native window with a
// graphics context. Width and Height are client-area pixels.
type SurfaceSpec struct {
	Title         string
	Width, Height int

	// Probe requests a throwaway window with a basic legacy context and no
	// explicit pixel-format or profile attributes.
	Probe   bool
	Attribs ContextAttribs
}

// Surface is a native window bound to exactly one graphics context.
type Surface interface {
	MakeCurrent() error
	ReleaseCurrent()
	// Destroy tears down the context, the device handle and the window.
	Destroy()
	FrameInsets() Insets
	ClientSize() (width, height int)
	SetPosition(x, y int)
	Show()
}

// Driver opens native windows and answers context-specific entry point queries
// for whichever context is current on the calling thread.
type Driver interface {
	Open(spec SurfaceSpec) (Surface, error)
	ProcAddress(name string) unsafe.Pointer
}

// BootstrapOptions configures Bootstrap.
type BootstrapOptions struct {
	Title         string
	Width, Height int
	// X and Y place the outer top-left corner of the window, decoration included.
	X, Y    int
	Attribs ContextAttribs
	// EntryPoints must resolve through the probe context. Defaults to
	// BootstrapEntryPoints().
	EntryPoints []string
	// Loader resolves EntryPoints. Defaults to NewLoader over the driver.
	Loader *Loader
}

// Bootstrap negotiates the real graphics context in two phases. A throwaway
// probe window and legacy context is created and made current so the
// extended creation entry points can be resolved; the probe is then torn down
// completely, and the real window is created with explicit pixel-format and
// profile attributes, made current and shown. At no point are two contexts
// alive. Every failure is fatal and leaves no window behind.
func Bootstrap(d Driver, opts BootstrapOptions) (Surface, error) {
	if opts.Title == "" {
		return nil, fmt.Errorf("%w: empty title", ErrInvalidWindow)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidWindow, opts.Width, opts.Height)
	}
	entryPoints := opts.EntryPoints
	if entryPoints == nil {
		entryPoints = BootstrapEntryPoints()
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader(d.ProcAddress)
	}

	log := logging.Logger()

	// Phase one: probe.
	probe, err := d.Open(SurfaceSpec{Title: opts.Title, Width: opts.Width, Height: opts.Height, Probe: true})
	if err != nil {
		return nil, fmt.Errorf("%w: create window: %w", ErrProbe, err)
	}
	if err := probe.MakeCurrent(); err != nil {
		probe.Destroy()
		return nil, fmt.Errorf("%w: make current: %w", ErrProbe, err)
	}
	missing := loader.Missing(entryPoints...)

	// Device and context handles from the probe must never be reused.
	probe.ReleaseCurrent()
	probe.Destroy()

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrEntryPoint, missing)
	}
	log.Debug("probe context torn down", "entryPoints", entryPoints)

	// Phase two: the real context.
	s, err := d.Open(SurfaceSpec{Title: opts.Title, Width: opts.Width, Height: opts.Height, Attribs: opts.Attribs})
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrContext, opts.Attribs, err)
	}
	if err := s.MakeCurrent(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("%w: make current: %w", ErrContext, err)
	}

	in := s.FrameInsets()
	outerW, outerH := OuterSize(opts.Width, opts.Height, in)
	s.SetPosition(opts.X+in.Left, opts.Y+in.Top)

	if w, h := s.ClientSize(); w != opts.Width || h != opts.Height {
		s.ReleaseCurrent()
		s.Destroy()
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrClientSize, w, h, opts.Width, opts.Height)
	}

	s.Show()
	log.Info("window created",
		"title", opts.Title,
		"client", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"outer", fmt.Sprintf("%dx%d", outerW, outerH),
		"context", opts.Attribs.String())
	return s, nil
}
