package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds the startup configuration
type Settings struct {
	Title         string
	Width, Height int // client area in pixels
	X, Y          int // outer window position

	GLMajor, GLMinor int
	// Debug requests a debug context and turns driver warnings into panics.
	Debug bool
	VSync bool

	// ScratchSize bounds the memory used to read shader sources at startup.
	ScratchSize int

	VertexShader   string
	FragmentShader string
	Atlas          string
	Icon           string
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Title:          "spritegl",
		Width:          1200,
		Height:         720,
		X:              100,
		Y:              100,
		GLMajor:        4,
		GLMinor:        3,
		Debug:          true,
		VSync:          true,
		ScratchSize:    1 << 20,
		VertexShader:   "assets/shaders/quad.vert",
		FragmentShader: "assets/shaders/quad.frag",
		Atlas:          "assets/textures/TEXTURE_ATLAS.png",
	}
}

// Load returns Default overridden by SPRITEGL_* environment variables, and
// applies SPRITEGL_FPS to the live FPS limit.
func Load() (Settings, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("SPRITEGL_TITLE", &s.Title)
	num("SPRITEGL_WIDTH", &s.Width)
	num("SPRITEGL_HEIGHT", &s.Height)
	flag("SPRITEGL_DEBUG", &s.Debug)
	flag("SPRITEGL_VSYNC", &s.VSync)
	str("SPRITEGL_ATLAS", &s.Atlas)
	str("SPRITEGL_ICON", &s.Icon)

	fps := GetFPSLimit()
	num("SPRITEGL_FPS", &fps)

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	SetFPSLimit(fps)
	return s, nil
}

// Validate checks the settings a window and renderer can be built from.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.GLMajor < 4 || (s.GLMajor == 4 && s.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is too old, storage buffers need 4.3", s.GLMajor, s.GLMinor))
	}
	if s.ScratchSize <= 0 {
		errs = append(errs, fmt.Errorf("scratch size must be positive, got %d", s.ScratchSize))
	}
	if s.VertexShader == "" || s.FragmentShader == "" || s.Atlas == "" {
		errs = append(errs, errors.New("shader and atlas paths must be set"))
	}
	return errors.Join(errs...)
}
