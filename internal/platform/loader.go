package platform

import (
	"fmt"
	"strings"
	"unsafe"

	"spritegl/internal/logging"
)

// ProcFunc resolves one graphics entry point, returning nil when unknown.
type ProcFunc func(name string) unsafe.Pointer

// Loader resolves graphics entry points in two tiers: the context-specific
// query first (extension and modern functions), then the base graphics
// library itself (core and legacy functions).
type Loader struct {
	Context ProcFunc
	Module  ProcFunc
}

// NewLoader builds a loader whose module tier is the platform's base OpenGL library.
func NewLoader(context ProcFunc) *Loader {
	return &Loader{Context: context, Module: moduleProcAddress}
}

// Load returns the address of name, or nil if neither tier knows it.
func (l *Loader) Load(name string) unsafe.Pointer {
	if l.Context != nil {
		if p := l.Context(name); valid(p) {
			return p
		}
	}
	if l.Module != nil {
		if p := l.Module(name); valid(p) {
			return p
		}
	}
	logging.Logger().Debug("OpenGL function not found", "name", name)
	return nil
}

// Missing returns the names that Load cannot resolve.
func (l *Loader) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if l.Load(name) == nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// Require fails if any of names cannot be resolved.
func (l *Loader) Require(names ...string) error {
	if missing := l.Missing(names...); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrEntryPoint, strings.Join(missing, ", "))
	}
	return nil
}

// Some WGL drivers return small sentinel values instead of NULL.
func valid(p unsafe.Pointer) bool {
	switch uintptr(p) {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}
