//go:build (darwin || freebsd || linux) && !android

package platform

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	libGLOnce sync.Once
	libGL     uintptr
)

func libGLPath() string {
	if runtime.GOOS == "darwin" {
		return "/System/Library/Frameworks/OpenGL.framework/OpenGL"
	}
	return "libGL.so.1"
}

func moduleProcAddress(name string) unsafe.Pointer {
	libGLOnce.Do(func() {
		h, err := purego.Dlopen(libGLPath(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			libGL = h
		}
	})
	if libGL == 0 {
		return nil
	}
	sym, err := purego.Dlsym(libGL, name)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(sym)
}

// BootstrapEntryPoints are the extended context-creation functions that must
// resolve through the probe context before the real context can be created.
// CGL creates core contexts directly, so macOS needs none.
func BootstrapEntryPoints() []string {
	if runtime.GOOS == "darwin" {
		return nil
	}
	return []string{"glXChooseFBConfig", "glXCreateContextAttribsARB"}
}
