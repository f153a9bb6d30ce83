//go:build windows

package platform

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	openglOnce sync.Once
	openglDLL  windows.Handle
)

func moduleProcAddress(name string) unsafe.Pointer {
	openglOnce.Do(func() {
		h, err := windows.LoadLibrary("opengl32.dll")
		if err == nil {
			openglDLL = h
		}
	})
	if openglDLL == 0 {
		return nil
	}
	proc, err := windows.GetProcAddress(openglDLL, name)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(proc)
}

// BootstrapEntryPoints are the WGL extension functions that must resolve
// through the probe context before the real context can be created.
func BootstrapEntryPoints() []string {
	return []string{"wglChoosePixelFormatARB", "wglCreateContextAttribsARB"}
}
