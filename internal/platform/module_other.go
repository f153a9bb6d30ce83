//go:build android || (!windows && !darwin && !freebsd && !linux)

package platform

import "unsafe"

func moduleProcAddress(string) unsafe.Pointer { return nil }

// BootstrapEntryPoints returns nil where no extended creation API is known.
func BootstrapEntryPoints() []string { return nil }
