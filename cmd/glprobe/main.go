// Command glprobe runs only the context bootstrap and reports what the driver
// negotiated. Use it to diagnose startup failures.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"spritegl/internal/config"
	"spritegl/internal/graphics"
	"spritegl/internal/logging"
	"spritegl/internal/platform"
	"spritegl/internal/platform/desktop"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	verbose := flag.Bool("v", false, "log driver messages")
	flag.Parse()
	logging.SetLogger(logging.New(os.Stderr, *verbose))

	cfg := config.Default()
	attribs := platform.DefaultContextAttribs()
	fmt.Printf("requested: %s\n", attribs)

	w, err := desktop.Open(desktop.Options{
		Title:   "glprobe",
		Width:   320,
		Height:  240,
		X:       cfg.X,
		Y:       cfg.Y,
		Attribs: attribs,
	})
	if err != nil {
		logging.Logger().Error("bootstrap failed", "err", err)
		closer.Exit(closer.ExitCodeErr)
	}

	status := 0
	if err := report(w.Loader()); err != nil {
		logging.Logger().Error("probe failed", "err", err)
		status = closer.ExitCodeErr
	}
	w.Close()
	if status != 0 {
		closer.Exit(status)
	}
}

func report(loader *platform.Loader) error {
	if err := graphics.InitBindings(loader); err != nil {
		return err
	}

	info := graphics.QueryContext()
	profile := "compatibility"
	if info.CoreProfile {
		profile = "core"
	}
	fmt.Printf("vendor:   %s\n", info.Vendor)
	fmt.Printf("renderer: %s\n", info.Renderer)
	fmt.Printf("version:  %s (%d.%d %s, debug=%t)\n", info.Version, info.Major, info.Minor, profile, info.Debug)
	fmt.Printf("glsl:     %s\n", info.GLSL)

	fmt.Println("entry points:")
	for _, name := range append(platform.BootstrapEntryPoints(), graphics.RequiredFunctions...) {
		state := "ok"
		if loader.Load(name) == nil {
			state = "missing"
		}
		fmt.Printf("  %-28s %s\n", name, state)
	}
	return nil
}
