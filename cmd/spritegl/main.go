package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"spritegl/internal/config"
	"spritegl/internal/game"
	"spritegl/internal/logging"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	count := flag.Int("sprites", 64, "number of sprites at startup")
	flag.Parse()

	logging.SetLogger(logging.New(os.Stderr, false))
	cfg, err := config.Load()
	if err != nil {
		fail("invalid configuration", err)
	}
	logging.SetLogger(logging.New(os.Stderr, cfg.Debug))

	stack, err := game.Setup(cfg)
	if err != nil {
		fail("startup failed", err)
	}

	atlas, err := demoAtlas()
	if err != nil {
		stack.Close()
		fail("atlas layout", err)
	}

	var app *game.App
	demo := newDemo(atlas, uint64(time.Now().UnixNano()), func() { app.Stop() })
	demo.spawn(*count, stack.Input.ScreenSize())
	app = stack.NewApp(demo)

	// a signal stops the loop; GL teardown stays on the main thread
	done := make(chan struct{})
	closer.Bind(func() {
		app.Stop()
		<-done
	})

	runErr := app.Run()
	stack.Close()
	close(done)
	if runErr != nil {
		fail("frame loop aborted", runErr)
	}
	logging.Logger().Info("bye")
}

func fail(msg string, err error) {
	logging.Logger().Error(msg, "err", err)
	closer.Exit(closer.ExitCodeErr)
}
