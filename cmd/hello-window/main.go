package main

import (
	"log"
	"log/slog"
	"runtime"

	"github.com/learnopengl-go/learnopengl/lib/config"
	applog "github.com/learnopengl-go/learnopengl/lib/log"
	"github.com/learnopengl-go/learnopengl/lib/tutorial"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func windowConfig() *config.Config {
	cfg := config.Default()
	cfg.Window.Title = "Hello Window"
	return cfg
}

// hello-window is the standalone first chapter: a window that closes on
// Escape. It takes no arguments.
func main() {
	applog.Setup(slog.LevelInfo)

	t, err := tutorial.Lookup("1_1_1")
	if err != nil {
		log.Fatal(err)
	}
	err = tutorial.Run(t, windowConfig())
	if err != nil {
		log.Fatalf("could not run hello window: %s", err)
	}
}
