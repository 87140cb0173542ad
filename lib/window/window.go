package window

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/learnopengl-go/learnopengl/lib/config"
	"github.com/learnopengl-go/learnopengl/lib/utils"
)

// Window owns the native window, its OpenGL context and the render loop.
// All methods except RequestClose must be called from the main thread.
type Window struct {
	*glfw.Window

	cfg            *config.WindowCfg
	closeRequested atomic.Bool
	onResize       func(width, height int)
	keys           map[glfw.Key]func()
}

func New(cfg *config.WindowCfg) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	win.MakeContextCurrent()
	if cfg.SwapInterval != nil {
		glfw.SwapInterval(*cfg.SwapInterval)
	}

	w := &Window{
		Window: win,
		cfg:    cfg,
		keys:   make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	slog.Info(fmt.Sprintf("created %q %dx%d", cfg.Title, cfg.Width, cfg.Height), slog.String("module", "window"))
	return w, nil
}

// OnResize registers the function called with the new framebuffer size,
// typically to reset the GL viewport.
func (w *Window) OnResize(f func(width, height int)) {
	w.onResize = f
}

// OnKey registers a function called when key is pressed. Escape is
// always bound to closing the window.
func (w *Window) OnKey(key glfw.Key, f func()) {
	w.keys[key] = f
}

// RequestClose asks the render loop to stop after the current frame.
// It is safe to call from any goroutine.
func (w *Window) RequestClose() {
	w.closeRequested.Store(true)
}

// Run drives the render loop until the window is closed: handle input,
// draw, swap buffers, poll events.
func (w *Window) Run(frame func(dt time.Duration)) {
	var deltaTimer utils.DeltaTimer
	for !w.ShouldClose() {
		w.processInput()

		frame(deltaTimer.Next())

		w.SwapBuffers()
		glfw.PollEvents()
	}
	slog.Debug("render loop finished", slog.String("module", "window"))
}

func (w *Window) processInput() {
	if w.closeRequested.Load() || w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	handleKey(win, w.keys, key, action)
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width int, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

type closer interface {
	SetShouldClose(value bool)
}

func handleKey(win closer, bindings map[glfw.Key]func(), key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		slog.Debug("escape pressed, closing", slog.String("module", "window"))
		win.SetShouldClose(true)
		return
	}
	if f, ok := bindings[key]; ok {
		f()
	}
}
