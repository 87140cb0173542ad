package tutorial

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/learnopengl-go/learnopengl/lib/api"
	"github.com/learnopengl-go/learnopengl/lib/config"
	applog "github.com/learnopengl-go/learnopengl/lib/log"
	"github.com/learnopengl-go/learnopengl/lib/metrics"
	"github.com/learnopengl-go/learnopengl/lib/rendering"
	"github.com/learnopengl-go/learnopengl/lib/rendering/shaders"
	"github.com/learnopengl-go/learnopengl/lib/stats"
	"github.com/learnopengl-go/learnopengl/lib/utils"
	"github.com/learnopengl-go/learnopengl/lib/window"
)

// Run opens the window, sets the tutorial up and renders it until the
// window is closed. It must be called from the main thread.
func Run(t *Tutorial, cfg *config.Config) error {
	logger := applog.Module("tutorial")

	win, err := window.New(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	err = rendering.Init()
	if err != nil {
		return err
	}

	canvas := rendering.NewCanvas(background(cfg), t.Clear)
	win.OnResize(canvas.Resize)
	wireframe := false
	win.OnKey(glfw.KeyW, func() {
		wireframe = !wireframe
		canvas.Wireframe(wireframe)
	})

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return fmt.Errorf("could not load embedded shaders: %w", err)
	}
	env := &Env{
		Cfg:        cfg,
		Shaderer:   shaderer,
		ShaderData: shaders.DataForGL(cfg.Window.GLMajor, cfg.Window.GLMinor),
	}

	logger.Info(fmt.Sprintf("setting up %s (%s)", t.ID, t.Name))
	scene, err := t.Setup(env)
	if err != nil {
		return fmt.Errorf("could not set up %s: %w", t.ID, err)
	}
	defer scene.Delete()

	st := stats.New(t.ID)
	m := metrics.NewTutorialMetrics(t.ID)
	api.ServeInBackground(cfg.Api, api.TutorialInfo{ID: t.ID, Name: t.Name}, st, win.RequestClose)

	reload := watchShaders(cfg, scene)
	if reload != nil {
		defer func() { _ = reload.watcher.Close() }()
	}

	win.Run(func(dt time.Duration) {
		if reload != nil && reload.watcher.Pending() {
			if err := reload.scene.Reload(); err != nil {
				logger.Error(err.Error())
			} else {
				m.ShaderReloads.Inc()
				st.ShaderReloaded()
			}
		}

		canvas.BeginFrame()
		scene.Draw(dt)

		m.FramesRendered.Inc()
		st.Update(rendering.TextureUploadCounter, shaders.CompileFailures)
	})

	logger.Info(fmt.Sprintf("%s finished after %d frames", t.ID, st.Snapshot().Frames))
	return nil
}

type shaderReload struct {
	scene   Reloader
	watcher *shaders.Watcher
}

func watchShaders(cfg *config.Config, scene Scene) *shaderReload {
	if !cfg.Shaders.HotReload {
		return nil
	}
	r, ok := scene.(Reloader)
	if !ok {
		slog.Debug("scene uses embedded shaders, nothing to watch", slog.String("module", "tutorial"))
		return nil
	}
	w, err := shaders.Watch(r.ShaderFiles()...)
	if err != nil {
		slog.Warn(fmt.Sprintf("shader hot reload disabled: %s", err), slog.String("module", "tutorial"))
		return nil
	}
	return &shaderReload{scene: r, watcher: w}
}

func background(cfg *config.Config) rendering.Color {
	if cfg.ClearColour == "" {
		return rendering.DarkBlue
	}
	return rendering.ColorFromRGBA(utils.ColourParse(cfg.ClearColour))
}
