package tutorial

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/learnopengl-go/learnopengl/lib/config"
	"github.com/learnopengl-go/learnopengl/lib/rendering/shaders"
)

// Scene is whatever a tutorial draws every frame.
type Scene interface {
	Draw(dt time.Duration)
	Delete()
}

// Reloader is implemented by scenes whose shaders come from files and
// can be rebuilt while running.
type Reloader interface {
	ShaderFiles() []string
	Reload() error
}

// Env is handed to a tutorial's Setup once the GL context is current.
type Env struct {
	Cfg        *config.Config
	Shaderer   *shaders.Shaderer
	ShaderData *shaders.ShaderData
}

type Tutorial struct {
	ID   string
	Name string
	// Clear is false for the very first chapter, which never clears the
	// framebuffer.
	Clear bool
	Setup func(env *Env) (Scene, error)
}

var tutorials = []*Tutorial{
	{ID: "1_1_1", Name: "hello_window", Clear: false, Setup: setupEmpty},
	{ID: "1_1_2", Name: "hello_window_clear", Clear: true, Setup: setupEmpty},
	{ID: "1_2_1", Name: "hello_triangle", Clear: true, Setup: setupHelloTriangle},
	{ID: "1_2_2", Name: "hello_triangle_indexed", Clear: true, Setup: setupHelloTriangleIndexed},
	{ID: "1_3_1", Name: "shaders_interpolation", Clear: true, Setup: setupShadersInterpolation},
	{ID: "1_3_2", Name: "shaders_class", Clear: true, Setup: setupShadersClass},
	{ID: "1_3_3", Name: "shaders_uniform", Clear: true, Setup: setupShadersUniform},
	{ID: "1_4_1", Name: "textures", Clear: true, Setup: setupTextures},
}

// All returns every tutorial in curriculum order.
func All() []*Tutorial {
	return slices.Clone(tutorials)
}

func IDs() []string {
	ids := make([]string, len(tutorials))
	for i, t := range tutorials {
		ids[i] = t.ID
	}
	return ids
}

// Lookup accepts either the numeric id (1_2_1) or the name (hello_triangle).
func Lookup(id string) (*Tutorial, error) {
	for _, t := range tutorials {
		if t.ID == id || t.Name == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown tutorial id %q", id)
}

func Usage(w io.Writer, prog string) {
	var b strings.Builder
	b.WriteString("Call with the number of the tutorial.\n")
	b.WriteString(fmt.Sprintf("e.g. `%s 1_1_2` for hello_window_clear\n\n", prog))
	b.WriteString("Tutorials:\n")
	for _, t := range tutorials {
		b.WriteString(fmt.Sprintf("  %s  %s\n", t.ID, t.Name))
	}
	_, _ = io.WriteString(w, b.String())
}
