package tutorial

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/learnopengl-go/learnopengl/lib/rendering/shaders"
	"github.com/learnopengl-go/learnopengl/lib/rendering/vertex"
)

var colorLayout = vertex.Layout{Components: []int32{3, 3}}

func setupShadersInterpolation(env *Env) (Scene, error) {
	program, err := env.Shaderer.BuildProgram("colored.vert", "colored.frag", env.ShaderData)
	if err != nil {
		return nil, fmt.Errorf("could not build interpolation program: %w", err)
	}

	mesh := vertex.NewBuilder().
		VertexBuffer(ColoredTriangleVertices).
		Attributes(colorLayout).
		Build()

	return &meshScene{program: program, mesh: mesh}, nil
}

// fileScene is a meshScene whose program is read from a vertex and a
// fragment shader file, and can be rebuilt when those change.
type fileScene struct {
	meshScene
	vertexPath   string
	fragmentPath string
}

func newFileScene(env *Env, vertexName, fragmentName string) (*fileScene, error) {
	s := &fileScene{
		vertexPath:   env.Cfg.ShaderPath(vertexName),
		fragmentPath: env.Cfg.ShaderPath(fragmentName),
	}
	program, err := shaders.LoadProgram(s.vertexPath, s.fragmentPath)
	if err != nil {
		return nil, err
	}
	s.program = program
	return s, nil
}

func (s *fileScene) ShaderFiles() []string {
	return []string{s.vertexPath, s.fragmentPath}
}

// Reload swaps in a freshly built program. A program that fails to link
// is discarded and the previous one kept.
func (s *fileScene) Reload() error {
	program, err := shaders.LoadProgram(s.vertexPath, s.fragmentPath)
	if err != nil {
		return err
	}
	if !program.Linked {
		program.Delete()
		return fmt.Errorf("keeping previous program, %s / %s did not link", s.vertexPath, s.fragmentPath)
	}
	s.program.Delete()
	s.program = program
	slog.Info("shader program reloaded", slog.String("module", "tutorial"))
	return nil
}

func setupShadersClass(env *Env) (Scene, error) {
	s, err := newFileScene(env, "hello.vs", "hello.fs")
	if err != nil {
		return nil, err
	}

	s.mesh = vertex.NewBuilder().
		VertexBuffer(ColoredTriangleVertices).
		Attributes(colorLayout).
		Build()

	return s, nil
}

// uniformScene pulses the triangle's green channel through a uniform.
type uniformScene struct {
	meshScene
	elapsed time.Duration
}

func setupShadersUniform(env *Env) (Scene, error) {
	program, err := env.Shaderer.BuildProgram("basic.vert", "uniform.frag", env.ShaderData)
	if err != nil {
		return nil, fmt.Errorf("could not build uniform program: %w", err)
	}

	mesh := vertex.NewBuilder().
		VertexBuffer(TriangleVertices).
		Attributes(positionLayout).
		Build()

	return &uniformScene{meshScene: meshScene{program: program, mesh: mesh}}, nil
}

func (s *uniformScene) Draw(dt time.Duration) {
	s.elapsed += dt
	s.program.Use()
	s.program.SetVec4("ourColor", pulse(s.elapsed))
	s.mesh.Draw()
}

// pulse maps time onto a green that oscillates between 0 and 1.
func pulse(t time.Duration) mgl32.Vec4 {
	green := float32(math.Sin(t.Seconds())/2 + 0.5)
	return mgl32.Vec4{0, green, 0, 1}
}
