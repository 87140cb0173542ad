package tutorial

import (
	"fmt"
	"time"

	"github.com/learnopengl-go/learnopengl/lib/rendering/shaders"
	"github.com/learnopengl-go/learnopengl/lib/rendering/vertex"
)

var positionLayout = vertex.Layout{Components: []int32{3}}

// meshScene draws one vertex array with one program.
type meshScene struct {
	program *shaders.Program
	mesh    *vertex.VertexArray
}

func (s *meshScene) Draw(time.Duration) {
	s.program.Use()
	s.mesh.Draw()
}

func (s *meshScene) Delete() {
	s.mesh.Delete()
	s.program.Delete()
}

func setupHelloTriangle(env *Env) (Scene, error) {
	program, err := env.Shaderer.BuildProgram("basic.vert", "orange.frag", env.ShaderData)
	if err != nil {
		return nil, fmt.Errorf("could not build triangle program: %w", err)
	}

	mesh := vertex.NewBuilder().
		VertexBuffer(TriangleVertices).
		Attributes(positionLayout).
		Build()

	return &meshScene{program: program, mesh: mesh}, nil
}

func setupHelloTriangleIndexed(env *Env) (Scene, error) {
	program, err := env.Shaderer.BuildProgram("basic.vert", "orange.frag", env.ShaderData)
	if err != nil {
		return nil, fmt.Errorf("could not build rectangle program: %w", err)
	}

	mesh := vertex.NewBuilder().
		VertexBuffer(RectangleVertices).
		ElementBuffer(RectangleIndices).
		Attributes(positionLayout).
		Build()

	return &meshScene{program: program, mesh: mesh}, nil
}
