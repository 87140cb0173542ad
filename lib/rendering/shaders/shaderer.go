package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

// Shaderer renders the shader sources that are compiled into the binary.
type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	// Version is the GLSL #version line argument, e.g. "330 core"
	Version string
}

func DataForGL(major, minor int) *ShaderData {
	return &ShaderData{Version: fmt.Sprintf("%d%d0 core", major, minor)}
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

// BuildProgram renders the two named templates and links them.
func (s *Shaderer) BuildProgram(vertexName, fragmentName string, data *ShaderData) (*Program, error) {
	vertexShader, err := s.GetShaderSource(vertexName, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := s.GetShaderSource(fragmentName, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return NewProgramFromSources(vertexShader, fragmentShader), nil
}
