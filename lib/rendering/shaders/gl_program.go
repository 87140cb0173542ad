package shaders

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learnopengl-go/learnopengl/lib/metrics"
)

// Program is a linked shader program together with a cache of the
// uniform locations it has been asked about.
type Program struct {
	ID     uint32
	Linked bool

	uniforms map[string]int32
}

// NewProgram links the vertex and fragment shader into a program. The
// shaders are deleted afterwards; they are not needed once linked.
func NewProgram(vertex, fragment *Shader) *Program {
	p := &Program{uniforms: make(map[string]int32)}
	p.ID = gl.CreateProgram()

	gl.AttachShader(p.ID, vertex.ID)
	gl.AttachShader(p.ID, fragment.ID)
	gl.LinkProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.ID, logLength, nil, gl.Str(logmsg))

		metrics.ProgramLinkFailures.Inc()
		slog.Error("failed to link program",
			slog.String("module", "shaders"),
			slog.String("log", trimInfoLog(logmsg)),
		)
	} else {
		p.Linked = true
	}

	gl.DetachShader(p.ID, vertex.ID)
	gl.DetachShader(p.ID, fragment.ID)
	vertex.Delete()
	fragment.Delete()

	return p
}

// NewProgramFromSources compiles both stages from source text.
func NewProgramFromSources(vertexSource, fragmentSource string) *Program {
	return NewProgram(
		NewShader(vertexSource, VertexStage),
		NewShader(fragmentSource, FragmentStage),
	)
}

// LoadProgram reads, compiles and links a vertex and a fragment shader file.
func LoadProgram(vertexPath, fragmentPath string) (*Program, error) {
	if err := checkStage(vertexPath, VertexStage); err != nil {
		return nil, err
	}
	if err := checkStage(fragmentPath, FragmentStage); err != nil {
		return nil, err
	}
	vs, err := NewShaderFromFile(vertexPath, VertexStage)
	if err != nil {
		return nil, err
	}
	fs, err := NewShaderFromFile(fragmentPath, FragmentStage)
	if err != nil {
		vs.Delete()
		return nil, err
	}
	slog.Debug(fmt.Sprintf("loaded %s and %s", vertexPath, fragmentPath), slog.String("module", "shaders"))
	return NewProgram(vs, fs), nil
}

// checkStage catches swapped vertex and fragment paths before the driver
// reports them as a confusing compile error.
func checkStage(path string, want Stage) error {
	got, err := StageFromExt(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s is a %s shader, expected %s", path, got, want)
	}
	return nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn(fmt.Sprintf("uniform %s is not active in program %d", name, p.ID), slog.String("module", "shaders"))
	}
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(p.location(name), x, y, z)
}

func (p *Program) SetVector3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.location(name), 1, &v[0])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}
