package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/learnopengl-go/learnopengl/lib/metrics"
)

type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	default:
		return fmt.Sprintf("STAGE(%#x)", uint32(s))
	}
}

// StageFromExt guesses the stage from a shader file extension.
func StageFromExt(path string) (Stage, error) {
	switch {
	case strings.HasSuffix(path, ".vs"), strings.HasSuffix(path, ".vert"):
		return VertexStage, nil
	case strings.HasSuffix(path, ".fs"), strings.HasSuffix(path, ".frag"):
		return FragmentStage, nil
	default:
		return 0, fmt.Errorf("cannot tell the shader stage of %s", path)
	}
}

type Shader struct {
	ID       uint32
	Stage    Stage
	Compiled bool
	Log      string
}

// NewShader compiles source for the given stage. A compile failure is
// logged together with the driver's info log; the shader is still
// returned so that the caller can carry on.
func NewShader(source string, stage Stage) *Shader {
	s := &Shader{Stage: stage}
	s.ID = gl.CreateShader(uint32(stage))

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(s.ID, 1, csources, &size)
	free()
	gl.CompileShader(s.ID)

	s.checkCompileErrors()
	return s
}

func NewShaderFromFile(path string, stage Stage) (*Shader, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s shader: %w", stage, err)
	}
	return NewShader(string(source), stage), nil
}

func (s *Shader) checkCompileErrors() {
	var status int32
	gl.GetShaderiv(s.ID, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		s.Compiled = true
		return
	}

	var logLength int32
	gl.GetShaderiv(s.ID, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s.ID, logLength, nil, gl.Str(clog))
	s.Log = trimInfoLog(clog)

	CompileFailures++
	metrics.ShaderCompileFailures.WithLabelValues(s.Stage.String()).Inc()
	slog.Error(
		fmt.Sprintf("shader compilation error of type %s", s.Stage),
		slog.String("module", "shaders"),
		slog.String("stage", s.Stage.String()),
		slog.String("log", s.Log),
	)
}

func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteShader(s.ID)
		s.ID = 0
	}
}

// CompileFailures counts shaders rejected by the driver since start-up.
var CompileFailures uint64

func trimInfoLog(raw string) string {
	return strings.TrimRight(raw, "\x00\n ")
}
