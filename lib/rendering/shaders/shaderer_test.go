package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShaderSource(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	for _, name := range []string{"basic.vert", "colored.frag", "colored.vert", "orange.frag", "uniform.frag"} {
		src, err := s.GetShaderSource(name, DataForGL(3, 3))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core\n"), name)
		assert.Contains(t, src, "void main()", name)
	}
}

func TestGetShaderSourceUnknown(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource("missing.frag", DataForGL(3, 3))
	assert.Error(t, err)
}

func TestDataForGL(t *testing.T) {
	assert.Equal(t, "410 core", DataForGL(4, 1).Version)
}

func TestStage(t *testing.T) {
	assert.Equal(t, "VERTEX", VertexStage.String())
	assert.Equal(t, "FRAGMENT", FragmentStage.String())

	for path, want := range map[string]Stage{
		"src/shaders/hello.vs":    VertexStage,
		"src/shaders/hello.fs":    FragmentStage,
		"src/shaders/screen.vert": VertexStage,
		"composite.frag":          FragmentStage,
	} {
		got, err := StageFromExt(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := StageFromExt("readme.md")
	assert.Error(t, err)
}

func TestCheckStage(t *testing.T) {
	assert.NoError(t, checkStage("src/shaders/hello.vs", VertexStage))
	assert.NoError(t, checkStage("src/shaders/hello.fs", FragmentStage))
	assert.ErrorContains(t, checkStage("src/shaders/hello.fs", VertexStage), "is a FRAGMENT shader, expected VERTEX")
	assert.Error(t, checkStage("src/shaders/hello.glsl", VertexStage))
}

func TestLoadProgramRejectsSwappedPaths(t *testing.T) {
	_, err := LoadProgram("src/shaders/hello.fs", "src/shaders/hello.vs")
	assert.ErrorContains(t, err, "expected VERTEX")
}

func TestTrimInfoLog(t *testing.T) {
	assert.Equal(t, "0:3(1): error: syntax error", trimInfoLog("0:3(1): error: syntax error\n\x00\x00"))
}
