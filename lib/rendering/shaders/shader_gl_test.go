package shaders

import (
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withContext runs f with a hidden 3.3 core context current. These tests
// need a display and are only run when LEARNOPENGL_GL_TESTS is set.
func withContext(t *testing.T, f func()) {
	t.Helper()
	if os.Getenv("LEARNOPENGL_GL_TESTS") == "" {
		t.Skip("set LEARNOPENGL_GL_TESTS=1 to run tests that need an OpenGL context")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	require.NoError(t, glfw.Init())
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(64, 64, "test", nil, nil)
	require.NoError(t, err)
	defer win.Destroy()
	win.MakeContextCurrent()
	require.NoError(t, gl.Init())

	f()
}

func TestInvalidShaderIsLoggedNotFatal(t *testing.T) {
	withContext(t, func() {
		before := CompileFailures

		s := NewShader("#version 330 core\nvoid main() { this is not glsl }\n", FragmentStage)
		defer s.Delete()

		assert.False(t, s.Compiled)
		assert.NotEmpty(t, s.Log)
		assert.Equal(t, before+1, CompileFailures)
	})
}

func TestEmbeddedProgramsLink(t *testing.T) {
	withContext(t, func() {
		s, err := NewShaderer()
		require.NoError(t, err)

		for _, pair := range [][2]string{
			{"basic.vert", "orange.frag"},
			{"basic.vert", "uniform.frag"},
			{"colored.vert", "colored.frag"},
		} {
			p, err := s.BuildProgram(pair[0], pair[1], DataForGL(3, 3))
			require.NoError(t, err)
			assert.True(t, p.Linked, pair)
			p.Delete()
		}
	})
}

func TestShippedShaderFilesLink(t *testing.T) {
	withContext(t, func() {
		for _, name := range []string{"hello", "texture"} {
			p, err := LoadProgram("../../../src/shaders/"+name+".vs", "../../../src/shaders/"+name+".fs")
			require.NoError(t, err)
			assert.True(t, p.Linked, name)
			p.Delete()
		}
	})
}
