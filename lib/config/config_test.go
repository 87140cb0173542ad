package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "learnopengl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "LearnOpenGL", cfg.Window.Title)
	assert.Equal(t, 3, cfg.Window.GLMajor)
	assert.Equal(t, 3, cfg.Window.GLMinor)
	require.NotNil(t, cfg.Window.SwapInterval)
	assert.Equal(t, 1, *cfg.Window.SwapInterval)
	assert.Equal(t, CfgPath("./src/shaders"), cfg.Shaders.Dir)
	assert.Equal(t, "src/shaders/hello.vs", cfg.ShaderPath("hello.vs"))
	assert.Nil(t, cfg.Api)
	assert.NoError(t, cfg.Validate())
}

func TestParseResolvesPathsRelativeToConfig(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Hello Window
  width: 1024
shaders:
  dir: glsl
  hot_reload: true
textures:
  path: /srv/textures/wall.jpg
clear_colour: "#1a334dff"
log_level: debug
api:
  bind: 127.0.0.1:8080
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "Hello Window", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, CfgPath(filepath.Join(filepath.Dir(path), "glsl")), cfg.Shaders.Dir)
	assert.True(t, cfg.Shaders.HotReload)
	assert.Equal(t, CfgPath("/srv/textures/wall.jpg"), cfg.Textures.Path)
	assert.Equal(t, "127.0.0.1:8080", cfg.Api.Bind)
	assert.Empty(t, UnmarshalBase)
}

func TestParseKeepsVsyncOff(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "window:\n  swap_interval: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Window.SwapInterval)
	assert.Equal(t, 0, *cfg.Window.SwapInterval)

	cfg, err = Parse(writeConfig(t, "window:\n  width: 640\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, *cfg.Window.SwapInterval)
}

func TestParseRejectsInvalidConfigs(t *testing.T) {
	cases := map[string]string{
		"bad colour":    "clear_colour: blue\n",
		"old opengl":    "window:\n  gl_major: 2\n  gl_minor: 1\n",
		"api w/o bind":  "api:\n  bind: \"\"\n",
		"bad log level": "log_level: chatty\n",
		"negative size": "window:\n  width: -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "could not open")
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, `"LearnOpenGL" 800x600 (OpenGL 3.3 core)`)
	assert.Contains(t, s, "./src/shaders")
}
