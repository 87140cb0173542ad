package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/learnopengl-go/learnopengl/lib/utils"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "LearnOpenGL"
	DefaultShaderDir = "./src/shaders"
	DefaultTexture   = "./src/textures/container.png"
)

type Config struct {
	Window      *WindowCfg
	ClearColour string `yaml:"clear_colour"`
	Shaders     *ShadersCfg
	Textures    *TexturesCfg
	LogLevel    string `yaml:"log_level"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	GLMajor   int `yaml:"gl_major"`
	GLMinor   int `yaml:"gl_minor"`
	// nil means vsync (1); 0 turns it off
	SwapInterval *int `yaml:"swap_interval"`
}

type ShadersCfg struct {
	Dir       CfgPath
	HotReload bool `yaml:"hot_reload"`
}

type TexturesCfg struct {
	Path         CfgPath
	FlipVertical bool `yaml:"flip_vertical"`
}

type ApiCfg struct {
	Bind string
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)
	defer func() { UnmarshalBase = "" }()

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.GLMajor == 0 {
		c.Window.GLMajor = 3
		c.Window.GLMinor = 3
	}
	if c.Window.SwapInterval == nil {
		vsync := 1
		c.Window.SwapInterval = &vsync
	}
	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.Shaders.Dir == "" {
		c.Shaders.Dir = DefaultShaderDir
	}
	if c.Textures == nil {
		c.Textures = &TexturesCfg{}
	}
	if c.Textures.Path == "" {
		c.Textures.Path = DefaultTexture
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if c.ClearColour != "" && !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be specified when the api is enabled")
	}
	if c.LogLevel != "" {
		switch strings.ToLower(c.LogLevel) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("unknown log_level %s", c.LogLevel)
		}
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", w.Width, w.Height)
	}
	// the tutorials use VAOs and core-profile GLSL 330
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, at least 3.3 is required", w.GLMajor, w.GLMinor)
	}
	if w.SwapInterval != nil && *w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	return nil
}

// ShaderPath returns the path of a shader file inside the shader directory.
func (c *Config) ShaderPath(name string) string {
	return filepath.Join(string(c.Shaders.Dir), name)
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d (OpenGL %d.%d core)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.GLMajor, c.Window.GLMinor))

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  %s (hot reload: %t)\n", c.Shaders.Dir, c.Shaders.HotReload))

	b.WriteString("\nTexture:\n")
	b.WriteString(fmt.Sprintf("  %s\n", c.Textures.Path))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}
