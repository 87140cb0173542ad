package rendering

import "github.com/go-gl/gl/v3.3-core/gl"

// Canvas issues the per-frame framebuffer calls shared by every tutorial.
type Canvas struct {
	Background Color
	clear      bool
}

func NewCanvas(background Color, clear bool) *Canvas {
	return &Canvas{Background: background, clear: clear}
}

// BeginFrame clears the colour buffer, unless the canvas was built for
// a tutorial that never clears.
func (c *Canvas) BeginFrame() {
	if c.clear {
		c.DrawBackground(c.Background)
	}
}

func (c *Canvas) DrawBackground(color Color) {
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Canvas) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Wireframe toggles between filled and outlined polygons.
func (c *Canvas) Wireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
