package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	shouldClose bool
}

func (f *fakeWindow) SetShouldClose(value bool) {
	f.shouldClose = value
}

func TestEscapeClosesWindow(t *testing.T) {
	win := &fakeWindow{}

	handleKey(win, nil, glfw.KeyEscape, glfw.Release)
	assert.False(t, win.shouldClose)

	handleKey(win, nil, glfw.KeyEscape, glfw.Press)
	assert.True(t, win.shouldClose)
}

func TestKeyBindings(t *testing.T) {
	win := &fakeWindow{}
	toggled := 0
	bindings := map[glfw.Key]func(){
		glfw.KeyW: func() { toggled++ },
	}

	handleKey(win, bindings, glfw.KeyW, glfw.Press)
	handleKey(win, bindings, glfw.KeyW, glfw.Repeat)
	handleKey(win, bindings, glfw.KeyA, glfw.Press)

	assert.Equal(t, 1, toggled)
	assert.False(t, win.shouldClose)
}
