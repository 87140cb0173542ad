package main

import (
	"testing"

	"github.com/learnopengl-go/learnopengl/lib/tutorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowConfig(t *testing.T) {
	cfg := windowConfig()
	assert.Equal(t, "Hello Window", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	require.NoError(t, cfg.Validate())

	hello, err := tutorial.Lookup("1_1_1")
	require.NoError(t, err)
	assert.False(t, hello.Clear)
}
