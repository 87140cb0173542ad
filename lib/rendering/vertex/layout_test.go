package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutPositionColour(t *testing.T) {
	l := Layout{Components: []int32{3, 3}}

	assert.Equal(t, int32(6), l.Floats())
	assert.Equal(t, int32(24), l.Stride())
	assert.Equal(t, 0, l.Offset(0))
	assert.Equal(t, 12, l.Offset(1))
}

func TestLayoutPositionColourUV(t *testing.T) {
	l := Layout{Components: []int32{3, 3, 2}}

	assert.Equal(t, int32(32), l.Stride())
	assert.Equal(t, 24, l.Offset(2))
	assert.Equal(t, int32(4), l.Count(make([]float32, 32)))
}

func TestLayoutCountIgnoresPartialVertex(t *testing.T) {
	l := Layout{Components: []int32{3}}

	assert.Equal(t, int32(3), l.Count(make([]float32, 10)))
	assert.Equal(t, int32(0), Layout{}.Count(make([]float32, 10)))
}
