package vertex

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray owns a VAO and the buffers attached to it.
type VertexArray struct {
	VAO uint32
	VBO uint32
	EBO uint32

	// Count is the number of vertices (or indices when EBO is set) to draw.
	Count int32
	Mode  uint32
}

// Builder assembles a VertexArray step by step. The VAO stays bound from
// NewBuilder until Build so that every buffer and attribute call is
// recorded in it.
type Builder struct {
	va       VertexArray
	vertices []float32
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.va.Mode = gl.TRIANGLES
	gl.GenVertexArrays(1, &b.va.VAO)
	gl.BindVertexArray(b.va.VAO)
	slog.Debug(fmt.Sprintf("vertex array %d", b.va.VAO), slog.String("module", "vertex"))
	return b
}

func (b *Builder) VertexBuffer(vertices []float32) *Builder {
	b.vertices = vertices
	gl.GenBuffers(1, &b.va.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*f32, gl.Ptr(vertices), gl.STATIC_DRAW)
	return b
}

// ElementBuffer uploads indices; the array is then drawn with DrawElements.
func (b *Builder) ElementBuffer(indices []uint32) *Builder {
	gl.GenBuffers(1, &b.va.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.va.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	b.va.Count = int32(len(indices))
	return b
}

// Attribute configures and enables a single float attribute.
func (b *Builder) Attribute(index uint32, size int32, stride int32, offset int) *Builder {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, uintptr(offset))
	gl.EnableVertexAttribArray(index)
	return b
}

// Attributes configures every attribute of the layout, location i taking
// Components[i] floats.
func (b *Builder) Attributes(layout Layout) *Builder {
	stride := layout.Stride()
	for i, size := range layout.Components {
		b.Attribute(uint32(i), size, stride, layout.Offset(i))
	}
	if b.va.EBO == 0 {
		b.va.Count = layout.Count(b.vertices)
	}
	return b
}

// Build unbinds the ARRAY_BUFFER, which the attribute pointers have
// already captured. The VAO and its ELEMENT_ARRAY_BUFFER stay bound.
func (b *Builder) Build() *VertexArray {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	va := b.va
	return &va
}

func (v *VertexArray) Draw() {
	gl.BindVertexArray(v.VAO)
	if v.EBO != 0 {
		gl.DrawElementsWithOffset(v.Mode, v.Count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(v.Mode, 0, v.Count)
	}
}

func (v *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &v.VAO)
	if v.VBO != 0 {
		gl.DeleteBuffers(1, &v.VBO)
	}
	if v.EBO != 0 {
		gl.DeleteBuffers(1, &v.EBO)
	}
	*v = VertexArray{}
}
