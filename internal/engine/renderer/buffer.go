package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBuffer is a static GL_ARRAY_BUFFER.
type VertexBuffer struct {
	id uint32
}

// NewVertexBuffer uploads data into a new buffer and leaves it bound.
func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return vb
}

// Bind binds the buffer to GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
}

// Unbind clears the GL_ARRAY_BUFFER binding.
func (vb *VertexBuffer) Unbind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Delete releases the buffer.
func (vb *VertexBuffer) Delete() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

// IndexBuffer is a static GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id    uint32
	count int32
}

// NewIndexBuffer uploads indices into a new buffer and leaves it bound.
// A vertex array should be bound first, since it records this binding.
func NewIndexBuffer(indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{count: int32(len(indices))}
	gl.GenBuffers(1, &ib.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return ib
}

// Count returns the number of indices.
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}

// Bind binds the buffer to GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
}

// Unbind clears the GL_ELEMENT_ARRAY_BUFFER binding.
func (ib *IndexBuffer) Unbind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// Delete releases the buffer.
func (ib *IndexBuffer) Delete() {
	if ib.id != 0 {
		gl.DeleteBuffers(1, &ib.id)
		ib.id = 0
	}
}
