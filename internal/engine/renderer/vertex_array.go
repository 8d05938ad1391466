package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glsandbox/internal/engine/mesh"
)

// VertexArray records vertex attribute bindings.
type VertexArray struct {
	id         uint32
	attributes uint32
}

// NewVertexArray creates a vertex array object.
func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

// AddBuffer binds vb and describes its attributes with layout. Attributes
// continue numbering after those of previously added buffers.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *mesh.Layout) {
	va.Bind()
	vb.Bind()
	stride := int32(layout.Stride())
	for _, e := range layout.Elements() {
		gl.EnableVertexAttribArray(va.attributes)
		gl.VertexAttribPointerWithOffset(va.attributes, int32(e.Count), glType(e.Kind), e.Kind.Normalized(), stride, uintptr(e.Offset))
		va.attributes++
	}
}

// Bind binds the vertex array.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.id)
}

// Unbind clears the vertex array binding.
func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array.
func (va *VertexArray) Delete() {
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}

func glType(k mesh.Kind) uint32 {
	switch k {
	case mesh.Uint:
		return gl.UNSIGNED_INT
	case mesh.Ubyte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

// Mesh is geometry uploaded to the GPU.
type Mesh struct {
	VA *VertexArray
	VB *VertexBuffer
	IB *IndexBuffer
}

// Upload creates the buffers for g and leaves everything unbound.
func Upload(g mesh.Geometry) *Mesh {
	m := &Mesh{VA: NewVertexArray()}
	m.VA.Bind()
	m.VB = NewVertexBuffer(g.Vertices)
	m.VA.AddBuffer(m.VB, g.Layout)
	m.IB = NewIndexBuffer(g.Indices)

	m.VA.Unbind()
	m.VB.Unbind()
	m.IB.Unbind()
	return m
}

// Delete releases every buffer of the mesh.
func (m *Mesh) Delete() {
	m.VA.Delete()
	m.VB.Delete()
	m.IB.Delete()
}
