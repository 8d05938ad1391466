// Package mesh describes vertex layouts and the quad geometry the demos draw.
package mesh

// Kind is the component type of a vertex attribute.
type Kind int

const (
	Float Kind = iota
	Uint
	Ubyte
)

// Size returns the byte size of one component.
func (k Kind) Size() int {
	switch k {
	case Float, Uint:
		return 4
	case Ubyte:
		return 1
	default:
		return 0
	}
}

// Normalized reports whether integer components are mapped to [0, 1].
func (k Kind) Normalized() bool {
	return k == Ubyte
}

// Element is one attribute in an interleaved vertex.
type Element struct {
	Kind   Kind
	Count  int
	Offset int
}

// Layout is an interleaved vertex format. Attributes are numbered in push order.
type Layout struct {
	elements []Element
	stride   int
}

// Push appends an attribute of count components.
func (l *Layout) Push(kind Kind, count int) *Layout {
	l.elements = append(l.elements, Element{Kind: kind, Count: count, Offset: l.stride})
	l.stride += kind.Size() * count
	return l
}

// Elements returns the attributes in order.
func (l *Layout) Elements() []Element {
	return l.elements
}

// Stride returns the size of one vertex in bytes.
func (l *Layout) Stride() int {
	return l.stride
}

// Geometry is indexed triangle data.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Layout   *Layout
}

// VertexCount returns the number of vertices described by Vertices.
func (g Geometry) VertexCount() int {
	floats := g.Layout.Stride() / 4
	if floats == 0 {
		return 0
	}
	return len(g.Vertices) / floats
}

// QuadIndices are the two counter-clockwise triangles of a quad.
var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}

// Quad returns a quad spanning [x, x+w] x [y, y+h] with position (2 floats)
// and texture coordinates (2 floats) per vertex.
func Quad(x, y, w, h float32) Geometry {
	return Geometry{
		Vertices: []float32{
			x, y, 0, 0,
			x + w, y, 1, 0,
			x + w, y + h, 1, 1,
			x, y + h, 0, 1,
		},
		Indices: QuadIndices,
		Layout:  new(Layout).Push(Float, 2).Push(Float, 2),
	}
}

// CenteredQuad returns a w by h quad centered on the origin.
func CenteredQuad(w, h float32) Geometry {
	return Quad(-w/2, -h/2, w, h)
}
