package model

// Vertex is a node of the property graph. Its identifier and attributes come
// from the embedded Element; Label is structural and not a property.
type Vertex struct {
	Label string // Type or category of the vertex
	*Element
}

// NewVertex creates a vertex with the given label and no identifier
func NewVertex(label string) *Vertex {
	return &Vertex{
		Label:   label,
		Element: NewElement(),
	}
}

// NewVertexWithID creates a vertex whose identifier is fixed at construction
func NewVertexWithID(id Value, label string) *Vertex {
	return &Vertex{
		Label:   label,
		Element: NewElementWithID(id),
	}
}
