package model

// Edge is a directed relationship between two vertices, referenced by their
// identifiers. Endpoints and label are structural, not properties.
type Edge struct {
	Out   Value  // Identifier of the tail vertex
	In    Value  // Identifier of the head vertex
	Label string // Type or category of the relationship
	*Element
}

// NewEdge creates an edge from out to in with no identifier
func NewEdge(out, in Value, label string) *Edge {
	return &Edge{
		Out:     out,
		In:      in,
		Label:   label,
		Element: NewElement(),
	}
}

// NewEdgeWithID creates an edge whose identifier is fixed at construction
func NewEdgeWithID(id, out, in Value, label string) *Edge {
	return &Edge{
		Out:     out,
		In:      in,
		Label:   label,
		Element: NewElementWithID(id),
	}
}

// Connects reports whether id is either endpoint of the edge
func (e *Edge) Connects(id Value) bool {
	return e.Out.Equal(id) || e.In.Equal(id)
}
