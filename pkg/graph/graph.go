// Package graph holds vertices and edges and enforces that identifiers are
// unique within each of the two domains. A vertex and an edge may share an
// identifier.
package graph

import (
	"fmt"
	"sync"

	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// Graph is an in-memory container of vertices and edges.
//
// The container's own registries are safe for concurrent use. The elements it
// holds are not: callers that mutate a vertex or edge while other goroutines
// read it must synchronize themselves. Changing the identifier of an element
// after it was added is not tracked; Verify reports such elements.
type Graph struct {
	mu       sync.RWMutex
	vertices *idIndex[*model.Vertex]
	edges    *idIndex[*model.Edge]
	logger   model.Logger
}

// Option configures a Graph
type Option func(*Graph)

// WithLogger sets the logger used by the graph
func WithLogger(logger model.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates an empty graph
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices: newIDIndex[*model.Vertex](),
		edges:    newIDIndex[*model.Edge](),
		logger:   model.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex registers v under its current identifier
func (g *Graph) AddVertex(v *model.Vertex) error {
	if v == nil || v.Element == nil {
		return ErrNilElement
	}
	id, ok := identifier(v)
	if !ok {
		return ErrMissingIdentifier{Kind: KindVertex}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.vertices.put(id, v) {
		return ErrDuplicateID{Kind: KindVertex, ID: id}
	}

	g.logger.Debug("Added vertex %s with label %s", id, v.Label)
	return nil
}

// AddEdge registers e under its current identifier. Both endpoints must
// already be vertices of the graph.
func (g *Graph) AddEdge(e *model.Edge) error {
	if e == nil || e.Element == nil {
		return ErrNilElement
	}
	id, ok := identifier(e)
	if !ok {
		return ErrMissingIdentifier{Kind: KindEdge}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, endpoint := range []model.Value{e.Out, e.In} {
		if !g.vertices.contains(endpoint) {
			return ErrUnknownEndpoint{Edge: id, Vertex: endpoint}
		}
	}

	if !g.edges.put(id, e) {
		return ErrDuplicateID{Kind: KindEdge, ID: id}
	}

	g.logger.Debug("Added edge %s (%s)-[%s]->(%s)", id, e.Out, e.Label, e.In)
	return nil
}

// Vertex returns the vertex registered under id
func (g *Graph) Vertex(id model.Value) (*model.Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices.get(id)
}

// Edge returns the edge registered under id
func (g *Graph) Edge(id model.Value) (*model.Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges.get(id)
}

// RemoveVertex removes the vertex and every edge incident to it
func (g *Graph) RemoveVertex(id model.Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices.remove(id); !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	removed := 0
	for _, entry := range g.edges.entries() {
		if entry.item.Connects(id) {
			g.edges.remove(entry.id)
			removed++
		}
	}

	g.logger.Debug("Removed vertex %s and %d incident edges", id, removed)
	return nil
}

// RemoveEdge removes the edge registered under id
func (g *Graph) RemoveEdge(id model.Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges.remove(id); !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	g.logger.Debug("Removed edge %s", id)
	return nil
}

// Vertices returns all vertices in insertion order
func (g *Graph) Vertices() []*model.Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices.items()
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []*model.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges.items()
}

// VertexCount returns the number of vertices
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices.size
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges.size
}

// OutEdges returns the edges whose tail is the given vertex
func (g *Graph) OutEdges(id model.Value) ([]*model.Edge, error) {
	return g.incident(id, func(e *model.Edge) bool { return e.Out.Equal(id) })
}

// InEdges returns the edges whose head is the given vertex
func (g *Graph) InEdges(id model.Value) ([]*model.Edge, error) {
	return g.incident(id, func(e *model.Edge) bool { return e.In.Equal(id) })
}

func (g *Graph) incident(id model.Value, match func(*model.Edge) bool) ([]*model.Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertices.contains(id) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	var result []*model.Edge
	for _, e := range g.edges.items() {
		if match(e) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Verify reports every element whose identifier was changed or removed after
// it was added to the graph
func (g *Graph) Verify() []error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	for _, entry := range g.vertices.entries() {
		if err := checkRegistered(KindVertex, entry.id, entry.item); err != nil {
			errs = append(errs, err)
		}
	}
	for _, entry := range g.edges.entries() {
		if err := checkRegistered(KindEdge, entry.id, entry.item); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		g.logger.Warn("Graph verification found %d problems", len(errs))
	}
	return errs
}

// identifier returns the element's identifier, treating an invalid Value the
// same as an unset one
func identifier(element model.PropertyReader) (model.Value, bool) {
	id, ok := element.GetId()
	if !ok || !id.IsValid() {
		return model.Value{}, false
	}
	return id, true
}

func checkRegistered(kind Kind, registered model.Value, element model.PropertyReader) error {
	current, ok := element.GetId()
	if ok && current.Equal(registered) {
		return nil
	}
	return ErrIdentifierChanged{Kind: kind, Registered: registered, Current: current}
}
