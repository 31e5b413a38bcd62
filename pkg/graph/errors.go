package graph

import (
	"errors"
	"fmt"

	"git.canoozie.net/riddling/propgraph/pkg/model"
)

var (
	// ErrVertexNotFound indicates that no vertex has the given identifier
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrEdgeNotFound indicates that no edge has the given identifier
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrNilElement is returned when adding a nil vertex or edge
	ErrNilElement = errors.New("nil element")
)

// Kind names one of the two identifier domains of a graph
type Kind string

const (
	KindVertex Kind = "vertex"
	KindEdge   Kind = "edge"
)

// ErrMissingIdentifier is returned when an element without an identifier is
// added to, or validated against, a graph
type ErrMissingIdentifier struct {
	Kind Kind
}

func (e ErrMissingIdentifier) Error() string {
	return fmt.Sprintf("%s has no identifier", e.Kind)
}

// ErrDuplicateID is returned when an identifier is already taken within its domain
type ErrDuplicateID struct {
	Kind Kind
	ID   model.Value
}

func (e ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate %s identifier: %s", e.Kind, e.ID)
}

// ErrUnknownEndpoint is returned when an edge references a vertex that is not in the graph
type ErrUnknownEndpoint struct {
	Edge   model.Value
	Vertex model.Value
}

func (e ErrUnknownEndpoint) Error() string {
	return fmt.Sprintf("edge %s references unknown vertex %s", e.Edge, e.Vertex)
}

// ErrIdentifierChanged is reported when an element's identifier no longer
// matches the one it was registered under
type ErrIdentifierChanged struct {
	Kind       Kind
	Registered model.Value
	Current    model.Value
}

func (e ErrIdentifierChanged) Error() string {
	return fmt.Sprintf("%s registered as %s now has identifier %s", e.Kind, e.Registered, e.Current)
}
