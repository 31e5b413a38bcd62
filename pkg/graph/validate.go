package graph

import (
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// Validate checks a batch of vertices and edges without building a graph.
// Unlike AddVertex/AddEdge it does not stop at the first problem; every
// missing identifier, duplicate and dangling endpoint is reported.
func Validate(vertices []*model.Vertex, edges []*model.Edge) []error {
	var errs []error

	seenVertices := newIDIndex[struct{}]()
	for _, v := range vertices {
		if v == nil || v.Element == nil {
			errs = append(errs, ErrNilElement)
			continue
		}
		id, ok := identifier(v)
		if !ok {
			errs = append(errs, ErrMissingIdentifier{Kind: KindVertex})
			continue
		}
		if !seenVertices.put(id, struct{}{}) {
			errs = append(errs, ErrDuplicateID{Kind: KindVertex, ID: id})
		}
	}

	seenEdges := newIDIndex[struct{}]()
	for _, e := range edges {
		if e == nil || e.Element == nil {
			errs = append(errs, ErrNilElement)
			continue
		}
		id, ok := identifier(e)
		if !ok {
			errs = append(errs, ErrMissingIdentifier{Kind: KindEdge})
			continue
		}
		if !seenEdges.put(id, struct{}{}) {
			errs = append(errs, ErrDuplicateID{Kind: KindEdge, ID: id})
		}
		for _, endpoint := range []model.Value{e.Out, e.In} {
			if !seenVertices.contains(endpoint) {
				errs = append(errs, ErrUnknownEndpoint{Edge: id, Vertex: endpoint})
			}
		}
	}

	return errs
}
