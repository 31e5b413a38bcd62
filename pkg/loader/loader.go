// Package loader reads vertices and edges from a YAML document.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.canoozie.net/riddling/propgraph/pkg/graph"
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// Document is the on-disk layout of a graph
type Document struct {
	Vertices []VertexDef `yaml:"vertices"`
	Edges    []EdgeDef   `yaml:"edges"`
}

// VertexDef describes one vertex. ID may be omitted, in which case the
// vertex has no identifier and will be rejected by a Graph.
type VertexDef struct {
	ID         any            `yaml:"id"`
	Label      string         `yaml:"label"`
	Properties map[string]any `yaml:"properties"`
}

// EdgeDef describes one edge
type EdgeDef struct {
	ID         any            `yaml:"id"`
	Label      string         `yaml:"label"`
	Out        any            `yaml:"out"`
	In         any            `yaml:"in"`
	Properties map[string]any `yaml:"properties"`
}

// Decode parses a YAML document
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse graph document: %w", err)
	}
	return &doc, nil
}

// DecodeFile parses the YAML document at path
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Elements converts the document into vertices and edges without checking
// identifier uniqueness. Properties named "ID" are treated like any other
// property and therefore override the id field.
func (d *Document) Elements() ([]*model.Vertex, []*model.Edge, error) {
	vertices := make([]*model.Vertex, 0, len(d.Vertices))
	for i, def := range d.Vertices {
		v := model.NewVertex(def.Label)
		if err := fill(v.Element, def.ID, def.Properties); err != nil {
			return nil, nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices = append(vertices, v)
	}

	edges := make([]*model.Edge, 0, len(d.Edges))
	for i, def := range d.Edges {
		out, err := optionalValue(def.Out)
		if err != nil {
			return nil, nil, fmt.Errorf("edge %d out: %w", i, err)
		}
		in, err := optionalValue(def.In)
		if err != nil {
			return nil, nil, fmt.Errorf("edge %d in: %w", i, err)
		}
		e := model.NewEdge(out, in, def.Label)
		if err := fill(e.Element, def.ID, def.Properties); err != nil {
			return nil, nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return vertices, edges, nil
}

// Build adds every vertex and then every edge of the document to g,
// stopping at the first error
func (d *Document) Build(g *graph.Graph) error {
	vertices, edges, err := d.Elements()
	if err != nil {
		return err
	}
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return fmt.Errorf("failed to add vertex: %w", err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return fmt.Errorf("failed to add edge: %w", err)
		}
	}
	return nil
}

func fill(e *model.Element, id any, props map[string]any) error {
	if id != nil {
		value, err := model.ValueOf(id)
		if err != nil {
			return fmt.Errorf("id: %w", err)
		}
		if err := e.SetProperty(model.IDKey, value); err != nil {
			return err
		}
	}
	for key, raw := range props {
		value, err := model.ValueOf(raw)
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		if err := e.SetProperty(key, value); err != nil {
			return err
		}
	}
	return nil
}

func optionalValue(raw any) (model.Value, error) {
	if raw == nil {
		return model.Value{}, nil
	}
	return model.ValueOf(raw)
}
