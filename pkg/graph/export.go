package graph

import (
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// Export returns the full attribute set of an element as native Go values,
// identifier included. The result does not alias the element.
func Export(element model.PropertyReader) map[string]any {
	keys := element.GetPropertyKeys()
	out := make(map[string]any, keys.Len())
	for key := range keys {
		if value, ok := element.GetProperty(key); ok {
			out[key] = value.Interface()
		}
	}
	return out
}
