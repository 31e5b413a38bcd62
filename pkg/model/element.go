package model

import (
	"sort"
)

// IDKey is the reserved property key holding an element's identifier
const IDKey = "ID"

// PropertyReader is the read side of the element contract. Graph containers
// and exporters depend on this rather than on a concrete element type.
type PropertyReader interface {
	GetProperty(key string) (Value, bool)
	GetPropertyKeys() KeySet
	GetId() (Value, bool)
}

// KeySet is a snapshot of property keys. It is detached from the element it
// came from, so modifying it has no effect on that element.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given keys
func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Contains reports whether key is in the set
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in lexical order
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Element is the base of vertices and edges: an identifier plus a set of
// key/value properties. The identifier lives under the reserved key "ID".
//
// By default the identifier is an ordinary property and can be overwritten or
// removed like any other. Elements created with NewElementWithID have their
// identifier locked instead.
//
// The zero Element is an empty element without an identifier.
//
// Element is not safe for concurrent mutation; callers sharing an element
// across goroutines must synchronize access themselves.
type Element struct {
	properties map[string]Value
	idLocked   bool
}

// NewElement creates an element with no properties and no identifier
func NewElement() *Element {
	return &Element{
		properties: make(map[string]Value),
	}
}

// NewElementWithID creates an element whose identifier is fixed for its whole
// lifetime. Writes to IDKey on such an element fail with ErrIdentifierLocked.
// An invalid id yields a plain, unlocked element.
func NewElementWithID(id Value) *Element {
	e := NewElement()
	if !id.IsValid() {
		return e
	}
	e.properties[IDKey] = id
	e.idLocked = true
	return e
}

// GetProperty returns the value last written under key.
// The boolean is false if the key was never set (or was removed).
func (e *Element) GetProperty(key string) (Value, bool) {
	value, exists := e.properties[key]
	return value, exists
}

// HasProperty reports whether key currently holds a value
func (e *Element) HasProperty(key string) bool {
	_, exists := e.properties[key]
	return exists
}

// GetPropertyKeys returns a snapshot of the keys currently holding a value
func (e *Element) GetPropertyKeys() KeySet {
	keys := make(KeySet, len(e.properties))
	for k := range e.properties {
		keys[k] = struct{}{}
	}
	return keys
}

// SetProperty stores value under key, replacing any previous value.
// Storing the invalid zero Value removes the key instead.
// The only failure is a write to IDKey on an identity-locked element.
func (e *Element) SetProperty(key string, value Value) error {
	if key == IDKey && e.idLocked {
		return ErrIdentifierLocked
	}
	if !value.IsValid() {
		delete(e.properties, key)
		return nil
	}
	if e.properties == nil {
		e.properties = make(map[string]Value)
	}
	e.properties[key] = value
	return nil
}

// RemoveProperty deletes key. Removing a missing key is a no-op.
func (e *Element) RemoveProperty(key string) error {
	if key == IDKey && e.idLocked {
		return ErrIdentifierLocked
	}
	delete(e.properties, key)
	return nil
}

// GetId returns the element identifier, which is GetProperty(IDKey)
func (e *Element) GetId() (Value, bool) {
	return e.GetProperty(IDKey)
}

// IDLocked reports whether the identifier was fixed at construction
func (e *Element) IDLocked() bool {
	return e.idLocked
}

// Len returns the number of properties, the identifier included
func (e *Element) Len() int {
	return len(e.properties)
}

// Properties returns a copy of all key/value pairs
func (e *Element) Properties() map[string]Value {
	props := make(map[string]Value, len(e.properties))
	for k, v := range e.properties {
		props[k] = v
	}
	return props
}

// PropertyList returns all properties ordered by key
func (e *Element) PropertyList() []Property {
	list := make([]Property, 0, len(e.properties))
	for _, key := range e.GetPropertyKeys().Sorted() {
		list = append(list, Property{Key: key, Value: e.properties[key]})
	}
	return list
}
