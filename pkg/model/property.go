package model

// Property is a single key/value pair detached from its element
type Property struct {
	Key   string // The property key
	Value Value  // The property value
}

// NewProperty creates a new Property with the given key and value
func NewProperty(key string, value Value) Property {
	return Property{
		Key:   key,
		Value: value,
	}
}

// IsID reports whether the property is the reserved identifier
func (p Property) IsID() bool {
	return p.Key == IDKey
}

// String renders the property as key=value
func (p Property) String() string {
	return p.Key + "=" + p.Value.String()
}
