package model

import (
	"errors"
	"fmt"
)

// ErrIdentifierLocked is returned when writing or removing the identifier of
// an element whose identifier was fixed at construction
var ErrIdentifierLocked = errors.New("element identifier is locked")

// ErrUnsupportedValue is returned when a native value has no Value equivalent
type ErrUnsupportedValue struct {
	Type string
}

func (e ErrUnsupportedValue) Error() string {
	return fmt.Sprintf("unsupported property value type: %s", e.Type)
}

// ErrInvalidLogLevel is returned when a log level name is not recognised
type ErrInvalidLogLevel struct {
	Level string
}

func (e ErrInvalidLogLevel) Error() string {
	return fmt.Sprintf("invalid log level: %q", e.Level)
}
