package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind identifies which variant a Value holds
type Kind uint8

const (
	KindInvalid Kind = iota // Zero Value, used for "no value"
	KindString
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindList
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a property payload. It is a closed union of scalar kinds plus a
// list of values. The zero Value is invalid and never stored by an Element
// lookup that succeeds.
//
// Values are immutable: constructors and accessors copy byte slices and lists.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	flag bool
	raw  []byte
	list []Value
}

// String creates a string Value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int creates an integer Value
func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

// Float creates a floating point Value
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Bool creates a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Bytes creates a byte sequence Value. The slice is copied.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, raw: bytes.Clone(b)}
}

// List creates a Value holding the given values in order
func List(values ...Value) Value {
	list := make([]Value, len(values))
	copy(list, values)
	return Value{kind: KindList, list: list}
}

// ValueOf converts a native Go value into a Value.
// Supported inputs are strings, signed and unsigned integers, floats, bools,
// byte slices, slices of any of those, and Value itself.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []byte:
		return Bytes(x), nil
	case []string:
		list := make([]Value, len(x))
		for i, s := range x {
			list[i] = String(s)
		}
		return Value{kind: KindList, list: list}, nil
	case []any:
		list := make([]Value, len(x))
		for i, item := range x {
			converted, err := ValueOf(item)
			if err != nil {
				return Value{}, err
			}
			list[i] = converted
		}
		return Value{kind: KindList, list: list}, nil
	default:
		return Value{}, ErrUnsupportedValue{Type: fmt.Sprintf("%T", v)}
	}
}

// MustValueOf is like ValueOf but panics on unsupported input
func MustValueOf(v any) Value {
	value, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return value
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, ErrUnsupportedValue{Type: "uint64 overflowing int64"}
	}
	return Int(int64(u)), nil
}

// Kind returns the variant held by the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether the value holds anything
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// AsString returns the string payload
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer payload
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the float payload
func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsBytes returns a copy of the byte payload
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return bytes.Clone(v.raw), true
}

// AsList returns a copy of the list payload
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	list := make([]Value, len(v.list))
	copy(list, v.list)
	return list, true
}

// Interface returns the payload as a native Go value.
// Lists become []any; the invalid value becomes nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindBytes:
		return bytes.Clone(v.raw)
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and payload.
// Values of different kinds are never equal, so Int(1) != Float(1).
// All NaN floats are equal to each other so that they can act as identifiers.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		if math.IsNaN(v.flt) && math.IsNaN(other.flt) {
			return true
		}
		return v.flt == other.flt
	case KindBool:
		return v.flag == other.flag
	case KindBytes:
		return bytes.Equal(v.raw, other.raw)
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Hash returns a 64-bit xxhash of the value. Equal values hash equally.
func (v Value) Hash() uint64 {
	d := xxhash.New()
	v.writeHash(d)
	return d.Sum64()
}

func (v Value) writeHash(d *xxhash.Digest) {
	var scratch [8]byte
	d.Write([]byte{byte(v.kind)})

	switch v.kind {
	case KindString:
		d.WriteString(v.str)
	case KindInt:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.num))
		d.Write(scratch[:])
	case KindFloat:
		bits := math.Float64bits(v.flt)
		switch {
		case v.flt == 0:
			bits = 0 // -0 == +0
		case math.IsNaN(v.flt):
			bits = math.Float64bits(math.NaN())
		}
		binary.LittleEndian.PutUint64(scratch[:], bits)
		d.Write(scratch[:])
	case KindBool:
		if v.flag {
			d.Write([]byte{1})
		} else {
			d.Write([]byte{0})
		}
	case KindBytes:
		d.Write(v.raw)
	case KindList:
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(v.list)))
		d.Write(scratch[:])
		for _, item := range v.list {
			item.writeHash(d)
		}
	}
}

// String renders the value for humans. Strings are quoted so that
// String("42") and Int(42) print differently.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindBytes:
		return fmt.Sprintf("0x%x", v.raw)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}
