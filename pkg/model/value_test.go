package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = String("x").AsInt()
	assert.False(t, ok)

	i, ok := Int(-3).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(-3), i)

	f, ok := Float(1.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	list, ok := List(Int(1), Int(2)).AsList()
	assert.True(t, ok)
	assert.Len(t, list, 2)

	_, ok = Int(1).AsList()
	assert.False(t, ok)
}

func TestValueBytesAreCopied(t *testing.T) {
	raw := []byte("abc")
	v := Bytes(raw)
	raw[0] = 'z'

	got, ok := v.AsBytes()
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'z'
	again, _ := v.AsBytes()
	assert.Equal(t, []byte("abc"), again)
}

func TestValueListIsCopied(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	v := List(items...)
	items[0] = Int(100)

	got, _ := v.AsList()
	assert.Equal(t, Int(1), got[0])
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{name: "same string", a: String("a"), b: String("a"), equal: true},
		{name: "different string", a: String("a"), b: String("b")},
		{name: "int vs float", a: Int(1), b: Float(1)},
		{name: "int vs string", a: Int(42), b: String("42")},
		{name: "zero floats", a: Float(0), b: Float(math.Copysign(0, -1)), equal: true},
		{name: "bytes", a: Bytes([]byte{1, 2}), b: Bytes([]byte{1, 2}), equal: true},
		{name: "nested list", a: List(Int(1), List(String("x"))), b: List(Int(1), List(String("x"))), equal: true},
		{name: "list length", a: List(Int(1)), b: List(Int(1), Int(1))},
		{name: "invalid", a: Value{}, b: Value{}, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
			if tt.equal {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestValueHashDistinguishesKinds(t *testing.T) {
	assert.NotEqual(t, Int(1).Hash(), Bool(true).Hash())
	assert.NotEqual(t, String("1").Hash(), Int(1).Hash())
	assert.NotEqual(t, List(String("ab")).Hash(), List(String("a"), String("b")).Hash())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{name: "string", in: "alice", want: String("alice")},
		{name: "int", in: 42, want: Int(42)},
		{name: "int32", in: int32(-7), want: Int(-7)},
		{name: "uint16", in: uint16(9), want: Int(9)},
		{name: "uint64", in: uint64(10), want: Int(10)},
		{name: "float32", in: float32(0.5), want: Float(0.5)},
		{name: "bool", in: false, want: Bool(false)},
		{name: "bytes", in: []byte("hi"), want: Bytes([]byte("hi"))},
		{name: "strings", in: []string{"a", "b"}, want: List(String("a"), String("b"))},
		{name: "mixed", in: []any{1, "x", true}, want: List(Int(1), String("x"), Bool(true))},
		{name: "value", in: Int(3), want: Int(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestValueOfUnsupported(t *testing.T) {
	_, err := ValueOf(map[string]int{"a": 1})
	var unsupported ErrUnsupportedValue
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "map[string]int", unsupported.Type)

	_, err = ValueOf([]any{1, struct{}{}})
	assert.ErrorAs(t, err, &unsupported)

	_, err = ValueOf(uint64(math.MaxUint64))
	assert.ErrorAs(t, err, &unsupported)

	_, err = ValueOf(nil)
	assert.ErrorAs(t, err, &unsupported)

	assert.Panics(t, func() { MustValueOf(struct{}{}) })
}

func TestValueInterface(t *testing.T) {
	assert.Equal(t, "a", String("a").Interface())
	assert.Equal(t, int64(1), Int(1).Interface())
	assert.Equal(t, []any{int64(1), "b"}, List(Int(1), String("b")).Interface())
	assert.Nil(t, Value{}.Interface())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, `"42"`, String("42").String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "0.25", Float(0.25).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "0x0aff", Bytes([]byte{0x0a, 0xff}).String())
	assert.Equal(t, `[1, "x"]`, List(Int(1), String("x")).String())
	assert.Equal(t, "<invalid>", Value{}.String())
	assert.Equal(t, "list", KindList.String())
}

func TestValueNaNIsSelfEqual(t *testing.T) {
	nan := Float(math.NaN())
	other := Float(math.Float64frombits(0x7ff8000000000001))
	require.True(t, math.IsNaN(math.Float64frombits(0x7ff8000000000001)))

	assert.True(t, nan.Equal(nan))
	assert.True(t, nan.Equal(other))
	assert.Equal(t, nan.Hash(), other.Hash())
	assert.True(t, List(nan).Equal(List(other)))

	assert.False(t, nan.Equal(Float(0)))
	assert.False(t, nan.Equal(Float(math.Inf(1))))
}
