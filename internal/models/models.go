package models

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is a generic document value.
// It is one of: nil, bool, string, Number, []Value or *Object.
type Value = any

// Number holds the decimal text of a numeric scalar.
type Number string

// IsInteger reports whether n is written without a fraction or exponent.
func (n Number) IsInteger() bool {
	return !strings.ContainsAny(string(n), ".eEnN")
}

// FloatNumber canonicalises f so that it always reads back as a float:
// the text carries a decimal point or an exponent, and non-finite values
// use the YAML spellings.
func FloatNumber(f float64) Number {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".") {
		return Number(s)
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return Number(s[:i] + ".0" + s[i:])
	}
	return Number(s + ".0")
}

// IntNumber returns the decimal text of i.
func IntNumber(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// UintNumber returns the decimal text of u.
func UintNumber(u uint64) Number {
	return Number(strconv.FormatUint(u, 10))
}

// Object is a mapping from string keys to values that remembers insertion order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// SortedKeys returns the keys in code point order.
func (o *Object) SortedKeys() []string {
	keys := o.Keys()
	sort.Strings(keys)
	return keys
}

// Document is the parsed form of one input file.
type Document struct {
	Root Value
}
