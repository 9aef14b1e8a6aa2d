package rtr

import (
	"strings"

	"github.com/spf13/cast"
)

// Parameter represents a value captured by a parameter segment.
//
// Example:
//
//	Route: /workspace/:wid/projects/:pid
//	Path:  /workspace/abc/projects/123
//	Result: Params{{Key: "wid", Value: "abc"}, {Key: "pid", Value: "123"}}
type Parameter struct {
	Key   string
	Value string
}

// Params is an ordered set of parameter bindings.
//
// Params attached to a MatchEntry are shared by every reader of the stack, so
// they are never modified in place: With and Merge return new slices.
type Params []Parameter

// Get returns the value bound to key.
func (p Params) Get(key string) (string, bool) {
	for i := range p {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// Value returns the value bound to key or "" when absent.
func (p Params) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// Has reports whether key is bound.
func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Int returns the value of key converted to an int.
func (p Params) Int(key string) (int, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	return n, err == nil
}

// Float returns the value of key converted to a float64.
func (p Params) Float(key string) (float64, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}

// Bool returns the value of key converted to a bool.
func (p Params) Bool(key string) (bool, bool) {
	v, ok := p.Get(key)
	if !ok {
		return false, false
	}
	b, err := cast.ToBoolE(v)
	return b, err == nil
}

// Keys returns the bound keys in binding order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i := range p {
		keys[i] = p[i].Key
	}
	return keys
}

// Map copies the bindings into a map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// Clone returns a copy that shares nothing with p.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// With returns a copy of p with key bound to value.
// An existing binding of key is overwritten in place, keeping its position.
func (p Params) With(key, value string) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)

	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}

	return append(out, Parameter{Key: key, Value: value})
}

// Equal reports whether both sets hold the same bindings in the same order.
func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the bindings as {k=v, k2=v2}.
func (p Params) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Key)
		sb.WriteByte('=')
		sb.WriteString(param.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Merge combines inherited parent bindings with a child's own bindings.
//
// Precedence is intentional: on a key collision the child value wins, because
// the deeper route is the more specific one. Parent order is preserved,
// overridden keys keep their parent position and new child keys are appended.
// Neither input is modified.
func Merge(parent, child Params) Params {
	if len(child) == 0 {
		return parent.Clone()
	}

	merged := make(Params, len(parent), len(parent)+len(child))
	copy(merged, parent)

outer:
	for _, c := range child {
		for i := range merged {
			if merged[i].Key == c.Key {
				merged[i].Value = c.Value
				continue outer
			}
		}
		merged = append(merged, c)
	}

	return merged
}
