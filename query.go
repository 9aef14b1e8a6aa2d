package rnav

import (
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Query holds the key/value pairs of a navigation target's query string.
// Keys may repeat: "tag=a&tag=b" keeps both values in order.
// The zero value is an empty query.
type Query struct {
	values url.Values
}

// ParseQuery parses a raw query string ("a=1&b=2", without the "?").
// Malformed pairs are skipped; everything that parses is kept.
func ParseQuery(raw string) Query {
	if raw == "" {
		return Query{}
	}
	values, _ := url.ParseQuery(raw)
	return Query{values: values}
}

// Get returns the first value for key.
func (q Query) Get(key string) string {
	return q.values.Get(key)
}

// All returns every value for key, in order.
func (q Query) All(key string) []string {
	return slices.Clone(q.values[key])
}

func (q Query) Has(key string) bool {
	return q.values.Has(key)
}

// Int returns the first value for key converted to an int.
func (q Query) Int(key string) (int, bool) {
	if !q.Has(key) {
		return 0, false
	}
	n, err := cast.ToIntE(q.Get(key))
	return n, err == nil
}

// Bool returns the first value for key converted to a bool.
func (q Query) Bool(key string) (bool, bool) {
	if !q.Has(key) {
		return false, false
	}
	b, err := cast.ToBoolE(q.Get(key))
	return b, err == nil
}

// Keys returns the keys, sorted.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for k := range q.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of distinct keys.
func (q Query) Len() int {
	return len(q.values)
}

// With returns a copy of q with key set to values, replacing earlier values.
func (q Query) With(key string, values ...string) Query {
	out := make(url.Values, len(q.values)+1)
	for k, v := range q.values {
		out[k] = slices.Clone(v)
	}
	out[key] = slices.Clone(values)
	return Query{values: out}
}

// Encode renders the query sorted by key, without the leading "?".
func (q Query) Encode() string {
	return q.values.Encode()
}

func (q Query) String() string {
	if q.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('?')
	sb.WriteString(q.Encode())
	return sb.String()
}
