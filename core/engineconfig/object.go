package engineconfig

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a string keyed map that remembers insertion order. Values are
// scalars or nested *Object. Setting an existing key replaces the value but
// keeps the key at its original position. The zero value is an empty object
// ready to use.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, any]()}
}

// Set stores v under key.
func (o *Object) Set(key string, v any) *Object {
	if o.m == nil {
		o.m = orderedmap.New[string, any]()
	}
	o.m.Set(key, v)
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil || o.m == nil {
		return nil
	}
	out := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Clone returns a deep copy. Nested objects are copied, scalars are shared.
func (o *Object) Clone() *Object {
	out := NewObject()
	if o == nil || o.m == nil {
		return out
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		v := pair.Value
		if child, ok := v.(*Object); ok {
			v = child.Clone()
		}
		out.Set(pair.Key, v)
	}
	return out
}

// Map converts the object into plain nested map[string]any values.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, o.Len())
	if o == nil || o.m == nil {
		return out
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		if child, ok := pair.Value.(*Object); ok {
			out[pair.Key] = child.Map()
			continue
		}
		out[pair.Key] = pair.Value
	}
	return out
}

// MarshalJSON encodes the object with keys in insertion order. Strings
// holding invalid UTF-8 are written with U+FFFD in place of the bad bytes.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil || o.m == nil {
		return []byte("{}"), nil
	}
	return o.m.MarshalJSON()
}

// MarshalYAML encodes the object as a mapping with keys in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	if o == nil || o.m == nil {
		return NewObject().m.MarshalYAML()
	}
	return o.m.MarshalYAML()
}
