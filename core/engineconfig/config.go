package engineconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Delim separates path segments in Lookup and in the koanf instance
// returned by Koanf.
const Delim = "."

// Configuration is an immutable configuration payload. It satisfies
// koanf.Provider so a loader can consume it alongside other sources.
type Configuration struct {
	root *Object
}

var _ koanf.Provider = (*Configuration)(nil)

// New returns a Configuration holding a deep copy of root.
func New(root *Object) *Configuration {
	return &Configuration{root: root.Clone()}
}

// Keys returns the top level keys in order.
func (c *Configuration) Keys() []string {
	return c.root.Keys()
}

// Lookup resolves a delimited path. Nested objects are returned as
// map[string]any copies.
func (c *Configuration) Lookup(path string) (any, bool) {
	cur := c.root
	segs := strings.Split(path, Delim)
	for i, seg := range segs {
		v, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}
		child, isObj := v.(*Object)
		if i == len(segs)-1 {
			if isObj {
				return child.Map(), true
			}
			return v, true
		}
		if !isObj {
			return nil, false
		}
		cur = child
	}
	return nil, false
}

// String returns the string stored at path.
func (c *Configuration) String(path string) (string, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Read implements koanf.Provider.
func (c *Configuration) Read() (map[string]any, error) {
	return c.root.Map(), nil
}

// ReadBytes implements koanf.Provider. The payload is JSON.
func (c *Configuration) ReadBytes() ([]byte, error) {
	return c.JSON()
}

// JSON returns the compact JSON encoding. Keys keep their insertion order.
// JSON has no representation for invalid UTF-8, so such bytes in string
// values come back as U+FFFD. Lookup and Read return them unchanged.
func (c *Configuration) JSON() ([]byte, error) {
	return json.Marshal(c.root)
}

// JSONIndent returns the JSON encoding indented with two spaces.
func (c *Configuration) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(c.root, "", "  ")
}

// YAML returns the YAML encoding. Keys keep their insertion order.
func (c *Configuration) YAML() ([]byte, error) {
	return yaml.Marshal(c.root)
}

// Koanf returns a fresh koanf instance loaded from the configuration.
func (c *Configuration) Koanf() (*koanf.Koanf, error) {
	k := koanf.New(Delim)
	if err := k.Load(c, nil); err != nil {
		return nil, fmt.Errorf("load engine configuration: %w", err)
	}
	return k, nil
}

// Leaf is a scalar value and its delimited path.
type Leaf struct {
	Path  string
	Value any
}

// Leaves returns every scalar value depth first, in key order. Empty
// objects contribute nothing.
func (c *Configuration) Leaves() []Leaf {
	var out []Leaf
	var walk func(prefix string, o *Object)
	walk = func(prefix string, o *Object) {
		for _, k := range o.Keys() {
			path := k
			if prefix != "" {
				path = prefix + Delim + k
			}
			v, _ := o.Get(k)
			if child, ok := v.(*Object); ok {
				walk(path, child)
				continue
			}
			out = append(out, Leaf{Path: path, Value: v})
		}
	}
	walk("", c.root)
	return out
}
