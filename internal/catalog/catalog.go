// Package catalog manages the named collection of package registries known to regsw.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Entry is a single named registry in the catalog.
type Entry struct {
	// Home is an informational URL for the mirror.
	Home string `json:"home"`
	// Registry is the URL written into the package manager's configuration.
	Registry string `json:"registry"`
	// Ping is the URL used for latency probing.
	Ping string `json:"ping"`
	// Extra holds any other fields of the entry, in document order.
	Extra []Field `json:"-"`
}

// Field is an entry field regsw does not interpret. It is written back unchanged.
type Field struct {
	Key   string
	Value json.RawMessage
}

// MarshalJSON encodes the known fields followed by Extra.
func (e Entry) MarshalJSON() ([]byte, error) {
	fields := append([]Field{
		{Key: "home", Value: quote(e.Home)},
		{Key: "registry", Value: quote(e.Registry)},
		{Key: "ping", Value: quote(e.Ping)},
	}, e.Extra...)

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.Write(quote(f.Key))
		buf.WriteByte(':')
		buf.Write(f.Value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Catalog maps registry names to entries, preserving insertion order.
type Catalog struct {
	names   []string
	entries map[string]Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns the entry names in insertion order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Get returns the entry stored under name.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]

	return e, ok
}

// Has reports whether name is a key in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]

	return ok
}

// Set stores e under name. An existing entry keeps its position.
func (c *Catalog) Set(name string, e Entry) {
	if _, ok := c.entries[name]; !ok {
		c.names = append(c.names, name)
	}

	c.entries[name] = e
}

// Delete removes name from the catalog and reports whether it was present.
func (c *Catalog) Delete(name string) bool {
	if _, ok := c.entries[name]; !ok {
		return false
	}

	delete(c.entries, name)
	c.names = slices.DeleteFunc(c.names, func(n string) bool { return n == name })

	return true
}

// Rename moves the entry stored under oldName to newName.
// The renamed entry is appended at the end, matching add-then-delete order.
func (c *Catalog) Rename(oldName, newName string) error {
	e, ok := c.entries[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}

	if c.Has(newName) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}

	c.Set(newName, e)
	c.Delete(oldName)

	return nil
}

// FindByRegistry returns the name of the first entry whose Registry equals url.
func (c *Catalog) FindByRegistry(url string) (string, bool) {
	for _, name := range c.names {
		if c.entries[name].Registry == url {
			return name, true
		}
	}

	return "", false
}

// MarshalJSON encodes the catalog as a JSON object in insertion order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := encode(name)
		if err != nil {
			return nil, fmt.Errorf("encoding name %q: %w", name, err)
		}

		val, err := encode(c.entries[name])
		if err != nil {
			return nil, fmt.Errorf("encoding entry %q: %w", name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encode marshals v without HTML escaping.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func quote(s string) json.RawMessage {
	data, err := encode(s)
	if err != nil {
		// Strings always encode.
		panic(err)
	}

	return data
}
