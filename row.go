package dataset

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Row is a materialized instance: field names paired with the values at one
// position, in field order. A Row is a copy; changing it does not change the
// dataset until it is written back with Set.
type Row struct {
	names  []string
	values []any
}

// Len returns the number of fields.
func (r Row) Len() int { return len(r.names) }

// Names returns the field names in order.
func (r Row) Names() []string { return append([]string(nil), r.names...) }

// Values returns the values in field order.
func (r Row) Values() []any { return append([]any(nil), r.values...) }

// Get returns the value of the named field.
func (r Row) Get(name string) (any, bool) {
	for i, n := range r.names {
		if n == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// Map returns the row as a map, suitable for passing back to Set.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.names))
	for i, n := range r.names {
		m[n] = r.values[i]
	}
	return m
}

// All yields (name, value) pairs in field order.
func (r Row) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, n := range r.names {
			if !yield(n, r.values[i]) {
				return
			}
		}
	}
}

func (r Row) String() string {
	b := &strings.Builder{}
	b.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %v", n, r.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the row as an object whose keys keep field order.
func (r Row) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(r.names, func(i int) any { return r.values[i] })
}

// MarshalYAML encodes the row as a mapping whose keys keep field order.
func (r Row) MarshalYAML() (any, error) {
	return orderedYAMLNode(r.names, func(i int) any { return r.values[i] })
}

// MarshalJSON encodes columns as an object of arrays, keeping column order.
func (cs Columns) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(cs.Names(), func(i int) any { return cs[i].Values })
}

// MarshalYAML encodes columns as a mapping of sequences, keeping column order.
func (cs Columns) MarshalYAML() (any, error) {
	return orderedYAMLNode(cs.Names(), func(i int) any { return cs[i].Values })
}

func marshalOrderedJSON(names []string, value func(i int) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := j.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := j.Marshal(value(i))
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func orderedYAMLNode(names []string, value func(i int) any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, name := range names {
		var v yaml.Node
		if err := v.Encode(value(i)); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&v,
		)
	}
	return n, nil
}
