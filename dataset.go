package dataset

import (
	"fmt"
	"strings"
)

// Column is one named field: the i-th value belongs to the i-th instance.
type Column struct {
	Name   string
	Values []any
}

// Columns is an ordered mapping from field name to values.
type Columns []Column

// Get returns the values of the named column.
func (cs Columns) Get(name string) ([]any, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Names returns the column names in order.
func (cs Columns) Names() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

// Dataset holds parallel columns of equal length. The value at position i in
// every column describes instance i. A nil value marks a missing one and is
// written as MissingToken in CONLL files; the empty string is an ordinary
// value.
//
// A Dataset is not safe for concurrent use.
type Dataset struct {
	names []string
	cols  map[string][]any
}

// New builds a Dataset from the given columns, keeping their order. The value
// slices are stored as-is; use Copy to detach them from the caller.
func New(cols ...Column) (*Dataset, error) {
	d := &Dataset{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string][]any, len(cols)),
	}
	for _, c := range cols {
		if _, dup := d.cols[c.Name]; dup {
			return nil, &Error{
				Code:    CodeDuplicateField,
				Field:   c.Name,
				Message: fmt.Sprintf("field %s given more than once", c.Name),
			}
		}
		if len(d.names) > 0 {
			first := d.names[0]
			if n := len(d.cols[first]); len(c.Values) != n {
				return nil, lengthMismatch(first, n, c.Name, len(c.Values))
			}
		}
		d.names = append(d.names, c.Name)
		d.cols[c.Name] = c.Values
	}
	return d, nil
}

// MustNew is like New but panics on error.
func MustNew(cols ...Column) *Dataset {
	d, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of instances.
func (d *Dataset) Len() int {
	if len(d.names) == 0 {
		return 0
	}
	return len(d.cols[d.names[0]])
}

// Fields returns the field names in order.
func (d *Dataset) Fields() []string {
	return append([]string(nil), d.names...)
}

// Has reports whether the dataset has a field called name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]any, bool) {
	c, ok := d.cols[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), c...), true
}

// String describes the dataset by its field names, e.g. "Dataset(word, tag)".
func (d *Dataset) String() string {
	return "Dataset(" + strings.Join(d.names, ", ") + ")"
}

// Copy returns a dataset with the same fields and freshly allocated columns.
// Elements are shared, not cloned.
func (d *Dataset) Copy() *Dataset {
	out := &Dataset{
		names: append([]string(nil), d.names...),
		cols:  make(map[string][]any, len(d.cols)),
	}
	for _, name := range d.names {
		out.cols[name] = append(make([]any, 0, len(d.cols[name])), d.cols[name]...)
	}
	return out
}

// Columns returns a copy of every column, in field order.
func (d *Dataset) Columns() Columns {
	out := make(Columns, len(d.names))
	for i, name := range d.names {
		out[i] = Column{Name: name, Values: append([]any(nil), d.cols[name]...)}
	}
	return out
}
