package dataset

import "fmt"

// Get returns the instance at index i. Negative indices count from the end.
func (d *Dataset) Get(i int) (Row, error) {
	k, err := normalizeIndex(i, d.Len())
	if err != nil {
		return Row{}, err
	}
	return d.row(k), nil
}

func (d *Dataset) row(k int) Row {
	r := Row{names: d.names, values: make([]any, len(d.names))}
	for i, name := range d.names {
		r.values[i] = d.cols[name][k]
	}
	return r
}

// GetSlice returns the values selected by s from every column, in field order.
// The returned slices are freshly allocated.
func (d *Dataset) GetSlice(s Slice) (Columns, error) {
	pos, err := s.positions(d.Len())
	if err != nil {
		return nil, err
	}
	out := make(Columns, len(d.names))
	for i, name := range d.names {
		col := d.cols[name]
		vals := make([]any, len(pos))
		for j, p := range pos {
			vals[j] = col[p]
		}
		out[i] = Column{Name: name, Values: vals}
	}
	return out, nil
}

// Set overwrites the instance at index i. value must hold every field of the
// dataset; extra keys are ignored. Nothing is written when an error is
// returned.
func (d *Dataset) Set(i int, value map[string]any) error {
	if err := d.requireFields(func(name string) bool {
		_, ok := value[name]
		return ok
	}); err != nil {
		return err
	}
	k, err := normalizeIndex(i, d.Len())
	if err != nil {
		return err
	}
	for _, name := range d.names {
		d.cols[name][k] = value[name]
	}
	return nil
}

// SetSlice overwrites the positions selected by s. value must hold a sequence
// for every field of the dataset; extra keys are ignored.
//
// With a step of 1 the selected run is replaced and the dataset may grow or
// shrink, provided every replacement has the same length. With any other step
// each replacement must have exactly as many values as s selects. Nothing is
// written when an error is returned.
func (d *Dataset) SetSlice(s Slice, value map[string][]any) error {
	if err := d.requireFields(func(name string) bool {
		_, ok := value[name]
		return ok
	}); err != nil {
		return err
	}
	if len(d.names) == 0 {
		return nil
	}
	n := d.Len()
	start, stop, step, err := s.bounds(n)
	if err != nil {
		return err
	}

	if step == 1 {
		first := d.names[0]
		for _, name := range d.names[1:] {
			if len(value[name]) != len(value[first]) {
				return lengthMismatch(first, len(value[first]), name, len(value[name]))
			}
		}
		if stop < start {
			stop = start
		}
		for _, name := range d.names {
			col := d.cols[name]
			repl := value[name]
			spliced := make([]any, 0, n-(stop-start)+len(repl))
			spliced = append(spliced, col[:start]...)
			spliced = append(spliced, repl...)
			spliced = append(spliced, col[stop:]...)
			d.cols[name] = spliced
		}
		return nil
	}

	pos, err := s.positions(n)
	if err != nil {
		return err
	}
	for _, name := range d.names {
		if len(value[name]) != len(pos) {
			return &Error{
				Code:    CodeSliceSize,
				Field:   name,
				Message: fmt.Sprintf("cannot assign %d values to a slice of %d for field %s", len(value[name]), len(pos), name),
				Params:  map[string]any{"size": len(pos), "got": len(value[name])},
			}
		}
	}
	for _, name := range d.names {
		col := d.cols[name]
		for j, p := range pos {
			col[p] = value[name][j]
		}
	}
	return nil
}

func (d *Dataset) requireFields(has func(name string) bool) error {
	for _, name := range d.names {
		if !has(name) {
			return &Error{
				Code:    CodeMissingField,
				Field:   name,
				Message: fmt.Sprintf("field %s is missing in input data", name),
			}
		}
	}
	return nil
}
