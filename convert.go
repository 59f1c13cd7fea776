package dataset

import (
	"fmt"
	"sort"
)

// Converter transforms one value of a column.
type Converter interface {
	Convert(v any) (any, error)
}

// Func adapts a transform that cannot fail to a Converter.
type Func func(v any) any

func (f Func) Convert(v any) (any, error) { return f(v), nil }

// FuncE adapts a fallible transform to a Converter.
type FuncE func(v any) (any, error)

func (f FuncE) Convert(v any) (any, error) { return f(v) }

// Convert applies converters to the columns they name, element by element.
// Fields without a converter are left alone. With inPlace the receiver is
// changed and returned; otherwise a Copy is changed and returned.
//
// Every converter key and value is checked before anything runs, and
// converted columns are only installed once all converters succeeded, so a
// failed call leaves the dataset untouched.
func (d *Dataset) Convert(converters map[string]Converter, inPlace bool) (*Dataset, error) {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !d.Has(name) {
			return nil, &Error{
				Code:    CodeUnknownField,
				Field:   name,
				Message: fmt.Sprintf("converter specified for non-existent field %s", name),
			}
		}
		if isNilConverter(converters[name]) {
			return nil, &Error{
				Code:    CodeInvalidConverter,
				Field:   name,
				Message: fmt.Sprintf("nil converter for field %s", name),
			}
		}
	}

	converted := make(map[string][]any, len(converters))
	for _, name := range names {
		conv := converters[name]
		col := d.cols[name]
		out := make([]any, len(col))
		for i, v := range col {
			nv, err := conv.Convert(v)
			if err != nil {
				return nil, &Error{
					Code:    CodeConvertFailed,
					Field:   name,
					Message: fmt.Sprintf("field %s at index %d", name, i),
					Params:  map[string]any{"index": i},
					Cause:   err,
				}
			}
			out[i] = nv
		}
		converted[name] = out
	}

	target := d
	if !inPlace {
		target = d.Copy()
	}
	for name, col := range converted {
		target.cols[name] = col
	}
	return target, nil
}

func isNilConverter(c Converter) bool {
	switch f := c.(type) {
	case nil:
		return true
	case Func:
		return f == nil
	case FuncE:
		return f == nil
	}
	return false
}
