// Package codec provides ready-made dataset.Converter values for common column
// transformations. Every converter passes the missing sentinel (nil) through
// unchanged.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/reoring/dataset"
)

// Identity returns a converter that leaves values unchanged.
func Identity() dataset.Converter {
	return dataset.Func(func(v any) any { return v })
}

// Lower lowercases string values.
func Lower() dataset.Converter { return stringFunc(strings.ToLower) }

// Upper uppercases string values.
func Upper() dataset.Converter { return stringFunc(strings.ToUpper) }

// TrimSpace strips surrounding whitespace from string values.
func TrimSpace() dataset.Converter { return stringFunc(strings.TrimSpace) }

// SnakeCase rewrites string values as snake_case labels.
func SnakeCase() dataset.Converter { return stringFunc(strcase.ToSnake) }

// CamelCase rewrites string values as CamelCase labels.
func CamelCase() dataset.Converter { return stringFunc(strcase.ToCamel) }

// Int parses string values as base-10 integers.
func Int() dataset.Converter {
	return parseFunc(func(s string) (any, error) { return strconv.Atoi(s) })
}

// Float parses string values as 64-bit floats.
func Float() dataset.Converter {
	return parseFunc(func(s string) (any, error) { return strconv.ParseFloat(s, 64) })
}

// Vocab maps string values to their id in vocab, or to unk when absent.
func Vocab(vocab map[string]int, unk int) dataset.Converter {
	return dataset.FuncE(func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("codec: expected string, got %T", v)
		}
		if id, ok := vocab[s]; ok {
			return id, nil
		}
		return unk, nil
	})
}

// Chain applies converters left to right, stopping at the first error.
func Chain(cs ...dataset.Converter) dataset.Converter {
	return dataset.FuncE(func(v any) (any, error) {
		var err error
		for _, c := range cs {
			if v, err = c.Convert(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

// stringFunc lifts f over string values; other types are rejected.
func stringFunc(f func(string) string) dataset.Converter {
	return dataset.FuncE(func(v any) (any, error) {
		switch x := v.(type) {
		case nil:
			return nil, nil
		case string:
			return f(x), nil
		default:
			return nil, fmt.Errorf("codec: expected string, got %T", v)
		}
	})
}

func parseFunc(parse func(string) (any, error)) dataset.Converter {
	return dataset.FuncE(func(v any) (any, error) {
		switch x := v.(type) {
		case nil:
			return nil, nil
		case string:
			return parse(x)
		default:
			return nil, fmt.Errorf("codec: expected string, got %T", v)
		}
	})
}
