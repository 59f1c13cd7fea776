package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeFieldLengthMismatch = "field_length_mismatch"
	CodeDuplicateField      = "duplicate_field"
	CodeMissingField        = "missing_field"
	CodeUnknownField        = "unknown_field"
	CodeIndexOutOfRange     = "index_out_of_range"
	CodeInvalidSlice        = "invalid_slice"
	CodeSliceSize           = "slice_size"
	CodeInvalidPermutation  = "invalid_permutation"
	CodeInvalidConverter    = "invalid_converter"
	CodeConvertFailed       = "convert_failed"
	// CONLL reader
	CodeMissingHeader = "missing_header"
	CodeMalformedRow  = "malformed_row"
)

// Sentinels for errors.Is. They match any *Error carrying the same Code.
var (
	ErrFieldLengthMismatch = &Error{Code: CodeFieldLengthMismatch}
	ErrDuplicateField      = &Error{Code: CodeDuplicateField}
	ErrMissingField        = &Error{Code: CodeMissingField}
	ErrUnknownField        = &Error{Code: CodeUnknownField}
	ErrIndexOutOfRange     = &Error{Code: CodeIndexOutOfRange}
	ErrInvalidSlice        = &Error{Code: CodeInvalidSlice}
	ErrSliceSize           = &Error{Code: CodeSliceSize}
	ErrInvalidPermutation  = &Error{Code: CodeInvalidPermutation}
	ErrInvalidConverter    = &Error{Code: CodeInvalidConverter}
	ErrConvert             = &Error{Code: CodeConvertFailed}
	ErrMissingHeader       = &Error{Code: CodeMissingHeader}
	ErrMalformedRow        = &Error{Code: CodeMalformedRow}
)

// Error is the single structured error type returned by Dataset operations.
type Error struct {
	Code    string // One of the codes listed above.
	Field   string // Field the error is about, when there is one.
	Message string
	// Params carries structured parameters (e.g., {"length":3, "other_length":2}).
	Params map[string]any
	Line   int   // 1-based CONLL line number (0 when not applicable).
	Cause  error // Optional: underlying error.
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString("dataset: ")
	b.WriteString(e.Code)
	if e.Line > 0 {
		fmt.Fprintf(b, " at line %d", e.Line)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func lengthMismatch(field string, n int, other string, m int) *Error {
	return &Error{
		Code:    CodeFieldLengthMismatch,
		Field:   other,
		Message: fmt.Sprintf("field %s has length %d but field %s has length %d", field, n, other, m),
		Params:  map[string]any{"field": field, "length": n, "other": other, "other_length": m},
	}
}

func indexOutOfRange(i, n int) *Error {
	return &Error{
		Code:    CodeIndexOutOfRange,
		Message: fmt.Sprintf("index %d out of range for length %d", i, n),
		Params:  map[string]any{"index": i, "length": n},
	}
}
