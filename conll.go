package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/reoring/dataset/internal/logging"
)

// MissingToken is how the missing sentinel is written in CONLL files.
const MissingToken = "-"

// IOOpt configures Read/Write and the file helpers built on them.
type IOOpt struct {
	// Logger receives debug records; the package logger is used when nil.
	Logger *slog.Logger
}

func normalizeIOOpt(opts []IOOpt) IOOpt {
	var opt IOOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Logger == nil {
		opt.Logger = logging.Logger()
	}
	return opt
}

// Load reads a CONLL file from path. See Read for the format.
func Load(path string, opts ...IOOpt) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, opts...)
	if err != nil {
		return nil, err
	}
	normalizeIOOpt(opts).Logger.Debug("dataset loaded", "path", path, "fields", d.names, "rows", d.Len())
	return d, nil
}

// LoadFS is like Load but reads name from fsys.
func LoadFS(fsys fs.FS, name string, opts ...IOOpt) (*Dataset, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, opts...)
	if err != nil {
		return nil, err
	}
	normalizeIOOpt(opts).Logger.Debug("dataset loaded", "fs_path", name, "fields", d.names, "rows", d.Len())
	return d, nil
}

// Read parses a CONLL-style dataset. The first line is a tab-separated header
// of field names, written with a leading "# ":
//
//	# word	tag
//	Alice	NNP
//	Bob	-
//
// Each following non-blank line holds one instance with one value per field.
// The token "-" is read as the missing sentinel (nil); other values are kept
// as strings, exactly as written between tabs. A header that is empty once
// the "# " prefix is removed declares no fields.
func Read(r io.Reader, opts ...IOOpt) (*Dataset, error) {
	br := bufio.NewReader(r)
	line, err := readLine(br)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, &Error{Code: CodeMissingHeader, Message: "no header line", Line: 1}
	}
	names := strings.Split(line, "\t")
	names[0] = strings.TrimLeft(names[0], "# ")
	if len(names) == 1 && names[0] == "" {
		names = nil
	}

	cols := make(Columns, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n, Values: []any{}}
	}

	lineNo := 1
	for !errors.Is(err, io.EOF) {
		line, err = readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, "\t")
		if len(values) != len(cols) {
			return nil, &Error{
				Code:    CodeMalformedRow,
				Message: fmt.Sprintf("expected %d values, got %d", len(cols), len(values)),
				Params:  map[string]any{"want": len(cols), "got": len(values)},
				Line:    lineNo,
			}
		}
		for i, v := range values {
			if v == MissingToken {
				cols[i].Values = append(cols[i].Values, nil)
			} else {
				cols[i].Values = append(cols[i].Values, v)
			}
		}
	}
	normalizeIOOpt(opts).Logger.Debug("conll parsed", "fields", names, "lines", lineNo)
	return New(cols...)
}

// readLine returns the next line without its "\n" or "\r\n" terminator. The
// last line of the input comes back together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), err
}

// Store writes the dataset to path in CONLL format, creating or truncating the
// file. A failure part way leaves a partially written file.
func (d *Dataset) Store(path string, opts ...IOOpt) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(f, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	normalizeIOOpt(opts).Logger.Debug("dataset stored", "path", path, "fields", d.names, "rows", d.Len())
	return nil
}

// Write serializes the dataset in CONLL format. Missing values are written as
// "-" and every other value through fmt.Sprint. The last instance is not
// followed by a newline. A dataset without fields is written as the header
// "# ", which Read turns back into a dataset without fields.
//
// Values that contain a tab or newline, or a whitespace-only value in a
// single-field dataset, cannot be read back.
func (d *Dataset) Write(w io.Writer, opts ...IOOpt) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", strings.Join(d.names, "\t"))
	n := d.Len()
	fields := make([]string, len(d.names))
	for i := 0; i < n; i++ {
		for k, name := range d.names {
			fields[k] = formatValue(d.cols[name][i])
		}
		bw.WriteString(strings.Join(fields, "\t"))
		if i != n-1 {
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	normalizeIOOpt(opts).Logger.Debug("conll written", "fields", d.names, "rows", n)
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return MissingToken
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
