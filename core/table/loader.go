package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// LoadErrorKind classifies fatal load failures.
type LoadErrorKind string

const (
	// UndecodableEncoding means no charset in the preference list decoded the stream.
	UndecodableEncoding LoadErrorKind = "undecodable_encoding"
	// MalformedRow means a row violated the quoting or field-count rules.
	MalformedRow LoadErrorKind = "malformed_row"
	// EmptyHeader means the file has no header row.
	EmptyHeader LoadErrorKind = "empty_header"
)

// LoadError is a fatal table-load failure. It aborts the whole validation
// run before any check executes; every other disagreement between two tables
// is a finding inside the report, never a LoadError.
type LoadError struct {
	Kind LoadErrorKind

	// File is the display name of the offending input.
	File string

	// RowIndex is the zero-based record index of the offending row, counting
	// the header as record 0. It is -1 when no single row is at fault.
	RowIndex int

	// Err is the underlying parser or decoder error, if any.
	Err error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case UndecodableEncoding:
		return fmt.Sprintf("%s: no configured charset can decode the file", e.File)
	case MalformedRow:
		return fmt.Sprintf("%s: malformed row at record %d: %v", e.File, e.RowIndex, e.Err)
	case EmptyHeader:
		return fmt.Sprintf("%s: file has no header row", e.File)
	default:
		return fmt.Sprintf("%s: load failed: %v", e.File, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Charset is one entry of the encoding preference list.
type Charset struct {
	// Name is the label reported in logs and errors.
	Name string

	// Encoding decodes the raw bytes. A nil Encoding means strict UTF-8 with
	// an optional byte-order mark.
	Encoding encoding.Encoding
}

// DefaultCharsets returns the standard encoding preference list: UTF-8
// first, then the single-byte Western encodings reporting tools commonly
// emit, then UTF-16. ISO-8859-1 assigns a rune to every byte, so entries
// after it only matter in caller-supplied lists.
func DefaultCharsets() []Charset {
	return []Charset{
		{Name: "utf-8"},
		{Name: "iso-8859-1", Encoding: charmap.ISO8859_1},
		{Name: "windows-1252", Encoding: charmap.Windows1252},
		{Name: "utf-16", Encoding: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader turns raw bytes into Tables. The charset list is an explicit value
// rather than process-wide state so runs can vary it independently.
type Loader struct {
	charsets []Charset
}

// NewLoader creates a Loader with the given charset preference list, or the
// default list when none is given.
func NewLoader(charsets ...Charset) *Loader {
	if len(charsets) == 0 {
		charsets = DefaultCharsets()
	}
	return &Loader{charsets: charsets}
}

// Load parses one delimited-text export. The first row is always the header
// and its cell values become column names verbatim. Files with zero data
// rows are valid; files with no header row are not. The loader keeps no
// reference to data after parsing.
func (l *Loader) Load(name string, role Role, data []byte) (*Table, error) {
	text, err := l.decode(name, data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	header, err := r.Read()
	if err == io.EOF {
		return nil, &LoadError{Kind: EmptyHeader, File: name, RowIndex: -1}
	}
	if err != nil {
		return nil, &LoadError{Kind: MalformedRow, File: name, RowIndex: 0, Err: err}
	}

	rows := make([][]string, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Record index: header is 0, data rows follow.
			return nil, &LoadError{Kind: MalformedRow, File: name, RowIndex: len(rows) + 1, Err: err}
		}
		rows = append(rows, record)
	}

	columns := make([]Column, len(header))
	for i, colName := range header {
		columns[i] = Column{
			Name:     colName,
			Position: i,
			Type:     inferColumnType(rows, i),
		}
	}

	return &Table{Name: name, Role: role, columns: columns, rows: rows}, nil
}

// decode walks the charset list and returns the first clean decoding.
func (l *Loader) decode(name string, data []byte) (string, error) {
	for _, cs := range l.charsets {
		if cs.Encoding == nil {
			trimmed := bytes.TrimPrefix(data, utf8BOM)
			if utf8.Valid(trimmed) {
				return string(trimmed), nil
			}
			continue
		}
		decoded, err := cs.Encoding.NewDecoder().Bytes(data)
		if err != nil || hasReplacementRune(decoded, data) {
			continue
		}
		return string(decoded), nil
	}
	return "", &LoadError{Kind: UndecodableEncoding, File: name, RowIndex: -1}
}

// hasReplacementRune reports whether decoding introduced U+FFFD, which the
// charmap and UTF-16 decoders substitute for bytes they cannot map instead
// of returning an error.
func hasReplacementRune(decoded, original []byte) bool {
	return bytes.ContainsRune(decoded, utf8.RuneError) && !bytes.ContainsRune(original, utf8.RuneError)
}

// EncodeCSV serializes the table back to UTF-8 comma-delimited bytes.
// Loading the result reproduces an equivalent table.
func (t *Table) EncodeCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.Name
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AsLoadError unwraps err as a *LoadError when possible.
func AsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
