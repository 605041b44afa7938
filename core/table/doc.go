// Package table provides the in-memory model for delimited-text exports and
// the loader that produces it from raw bytes.
//
// # Model
//
// A Table is an ordered set of named Columns plus an ordered set of rows.
// Every row has exactly as many cells as there are columns. Column names are
// taken verbatim from the header row, including any surrounding whitespace,
// so that naming noise between two exports stays visible to the schema
// comparison instead of being silently merged.
//
// # Loading
//
// Load resolves the character encoding of the input by walking an ordered
// preference list of charsets (UTF-8 with or without BOM, then single-byte
// Western encodings, then UTF-16). The first charset that decodes the whole
// stream without error wins. Parse failures are fatal and reported as a
// LoadError; everything after a successful load is a finding, not an error.
//
// # Types
//
// Each column carries a semantic type, inferred once at load time from the
// column's own values: numeric if every non-null cell parses as a number,
// text otherwise. The two sides of a comparison may disagree on a column's
// type; surfacing that disagreement is the schema check's job.
package table
