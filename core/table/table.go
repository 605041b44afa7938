package table

// Role identifies which side of a comparison a table belongs to.
type Role string

const (
	// RoleSource marks the export produced by the system being migrated from.
	RoleSource Role = "source"
	// RoleTarget marks the export produced by the system being migrated to.
	RoleTarget Role = "target"
)

// ColumnType is the inferred semantic type of a column.
type ColumnType string

const (
	// TypeNumeric means every non-null value in the column parses as a number.
	TypeNumeric ColumnType = "numeric"
	// TypeText covers everything else, including columns with no non-null values.
	TypeText ColumnType = "text"
)

// Column describes one column of a table.
type Column struct {
	// Name is the header cell value, verbatim (no trimming).
	Name string

	// Position is the zero-based ordinal of the column in its own table.
	Position int

	// Type is the semantic type inferred from this table's values.
	Type ColumnType
}

// Table is an immutable, fully in-memory view of one delimited-text export.
// It is created by a Loader and owned by the single validation run that
// loaded it; nothing mutates it afterwards.
type Table struct {
	// Name is the display name of the underlying file.
	Name string

	// Role records which side of the comparison this table is.
	Role Role

	columns []Column
	rows    [][]string
}

// RowCount returns the number of data rows (the header is not a row).
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Columns returns the table's columns in header order.
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnIndex returns the position of the named column, or -1 if absent.
// Lookup is by exact string equality.
func (t *Table) ColumnIndex(name string) int {
	for _, c := range t.columns {
		if c.Name == name {
			return c.Position
		}
	}
	return -1
}

// ColumnType returns the inferred type of the column at the given position.
func (t *Table) ColumnType(pos int) ColumnType {
	return t.columns[pos].Type
}

// Cell returns the raw cell value at the given row and column position.
func (t *Table) Cell(row, col int) string {
	return t.rows[row][col]
}

// nullMarkers are the cell values treated as null. This is the subset of
// markers that delimited exports of reporting systems actually emit.
var nullMarkers = map[string]struct{}{
	"":     {},
	"null": {},
	"NULL": {},
	"NaN":  {},
	"N/A":  {},
	"NA":   {},
}

// IsNull reports whether a raw cell value is a null marker.
func IsNull(value string) bool {
	_, ok := nullMarkers[value]
	return ok
}

// Canonical maps null markers to the empty string and leaves every other
// value untouched. Cell comparisons operate on canonical values.
func Canonical(value string) string {
	if IsNull(value) {
		return ""
	}
	return value
}
