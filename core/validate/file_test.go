package validate

import (
	"testing"

	"datasure/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string, role table.Role, csv string) *table.Table {
	t.Helper()
	tbl, err := table.NewLoader().Load(name, role, []byte(csv))
	require.NoError(t, err)
	return tbl
}

func loadPair(t *testing.T, sourceCSV, targetCSV string) (*table.Table, *table.Table) {
	t.Helper()
	src := mustLoad(t, "source.csv", table.RoleSource, sourceCSV)
	tgt := mustLoad(t, "target.csv", table.RoleTarget, targetCSV)
	return src, tgt
}

func TestCheckFiles_Match(t *testing.T) {
	src, tgt := loadPair(t, "a,b\n1,2\n", "a,b\n1,2\n")

	result := CheckFiles(src, tgt)
	assert.Equal(t, CheckFile, result.Name)
	assert.Equal(t, StatusPass, result.Status)

	details := result.Details.(FileDetails)
	assert.Equal(t, FileDetails{RowCount1: 1, RowCount2: 1, ColumnCount1: 2, ColumnCount2: 2}, details)
}

func TestCheckFiles_RowMismatchIsFail(t *testing.T) {
	src, tgt := loadPair(t, "a,b\n1,2\n", "a,b\n1,2\n3,4\n")

	result := CheckFiles(src, tgt)
	// Shape mismatch is never a warning.
	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Summary, "row count mismatch (1 vs 2)")
}

func TestCheckFiles_ColumnMismatchIsFail(t *testing.T) {
	src, tgt := loadPair(t, "a,b\n1,2\n", "a,b,c\n1,2,3\n")

	result := CheckFiles(src, tgt)
	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Summary, "column count mismatch (2 vs 3)")

	// Raw counts are included whatever the outcome.
	details := result.Details.(FileDetails)
	assert.Equal(t, 3, details.ColumnCount2)
}

func TestCombineStatuses(t *testing.T) {
	assert.Equal(t, StatusPass, CombineStatuses())
	assert.Equal(t, StatusPass, CombineStatuses(StatusPass, StatusPass))
	assert.Equal(t, StatusWarning, CombineStatuses(StatusPass, StatusWarning, StatusPass))
	assert.Equal(t, StatusFail, CombineStatuses(StatusWarning, StatusFail, StatusPass))
}
