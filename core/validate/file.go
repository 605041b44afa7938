package validate

import (
	"fmt"

	"datasure/core/table"
)

// CheckFiles compares the gross shape of the two tables. Any shape mismatch
// is a fail, never a warning: every downstream check depends on comparable
// shape.
func CheckFiles(source, target *table.Table) ValidationResult {
	details := FileDetails{
		RowCount1:    source.RowCount(),
		RowCount2:    target.RowCount(),
		ColumnCount1: source.ColumnCount(),
		ColumnCount2: target.ColumnCount(),
	}

	rowMatch := details.RowCount1 == details.RowCount2
	colMatch := details.ColumnCount1 == details.ColumnCount2

	if rowMatch && colMatch {
		return ValidationResult{
			Name:    CheckFile,
			Status:  StatusPass,
			Summary: "File structure matches",
			Details: details,
		}
	}

	var issues []string
	if !rowMatch {
		issues = append(issues, fmt.Sprintf("row count mismatch (%d vs %d)", details.RowCount1, details.RowCount2))
	}
	if !colMatch {
		issues = append(issues, fmt.Sprintf("column count mismatch (%d vs %d)", details.ColumnCount1, details.ColumnCount2))
	}

	return ValidationResult{
		Name:    CheckFile,
		Status:  StatusFail,
		Summary: joinIssues(issues),
		Details: details,
	}
}
