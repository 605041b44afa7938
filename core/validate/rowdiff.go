package validate

import (
	"context"
	"fmt"

	"datasure/core/table"
)

// DiffRows compares the two tables cell by cell over the usable columns.
//
// Alignment is positional: row i of source against row i of target. There is
// no join key in the data model, so no reordering-tolerant matching is
// attempted; if the row counts differ the comparison is skipped outright
// (warning, not fail), because diffing misaligned tables cell-by-cell would
// be meaningless.
func DiffRows(ctx context.Context, source, target *table.Table, usable []string) (ValidationResult, error) {
	if len(usable) == 0 {
		return skippedRowDiff("Cannot compare rows - no common columns"), nil
	}
	if source.RowCount() != target.RowCount() {
		return skippedRowDiff("Cannot compare rows - row counts differ"), nil
	}

	type comparedColumn struct {
		name    string
		srcIdx  int
		tgtIdx  int
		numeric bool
	}
	cols := make([]comparedColumn, len(usable))
	for i, name := range usable {
		srcIdx := source.ColumnIndex(name)
		tgtIdx := target.ColumnIndex(name)
		cols[i] = comparedColumn{
			name:    name,
			srcIdx:  srcIdx,
			tgtIdx:  tgtIdx,
			numeric: source.ColumnType(srcIdx) == table.TypeNumeric && target.ColumnType(tgtIdx) == table.TypeNumeric,
		}
	}

	differences := []CellDifference{}
	for row := 0; row < source.RowCount(); row++ {
		if row%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return ValidationResult{}, err
			}
		}
		for _, col := range cols {
			sv := source.Cell(row, col.srcIdx)
			tv := target.Cell(row, col.tgtIdx)
			if cellsEqual(sv, tv, col.numeric) {
				continue
			}
			differences = append(differences, CellDifference{
				Row:         row,
				Column:      col.name,
				SourceValue: sv,
				TargetValue: tv,
			})
		}
	}

	status := StatusPass
	summary := "All rows match"
	if len(differences) > 0 {
		status = StatusFail
		summary = fmt.Sprintf("Found %d difference(s)", len(differences))
	}

	return ValidationResult{
		Name:    CheckRows,
		Status:  status,
		Summary: summary,
		Details: RowDiffDetails{
			Differences:      differences,
			TotalDifferences: len(differences),
			Skipped:          false,
		},
	}, nil
}

// cellsEqual compares one cell pair. Columns numeric on both sides compare
// parsed values under the sum tolerance; everything else compares canonical
// strings (nulls mapped to empty, case-sensitive).
func cellsEqual(sv, tv string, numeric bool) bool {
	sNull, tNull := table.IsNull(sv), table.IsNull(tv)
	if sNull && tNull {
		return true
	}
	if numeric && !sNull && !tNull {
		a, okA := table.ParseNumber(sv)
		b, okB := table.ParseNumber(tv)
		if okA && okB {
			return NumbersMatch(a, b)
		}
	}
	return table.Canonical(sv) == table.Canonical(tv)
}

func skippedRowDiff(summary string) ValidationResult {
	return ValidationResult{
		Name:    CheckRows,
		Status:  StatusWarning,
		Summary: summary,
		Details: RowDiffDetails{
			Differences:      []CellDifference{},
			TotalDifferences: 0,
			Skipped:          true,
		},
	}
}
