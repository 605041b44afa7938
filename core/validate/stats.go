package validate

import (
	"context"
	"fmt"
	"math"

	"datasure/core/table"
)

// Tolerances for comparing numeric sums. They absorb floating-point
// accumulation error without masking real discrepancies: two sums match iff
// |a-b| <= max(AbsTolerance, RelTolerance * max(|a|, |b|)).
const (
	AbsTolerance = 1e-6
	RelTolerance = 1e-9
)

// cancelCheckInterval is how many rows a scan processes between context
// checks. Cancellation is cooperative at row granularity, not per cell.
const cancelCheckInterval = 1024

// NumbersMatch applies the sum tolerance rule to two values.
func NumbersMatch(a, b float64) bool {
	return math.Abs(a-b) <= math.Max(AbsTolerance, RelTolerance*math.Max(math.Abs(a), math.Abs(b)))
}

// CompareStats computes one ColumnStat per common column and compares the
// two sides. A column counts as numeric only when both tables inferred it
// numeric; otherwise it is compared by distinct non-null value count.
func CompareStats(ctx context.Context, source, target *table.Table, common []string) (ValidationResult, error) {
	stats := make([]ColumnStat, 0, len(common))
	mismatches := 0

	for _, name := range common {
		srcIdx := source.ColumnIndex(name)
		tgtIdx := target.ColumnIndex(name)
		numeric := source.ColumnType(srcIdx) == table.TypeNumeric && target.ColumnType(tgtIdx) == table.TypeNumeric

		var stat ColumnStat
		if numeric {
			srcSum, err := columnSum(ctx, source, srcIdx)
			if err != nil {
				return ValidationResult{}, err
			}
			tgtSum, err := columnSum(ctx, target, tgtIdx)
			if err != nil {
				return ValidationResult{}, err
			}
			stat = ColumnStat{
				Column:    name,
				Type:      table.TypeNumeric,
				SourceSum: &srcSum,
				TargetSum: &tgtSum,
				Match:     NumbersMatch(srcSum, tgtSum),
			}
		} else {
			srcUnique, err := columnUnique(ctx, source, srcIdx)
			if err != nil {
				return ValidationResult{}, err
			}
			tgtUnique, err := columnUnique(ctx, target, tgtIdx)
			if err != nil {
				return ValidationResult{}, err
			}
			stat = ColumnStat{
				Column:       name,
				Type:         table.TypeText,
				SourceUnique: &srcUnique,
				TargetUnique: &tgtUnique,
				Match:        srcUnique == tgtUnique,
			}
		}
		if !stat.Match {
			mismatches++
		}
		stats = append(stats, stat)
	}

	status := StatusPass
	summary := "All column statistics match"
	if mismatches > 0 {
		status = StatusFail
		summary = fmt.Sprintf("%d column(s) with statistical differences", mismatches)
	}

	return ValidationResult{
		Name:    CheckStats,
		Status:  status,
		Summary: summary,
		Details: StatsDetails{Stats: stats},
	}, nil
}

// columnSum adds up the parseable values of one column. Nulls and
// unparseable cells are excluded from the sum, not treated as zero.
func columnSum(ctx context.Context, t *table.Table, col int) (float64, error) {
	sum := 0.0
	for i := 0; i < t.RowCount(); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		v := t.Cell(i, col)
		if table.IsNull(v) {
			continue
		}
		if parsed, ok := table.ParseNumber(v); ok {
			sum += parsed
		}
	}
	return sum, nil
}

// columnUnique counts distinct non-null values, case-sensitively.
func columnUnique(ctx context.Context, t *table.Table, col int) (int, error) {
	seen := make(map[string]struct{})
	for i := 0; i < t.RowCount(); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		v := t.Cell(i, col)
		if table.IsNull(v) {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen), nil
}
