package validate

import (
	"fmt"
	"sort"
	"strings"

	"datasure/core/table"
)

// Alignment is the schema comparison outcome plus the column set usable for
// the downstream statistics and row checks.
type Alignment struct {
	// Missing holds column names present in source, absent in target.
	Missing []string

	// Extra holds column names present in target, absent in source.
	Extra []string

	// Mismatches holds common columns whose inferred types differ.
	Mismatches []TypeMismatch

	// Common holds the names present in both tables, in source column order.
	// An empty set means the row-level check must be skipped, not failed.
	Common []string
}

// AlignSchemas compares the two tables' column sets. Names are matched by
// exact string equality; "Employee Name" and "Employee Name " are different
// columns on purpose, so operators see the discrepancy instead of the tool
// silently merging it.
func AlignSchemas(source, target *table.Table) Alignment {
	var a Alignment

	for _, c := range source.Columns() {
		if target.ColumnIndex(c.Name) >= 0 {
			a.Common = append(a.Common, c.Name)
		} else {
			a.Missing = append(a.Missing, c.Name)
		}
	}
	for _, c := range target.Columns() {
		if source.ColumnIndex(c.Name) < 0 {
			a.Extra = append(a.Extra, c.Name)
		}
	}
	// Missing and extra are sorted for stable display; common keeps source
	// order because the statistics output follows it.
	sort.Strings(a.Missing)
	sort.Strings(a.Extra)

	for _, name := range a.Common {
		srcType := source.ColumnType(source.ColumnIndex(name))
		tgtType := target.ColumnType(target.ColumnIndex(name))
		if srcType != tgtType {
			a.Mismatches = append(a.Mismatches, TypeMismatch{
				Column:     name,
				SourceType: srcType,
				TargetType: tgtType,
			})
		}
	}

	return a
}

// Result renders the alignment as a check result. Missing columns and type
// mismatches fail; extra columns alone are informational (the target simply
// carries more data), so they only warn.
func (a Alignment) Result() ValidationResult {
	details := SchemaDetails{
		MissingColumns: emptyIfNil(a.Missing),
		ExtraColumns:   emptyIfNil(a.Extra),
		TypeMismatches: a.Mismatches,
	}
	if details.TypeMismatches == nil {
		details.TypeMismatches = []TypeMismatch{}
	}

	var issues []string
	if n := len(a.Missing); n > 0 {
		issues = append(issues, fmt.Sprintf("%d missing column(s)", n))
	}
	if n := len(a.Extra); n > 0 {
		issues = append(issues, fmt.Sprintf("%d extra column(s)", n))
	}
	if n := len(a.Mismatches); n > 0 {
		issues = append(issues, fmt.Sprintf("%d type mismatch(es)", n))
	}

	status := StatusPass
	summary := "Schema matches"
	switch {
	case len(a.Missing) > 0 || len(a.Mismatches) > 0:
		status = StatusFail
		summary = joinIssues(issues)
	case len(a.Extra) > 0:
		status = StatusWarning
		summary = joinIssues(issues)
	}

	return ValidationResult{
		Name:    CheckSchema,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}

func joinIssues(issues []string) string {
	return strings.Join(issues, ", ")
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
