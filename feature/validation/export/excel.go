// Package export renders finished validation reports as Excel workbooks.
//
// Rendering is a pure projection over a ValidationReport: nothing here
// recomputes, filters, or re-orders findings beyond display windowing. The
// one policy this layer owns is MaxDisplayedDiffs, which bounds how many
// cell differences the workbook lists while the reported total stays exact.
package export

import (
	"fmt"
	"time"

	"datasure/core/table"
	"datasure/core/validate"

	"github.com/xuri/excelize/v2"
)

// MaxDisplayedDiffs bounds the number of cell differences written to the
// Row_Differences sheet. Detection is never capped; this is display-only.
const MaxDisplayedDiffs = 10

const (
	sheetOverview = "Validation_Overview"
	sheetFile     = "File_Validation"
	sheetSchema   = "Schema_Validation"
	sheetStats    = "Column_Statistics"
	sheetRows     = "Row_Differences"
)

type styles struct {
	header int
	label  int
}

// Excel renders the report as an xlsx workbook and returns its bytes.
func Excel(report *validate.ValidationReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeOverview(f, st, report, generatedAt); err != nil {
		return nil, err
	}
	for _, result := range report.Results {
		if err := writeResult(f, st, result); err != nil {
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(sheetOverview); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E3A5F"}},
	})
	if err != nil {
		return styles{}, err
	}
	label, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E2F3"}},
	})
	if err != nil {
		return styles{}, err
	}
	return styles{header: header, label: label}, nil
}

func writeOverview(f *excelize.File, st styles, report *validate.ValidationReport, generatedAt time.Time) error {
	f.SetSheetName("Sheet1", sheetOverview)
	_ = f.SetColWidth(sheetOverview, "A", "A", 28)
	_ = f.SetColWidth(sheetOverview, "B", "B", 42)

	rows := [][]any{
		{"DATA VALIDATION REPORT", ""},
		{"Project Name", report.ProjectName},
		{"Report Name", report.ReportName},
		{"Environment", report.Environment},
		{"Validation Date", generatedAt.Format("2006-01-02 15:04")},
		{"Source Report", report.SourceFile},
		{"Target Report", report.TargetFile},
		{"Source Shape", shapeString(report.SourceShape)},
		{"Target Shape", shapeString(report.TargetShape)},
		{"Overall Status", statusLabel(report.OverallStatus)},
		{"", ""},
		{"Validation Check", "Result"},
	}
	for _, result := range report.Results {
		rows = append(rows, []any{result.Name, statusLabel(result.Status) + " - " + result.Summary})
	}

	if err := writeRows(f, sheetOverview, 1, rows); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheetOverview, "A1", "B1", st.header)
	_ = f.SetCellStyle(sheetOverview, "A12", "B12", st.header)
	for i := 2; i <= 10; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i)
		_ = f.SetCellStyle(sheetOverview, cell, cell, st.label)
	}
	return nil
}

// writeResult writes one check's sheet by switching on its detail payload.
func writeResult(f *excelize.File, st styles, result validate.ValidationResult) error {
	switch d := result.Details.(type) {
	case validate.FileDetails:
		return writeSheet(f, st, sheetFile, result, [][]any{
			{"Metric", "Source", "Target"},
			{"Row Count", d.RowCount1, d.RowCount2},
			{"Column Count", d.ColumnCount1, d.ColumnCount2},
		})

	case validate.SchemaDetails:
		rows := [][]any{{"Finding", "Column", "Source Type", "Target Type"}}
		for _, name := range d.MissingColumns {
			rows = append(rows, []any{"Missing in target", name, "", ""})
		}
		for _, name := range d.ExtraColumns {
			rows = append(rows, []any{"Extra in target", name, "", ""})
		}
		for _, tm := range d.TypeMismatches {
			rows = append(rows, []any{"Type mismatch", tm.Column, string(tm.SourceType), string(tm.TargetType)})
		}
		return writeSheet(f, st, sheetSchema, result, rows)

	case validate.StatsDetails:
		rows := [][]any{{"Column", "Type", "Source Value", "Target Value", "Match"}}
		for _, stat := range d.Stats {
			var srcVal, tgtVal any
			if stat.Type == table.TypeNumeric {
				srcVal, tgtVal = deref(stat.SourceSum), deref(stat.TargetSum)
			} else {
				srcVal, tgtVal = derefInt(stat.SourceUnique), derefInt(stat.TargetUnique)
			}
			rows = append(rows, []any{stat.Column, string(stat.Type), srcVal, tgtVal, stat.Match})
		}
		return writeSheet(f, st, sheetStats, result, rows)

	case validate.RowDiffDetails:
		rows := [][]any{{"Row", "Column", "Source Value", "Target Value"}}
		shown := d.Differences
		if len(shown) > MaxDisplayedDiffs {
			shown = shown[:MaxDisplayedDiffs]
		}
		for _, diff := range shown {
			rows = append(rows, []any{diff.Row, diff.Column, diff.SourceValue, diff.TargetValue})
		}
		if d.TotalDifferences > len(shown) {
			rows = append(rows, []any{
				fmt.Sprintf("Showing first %d of %d differences", len(shown), d.TotalDifferences), "", "", "",
			})
		}
		if d.Skipped {
			rows = append(rows, []any{"Comparison skipped: " + result.Summary, "", "", ""})
		}
		return writeSheet(f, st, sheetRows, result, rows)
	}
	return nil
}

// writeSheet creates one check sheet: a status line, a blank row, then the
// given table with a styled header row.
func writeSheet(f *excelize.File, st styles, name string, result validate.ValidationResult, tableRows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	_ = f.SetColWidth(name, "A", "E", 24)

	rows := [][]any{
		{result.Name, statusLabel(result.Status)},
		{result.Summary, ""},
		{"", ""},
	}
	rows = append(rows, tableRows...)
	if err := writeRows(f, name, 1, rows); err != nil {
		return err
	}

	_ = f.SetCellStyle(name, "A1", "B1", st.label)
	first, _ := excelize.CoordinatesToCellName(1, 4)
	last, _ := excelize.CoordinatesToCellName(len(tableRows[0]), 4)
	_ = f.SetCellStyle(name, first, last, st.header)
	return nil
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, startRow+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func shapeString(s validate.Shape) string {
	return fmt.Sprintf("%d rows x %d columns", s.Rows, s.Columns)
}

func statusLabel(s validate.Status) string {
	switch s {
	case validate.StatusPass:
		return "PASS"
	case validate.StatusWarning:
		return "WARNING"
	default:
		return "FAIL"
	}
}
