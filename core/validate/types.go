package validate

import "datasure/core/table"

// Status is the outcome of one check, or of a whole report.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// severity ranks statuses for the overall fold: fail > warning > pass.
func (s Status) severity() int {
	switch s {
	case StatusFail:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// CombineStatuses folds check statuses into one overall status. Any single
// fail dominates; otherwise any warning; otherwise pass.
func CombineStatuses(statuses ...Status) Status {
	overall := StatusPass
	for _, s := range statuses {
		if s.severity() > overall.severity() {
			overall = s
		}
	}
	return overall
}

// Check display names, in report order.
const (
	CheckFile   = "File Validation"
	CheckSchema = "Schema Validation"
	CheckStats  = "Column Statistics"
	CheckRows   = "Row-Level Differences"
)

// ValidationResult is the outcome of one check.
type ValidationResult struct {
	Name    string  `json:"name"`
	Status  Status  `json:"status"`
	Summary string  `json:"summary"`
	Details Details `json:"details"`
}

// Details is the check-specific payload of a ValidationResult. Exactly one
// concrete type exists per check; render and export layers type-switch on it.
type Details interface {
	isDetails()
}

// FileDetails is the File Validation payload. Raw counts for both sides are
// always included, whatever the outcome.
type FileDetails struct {
	RowCount1    int `json:"row_count_1"`
	RowCount2    int `json:"row_count_2"`
	ColumnCount1 int `json:"column_count_1"`
	ColumnCount2 int `json:"column_count_2"`
}

func (FileDetails) isDetails() {}

// TypeMismatch records a common column whose inferred types disagree.
type TypeMismatch struct {
	Column     string           `json:"column"`
	SourceType table.ColumnType `json:"source_type"`
	TargetType table.ColumnType `json:"target_type"`
}

// SchemaDetails is the Schema Validation payload.
type SchemaDetails struct {
	MissingColumns []string       `json:"missing_columns"`
	ExtraColumns   []string       `json:"extra_columns"`
	TypeMismatches []TypeMismatch `json:"type_mismatches"`
}

func (SchemaDetails) isDetails() {}

// ColumnStat is the aggregate comparison for one common column. Sum fields
// are set for numeric columns, unique counts for everything else.
type ColumnStat struct {
	Column       string           `json:"column"`
	Type         table.ColumnType `json:"type"`
	SourceSum    *float64         `json:"source_sum,omitempty"`
	TargetSum    *float64         `json:"target_sum,omitempty"`
	SourceUnique *int             `json:"source_unique,omitempty"`
	TargetUnique *int             `json:"target_unique,omitempty"`
	Match        bool             `json:"match"`
}

// StatsDetails is the Column Statistics payload, in source column order
// filtered to the common columns.
type StatsDetails struct {
	Stats []ColumnStat `json:"stats"`
}

func (StatsDetails) isDetails() {}

// CellDifference records one disagreeing cell. Values are the raw cell
// contents, not the canonicalized forms used for comparison.
type CellDifference struct {
	Row         int    `json:"row"`
	Column      string `json:"column"`
	SourceValue string `json:"source_value"`
	TargetValue string `json:"target_value"`
}

// RowDiffDetails is the Row-Level Differences payload. Differences holds the
// complete list; bounding what gets displayed is the render/export layer's
// concern, so TotalDifferences always reflects the true count.
type RowDiffDetails struct {
	Differences      []CellDifference `json:"differences"`
	TotalDifferences int              `json:"total_differences"`
	Skipped          bool             `json:"skipped"`
}

func (RowDiffDetails) isDetails() {}

// Shape is a table's (rows, columns) pair.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// ValidationReport is the aggregate outcome of one run. It is immutable once
// returned and has no lifecycle beyond the request that produced it.
type ValidationReport struct {
	OverallStatus Status `json:"overall_status"`

	ProjectName string `json:"project_name"`
	ReportName  string `json:"report_name"`
	Environment string `json:"environment"`

	SourceFile  string `json:"source_file"`
	TargetFile  string `json:"target_file"`
	SourceShape Shape  `json:"source_shape"`
	TargetShape Shape  `json:"target_shape"`

	// Results holds exactly four entries, in check order.
	Results []ValidationResult `json:"results"`
}

// Result returns the check result with the given display name, or nil.
func (r *ValidationReport) Result(name string) *ValidationResult {
	for i := range r.Results {
		if r.Results[i].Name == name {
			return &r.Results[i]
		}
	}
	return nil
}
