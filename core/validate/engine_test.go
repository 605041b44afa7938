package validate

import (
	"context"
	"testing"

	"datasure/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runEngine(t *testing.T, sourceCSV, targetCSV string) (*ValidationReport, error) {
	t.Helper()
	engine := NewEngine(zap.NewNop())
	return engine.Run(context.Background(), Config{
		ProjectName: "Migration QA",
		ReportName:  "Sales Report",
		Environment: "UAT",
	},
		Input{Name: "source.csv", Data: []byte(sourceCSV)},
		Input{Name: "target.csv", Data: []byte(targetCSV)},
	)
}

func TestEngineRun_AllPass(t *testing.T) {
	report, err := runEngine(t,
		"id,amount\n1,10.5\n2,20\n",
		"id,amount\n1,10.5\n2,20\n")
	require.NoError(t, err)

	assert.Equal(t, StatusPass, report.OverallStatus)
	require.Len(t, report.Results, 4)
	assert.Equal(t, CheckFile, report.Results[0].Name)
	assert.Equal(t, CheckSchema, report.Results[1].Name)
	assert.Equal(t, CheckStats, report.Results[2].Name)
	assert.Equal(t, CheckRows, report.Results[3].Name)

	assert.Equal(t, "Migration QA", report.ProjectName)
	assert.Equal(t, "UAT", report.Environment)
	assert.Equal(t, Shape{Rows: 2, Columns: 2}, report.SourceShape)
	assert.Equal(t, Shape{Rows: 2, Columns: 2}, report.TargetShape)
}

// Target with one extra column and identical shared data: schema warns,
// rows compare only the common columns and pass. The file check still fails
// on the column-count difference, and that fail dominates the fold.
func TestEngineRun_ExtraColumnScenario(t *testing.T) {
	report, err := runEngine(t,
		"id,amount\n1,10\n2,20\n",
		"id,amount,region\n1,10,EU\n2,20,US\n")
	require.NoError(t, err)

	assert.Equal(t, StatusFail, report.OverallStatus)

	schema := report.Result(CheckSchema)
	require.NotNil(t, schema)
	assert.Equal(t, StatusWarning, schema.Status)
	assert.Equal(t, []string{"region"}, schema.Details.(SchemaDetails).ExtraColumns)

	file := report.Result(CheckFile)
	require.NotNil(t, file)
	assert.Equal(t, StatusFail, file.Status)

	rows := report.Result(CheckRows)
	require.NotNil(t, rows)
	assert.Equal(t, StatusPass, rows.Status)
}

func TestEngineRun_RowCountMismatchSkipsRowCheck(t *testing.T) {
	report, err := runEngine(t,
		"id\n1\n2\n",
		"id\n1\n")
	require.NoError(t, err)

	assert.Equal(t, StatusFail, report.OverallStatus) // file check fails

	rows := report.Result(CheckRows)
	require.NotNil(t, rows)
	assert.Equal(t, StatusWarning, rows.Status)
	assert.True(t, rows.Details.(RowDiffDetails).Skipped)
}

func TestEngineRun_NoCommonColumns(t *testing.T) {
	report, err := runEngine(t,
		"a\n1\n",
		"b\n1\n")
	require.NoError(t, err)

	assert.Equal(t, StatusFail, report.OverallStatus)

	stats := report.Result(CheckStats)
	require.NotNil(t, stats)
	assert.Equal(t, StatusPass, stats.Status)
	assert.Empty(t, stats.Details.(StatsDetails).Stats)

	rows := report.Result(CheckRows)
	require.NotNil(t, rows)
	assert.Equal(t, StatusWarning, rows.Status)
	assert.True(t, rows.Details.(RowDiffDetails).Skipped)
}

func TestEngineRun_LoadErrorAbortsBeforeChecks(t *testing.T) {
	_, err := runEngine(t, "id\n1,\"bad\n", "id\n1\n")
	require.Error(t, err)

	le, ok := table.AsLoadError(err)
	require.True(t, ok)
	assert.Equal(t, "source.csv", le.File)
}

func TestEngineRun_Idempotent(t *testing.T) {
	sourceCSV := "id,amount,name\n1,10,apple\n2,NULL,banana\n"
	targetCSV := "id,amount,name\n1,10,apple\n2,NULL,Banana\n"

	first, err := runEngine(t, sourceCSV, targetCSV)
	require.NoError(t, err)
	second, err := runEngine(t, sourceCSV, targetCSV)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngineRun_Cancelled(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, Config{},
		Input{Name: "s.csv", Data: []byte("id\n1\n")},
		Input{Name: "t.csv", Data: []byte("id\n1\n")},
	)
	assert.ErrorIs(t, err, context.Canceled)
}
