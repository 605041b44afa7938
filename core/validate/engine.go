package validate

import (
	"context"

	"datasure/core/table"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config echoes the free-text run configuration through to the report. The
// engine does not interpret any of it; the environment label is validated
// for display at the transport boundary.
type Config struct {
	ProjectName string
	ReportName  string
	Environment string
}

// Input is one file handed to a run: a display name plus its raw bytes. The
// caller is responsible for bounding the size of Data before handing it over.
type Input struct {
	Name string
	Data []byte
}

// Engine runs validation pipelines. It holds no per-run state, so one Engine
// serves any number of concurrent runs.
type Engine struct {
	loader *table.Loader
	logger *zap.Logger
}

// NewEngine creates an Engine. An empty charset list selects the default
// encoding preference list.
func NewEngine(logger *zap.Logger, charsets ...table.Charset) *Engine {
	return &Engine{
		loader: table.NewLoader(charsets...),
		logger: logger,
	}
}

// Run executes one full validation pipeline and returns the report.
//
// The two loads run in parallel; a LoadError from either aborts the run
// before any check executes. The file and schema checks run concurrently,
// then the statistics and row checks run concurrently once the schema
// alignment is available. Each run reads only its own two tables, so no
// stage takes a lock.
func (e *Engine) Run(ctx context.Context, cfg Config, source, target Input) (*ValidationReport, error) {
	var src, tgt *table.Table

	var loads errgroup.Group
	loads.Go(func() error {
		t, err := e.loader.Load(source.Name, table.RoleSource, source.Data)
		src = t
		return err
	})
	loads.Go(func() error {
		t, err := e.loader.Load(target.Name, table.RoleTarget, target.Data)
		tgt = t
		return err
	})
	if err := loads.Wait(); err != nil {
		e.logger.Warn("table load failed", zap.Error(err))
		return nil, err
	}

	var (
		fileResult   ValidationResult
		schemaResult ValidationResult
		alignment    Alignment
	)
	var shape errgroup.Group
	shape.Go(func() error {
		fileResult = CheckFiles(src, tgt)
		return nil
	})
	shape.Go(func() error {
		alignment = AlignSchemas(src, tgt)
		schemaResult = alignment.Result()
		return nil
	})
	if err := shape.Wait(); err != nil {
		return nil, err
	}

	var (
		statsResult ValidationResult
		rowResult   ValidationResult
	)
	g, checkCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := CompareStats(checkCtx, src, tgt, alignment.Common)
		statsResult = r
		return err
	})
	g.Go(func() error {
		r, err := DiffRows(checkCtx, src, tgt, alignment.Common)
		rowResult = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := []ValidationResult{fileResult, schemaResult, statsResult, rowResult}
	overall := CombineStatuses(fileResult.Status, schemaResult.Status, statsResult.Status, rowResult.Status)

	report := &ValidationReport{
		OverallStatus: overall,
		ProjectName:   cfg.ProjectName,
		ReportName:    cfg.ReportName,
		Environment:   cfg.Environment,
		SourceFile:    src.Name,
		TargetFile:    tgt.Name,
		SourceShape:   Shape{Rows: src.RowCount(), Columns: src.ColumnCount()},
		TargetShape:   Shape{Rows: tgt.RowCount(), Columns: tgt.ColumnCount()},
		Results:       results,
	}

	e.logger.Info("validation run completed",
		zap.String("overall_status", string(overall)),
		zap.Int("source_rows", src.RowCount()),
		zap.Int("target_rows", tgt.RowCount()),
		zap.Int("common_columns", len(alignment.Common)),
	)

	return report, nil
}
