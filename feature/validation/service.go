package validation

import (
	"context"
	"fmt"
	"time"

	"datasure/core/validate"
	"datasure/feature/validation/export"

	"go.uber.org/zap"
)

// Service runs validation pipelines and derives exports from their reports.
type Service struct {
	engine *validate.Engine
	logger *zap.Logger
}

// NewService creates a new validation service.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		engine: validate.NewEngine(logger),
		logger: logger,
	}
}

// Validate runs one full pipeline over the two inputs.
func (s *Service) Validate(ctx context.Context, cfg validate.Config, source, target validate.Input) (*validate.ValidationReport, error) {
	return s.engine.Run(ctx, cfg, source, target)
}

// ExportExcel runs the pipeline and renders the report as an xlsx workbook.
// It returns the file content and a timestamped download name.
func (s *Service) ExportExcel(ctx context.Context, cfg validate.Config, source, target validate.Input, now time.Time) ([]byte, string, error) {
	report, err := s.engine.Run(ctx, cfg, source, target)
	if err != nil {
		return nil, "", err
	}

	content, err := export.Excel(report, now)
	if err != nil {
		return nil, "", fmt.Errorf("rendering excel report: %w", err)
	}

	filename := fmt.Sprintf("DataSure_Validation_Report_%s.xlsx", now.Format("20060102_150405"))
	return content, filename, nil
}
