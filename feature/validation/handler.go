package validation

import (
	"io"
	"mime/multipart"
	"time"

	"datasure/core/logger"
	"datasure/core/server"
	"datasure/core/table"
	"datasure/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the validation feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/validate", h.HandleValidate)
	group.Post("/export-excel", h.HandleExportExcel)
	group.Get("/reference", h.HandleReference)
}

// validationRequest is the parsed multipart payload shared by both POST
// endpoints: the two files plus the free-text configuration strings.
type validationRequest struct {
	cfg    validate.Config
	source validate.Input
	target validate.Input
}

func parseRequest(c *fiber.Ctx) (*validationRequest, error) {
	source, err := readUpload(c, "source_file")
	if err != nil {
		return nil, err
	}
	target, err := readUpload(c, "target_file")
	if err != nil {
		return nil, err
	}

	project := c.FormValue("project_name")
	if project == "" {
		project = "DataSure Validation"
	}
	report := c.FormValue("report_name")
	if report == "" {
		report = "Data Validation Report"
	}

	return &validationRequest{
		cfg: validate.Config{
			ProjectName: project,
			ReportName:  report,
			// Display-only label; unknown values fall back to the default.
			Environment: server.NormalizeEnvironment(c.FormValue("environment")),
		},
		source: source,
		target: target,
	}, nil
}

func readUpload(c *fiber.Ctx, field string) (validate.Input, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return validate.Input{}, fiber.NewError(fiber.StatusBadRequest, "missing file field: "+field)
	}
	data, err := readFileHeader(fh)
	if err != nil {
		return validate.Input{}, fiber.NewError(fiber.StatusBadRequest, "reading upload "+field+": "+err.Error())
	}
	return validate.Input{Name: fh.Filename, Data: data}, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// HandleValidate runs the validation pipeline and returns the JSON report.
// @Summary Validate two exports
// @Description Compares a source and a target delimited-text export and returns the full validation report.
// @Tags validation
// @Accept mpfd
// @Produce json
// @Param source_file formData file true "Source export (CSV)"
// @Param target_file formData file true "Target export (CSV)"
// @Param project_name formData string false "Project name"
// @Param report_name formData string false "Report name"
// @Param environment formData string false "Deployment environment label (DEV, TEST, UAT, PROD)"
// @Success 200 {object} map[string]interface{} "Validation report"
// @Failure 400 {object} map[string]string "Unusable input file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := parseRequest(c)
	if err != nil {
		return err
	}

	l.Info("Starting validation run",
		zap.String("source", req.source.Name),
		zap.String("target", req.target.Name),
	)

	report, err := h.service.Validate(c.Context(), req.cfg, req.source, req.target)
	if err != nil {
		return loadFailure(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"validation_date": time.Now().Format(time.RFC3339),
		"report":          report,
	})
}

// HandleExportExcel runs the validation pipeline and returns an xlsx report.
// @Summary Export validation report as Excel
// @Description Runs the same pipeline as /api/validate and returns the report as a downloadable xlsx workbook.
// @Tags validation
// @Accept mpfd
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param source_file formData file true "Source export (CSV)"
// @Param target_file formData file true "Target export (CSV)"
// @Param project_name formData string false "Project name"
// @Param report_name formData string false "Report name"
// @Param environment formData string false "Deployment environment label (DEV, TEST, UAT, PROD)"
// @Success 200 {file} file "Excel report"
// @Failure 400 {object} map[string]string "Unusable input file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/export-excel [post]
func (h *Handler) HandleExportExcel(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := parseRequest(c)
	if err != nil {
		return err
	}

	content, filename, err := h.service.ExportExcel(c.Context(), req.cfg, req.source, req.target, time.Now())
	if err != nil {
		return loadFailure(c, l, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(content)
}

// HandleReference serves the static description of the check semantics.
// @Summary Check semantics reference
// @Description Returns the static documentation describing what each validation check does. Not derived from any run.
// @Tags validation
// @Produce json
// @Success 200 {object} map[string]string "Reference document"
// @Router /api/reference [get]
func (h *Handler) HandleReference(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"format":  "markdown",
		"content": referenceDocument,
	})
}

// loadFailure maps run errors to responses. Table-load failures are the
// caller's problem (400 with the offending file and row); anything else is a
// server error.
func loadFailure(c *fiber.Ctx, l *zap.Logger, err error) error {
	if le, ok := table.AsLoadError(err); ok {
		l.Warn("Validation input rejected", zap.Error(le))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": le.Error(),
			"kind":  string(le.Kind),
			"file":  le.File,
			"row":   le.RowIndex,
		})
	}
	l.Error("Validation run failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
