package validation_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"datasure/feature/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	f := validation.NewFeature(zap.NewNop())
	require.NoError(t, f.Load(app))
	return app
}

type upload struct {
	field, name, content string
}

func buildRequest(t *testing.T, files []upload, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHandleValidate_Pass(t *testing.T) {
	app := newTestApp(t)

	body, contentType := buildRequest(t, []upload{
		{"source_file", "source.csv", "id,amount\n1,10\n"},
		{"target_file", "target.csv", "id,amount\n1,10\n"},
	}, map[string]string{
		"project_name": "Migration QA",
		"environment":  "PROD",
	})

	req := httptest.NewRequest("POST", "/api/validate", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Report  struct {
			OverallStatus string `json:"overall_status"`
			ProjectName   string `json:"project_name"`
			Environment   string `json:"environment"`
			Results       []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"results"`
		} `json:"report"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, "pass", envelope.Report.OverallStatus)
	assert.Equal(t, "Migration QA", envelope.Report.ProjectName)
	assert.Equal(t, "PROD", envelope.Report.Environment)
	require.Len(t, envelope.Report.Results, 4)
	assert.Equal(t, "File Validation", envelope.Report.Results[0].Name)
}

func TestHandleValidate_UnknownEnvironmentFallsBack(t *testing.T) {
	app := newTestApp(t)

	body, contentType := buildRequest(t, []upload{
		{"source_file", "source.csv", "id\n1\n"},
		{"target_file", "target.csv", "id\n1\n"},
	}, map[string]string{"environment": "staging"})

	req := httptest.NewRequest("POST", "/api/validate", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope struct {
		Report struct {
			Environment string `json:"environment"`
		} `json:"report"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "UAT", envelope.Report.Environment)
}

func TestHandleValidate_MissingFileIs400(t *testing.T) {
	app := newTestApp(t)

	body, contentType := buildRequest(t, []upload{
		{"source_file", "source.csv", "id\n1\n"},
	}, nil)

	req := httptest.NewRequest("POST", "/api/validate", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleValidate_UnparseableFileIs400(t *testing.T) {
	app := newTestApp(t)

	body, contentType := buildRequest(t, []upload{
		{"source_file", "source.csv", "id\n1,\"bad\n"},
		{"target_file", "target.csv", "id\n1\n"},
	}, nil)

	req := httptest.NewRequest("POST", "/api/validate", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Kind string `json:"kind"`
		File string `json:"file"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "malformed_row", payload.Kind)
	assert.Equal(t, "source.csv", payload.File)
}

func TestHandleExportExcel_ReturnsWorkbook(t *testing.T) {
	app := newTestApp(t)

	body, contentType := buildRequest(t, []upload{
		{"source_file", "source.csv", "id,amount\n1,10\n"},
		{"target_file", "target.csv", "id,amount\n1,11\n"},
	}, nil)

	req := httptest.NewRequest("POST", "/api/export-excel", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "DataSure_Validation_Report_")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestHandleReference(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/reference", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Format  string `json:"format"`
		Content string `json:"content"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "markdown", payload.Format)
	assert.Contains(t, payload.Content, "File Validation")
	assert.Contains(t, payload.Content, "Row-Level Differences")
}
