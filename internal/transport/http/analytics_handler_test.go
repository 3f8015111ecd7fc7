package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/analytics"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/config"
	apierrors "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/errors"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/services"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/validation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockService is a canned-response AnalyticsServiceInterface.
type mockService struct {
	loadResult *services.UploadResult
	loadErr    error
	areas      []string
	summary    analytics.Summary
	summaryErr error
	export     analytics.ExportPayload
	exportErr  error
	cleared    bool
}

func (m *mockService) Load(ctx context.Context, data []byte, filename string) (*services.UploadResult, error) {
	return m.loadResult, m.loadErr
}
func (m *mockService) ListAreas(ctx context.Context) []string { return m.areas }
func (m *mockService) Summarize(ctx context.Context, area string) (analytics.Summary, error) {
	return m.summary, m.summaryErr
}
func (m *mockService) BuildChart(ctx context.Context, area, kind string) analytics.ChartPayload {
	return analytics.ChartPayload{Labels: []string{}, Datasets: []analytics.ChartDataset{}, DataSource: analytics.SourceNoData}
}
func (m *mockService) TableView(ctx context.Context, area string, limit, offset int) analytics.TablePage {
	return analytics.TablePage{Columns: []string{}, Rows: [][]interface{}{}, DataSource: analytics.SourceNoData}
}
func (m *mockService) Compare(ctx context.Context, area1, area2 string) analytics.Comparison {
	return analytics.Comparison{Area1: area1, Area2: area2}
}
func (m *mockService) Export(ctx context.Context, area, format string) (analytics.ExportPayload, error) {
	return m.export, m.exportErr
}
func (m *mockService) DatasetInfo(ctx context.Context) services.DatasetInfo {
	return services.DatasetInfo{Loaded: false, DataSource: analytics.SourceNoData}
}
func (m *mockService) Clear(ctx context.Context) { m.cleared = true }
func (m *mockService) Health(ctx context.Context) services.HealthStatus {
	return services.HealthStatus{Status: "healthy"}
}

func newAnalyticsHandler(svc AnalyticsServiceInterface) *AnalyticsHandler {
	return NewAnalyticsHandler(svc, testLogger(), apierrors.NewErrorHandler(testLogger()))
}

func TestGetAreas(t *testing.T) {
	svc := &mockService{areas: []string{"Baner", "Wakad"}}
	h := newAnalyticsHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/areas", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])
}

func TestAnalyzeRequiresArea(t *testing.T) {
	h := newAnalyticsHandler(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAnalyzeWithoutDataset(t *testing.T) {
	h := newAnalyticsHandler(&mockService{summaryErr: services.ErrNoDataset})

	req := httptest.NewRequest(http.MethodGet, "/analyze?area=Wakad", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_DATASET")
}

func TestAnalyzeSuccess(t *testing.T) {
	h := newAnalyticsHandler(&mockService{summary: analytics.Summary{
		Summary:    "Real estate analysis for Wakad",
		DataSource: analytics.SourceUploaded,
	}})

	req := httptest.NewRequest(http.MethodGet, "/analyze?area=Wakad", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "uploaded_excel_file")
}

func TestGetChartRejectsUnknownKind(t *testing.T) {
	h := newAnalyticsHandler(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/chart?area=Wakad&type=scatter", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTableRejectsBadPagination(t *testing.T) {
	h := newAnalyticsHandler(&mockService{})

	tests := []struct {
		name  string
		query string
	}{
		{name: "limit zero", query: "limit=0"},
		{name: "limit too large", query: "limit=9999"},
		{name: "limit not a number", query: "limit=abc"},
		{name: "negative offset", query: "offset=-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/table?area=Wakad&"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCompareRequiresBothAreas(t *testing.T) {
	h := newAnalyticsHandler(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/compare?area1=Wakad", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportSetsDownloadHeaders(t *testing.T) {
	h := newAnalyticsHandler(&mockService{export: analytics.ExportPayload{
		Data:        []byte("a,b\n1,2\n"),
		ContentType: "text/csv; charset=utf-8",
		Extension:   "csv",
	}})

	req := httptest.NewRequest(http.MethodGet, "/export?area=Wakad&format=csv", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Wakad_data.csv")
}

func TestExportUnknownArea(t *testing.T) {
	h := newAnalyticsHandler(&mockService{exportErr: services.ErrAreaNotFound})

	req := httptest.NewRequest(http.MethodGet, "/export?area=Nowhere&format=csv", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearDataset(t *testing.T) {
	svc := &mockService{}
	h := newAnalyticsHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/dataset/clear", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.cleared)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	h := newUploadHandler(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("no multipart"))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsWrongExtension(t *testing.T) {
	h := newUploadHandler(&mockService{})

	req := multipartUpload(t, "rates.csv", []byte("a,b\n"))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "only Excel files")
}

func TestUploadEmptyDataset(t *testing.T) {
	h := newUploadHandler(&mockService{loadErr: services.ErrEmptyDataset})

	req := multipartUpload(t, "rates.xlsx", []byte("garbage"))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_DATASET")
}

func TestUploadSuccess(t *testing.T) {
	h := newUploadHandler(&mockService{loadResult: &services.UploadResult{
		Status:     "success",
		Areas:      []string{"Wakad"},
		DataSource: analytics.SourceUploaded,
	}})

	req := multipartUpload(t, "rates.xlsx", []byte("workbook bytes"))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "success")
}

func newUploadHandler(svc AnalyticsServiceInterface) *UploadHandler {
	validator := validation.NewFileValidator(config.UploadConfig{
		MaxBytes:          1 << 20,
		AllowedExtensions: []string{".xlsx", ".xls"},
	}, testLogger())
	return NewUploadHandler(svc, validator, testLogger(), apierrors.NewErrorHandler(testLogger()))
}

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
