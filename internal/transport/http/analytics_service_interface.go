package http

import (
	"context"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/analytics"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/services"
)

// AnalyticsServiceInterface defines the service surface the handlers need.
// Declared here so tests can swap in a mock.
type AnalyticsServiceInterface interface {
	Load(ctx context.Context, data []byte, filename string) (*services.UploadResult, error)
	ListAreas(ctx context.Context) []string
	Summarize(ctx context.Context, area string) (analytics.Summary, error)
	BuildChart(ctx context.Context, area, kind string) analytics.ChartPayload
	TableView(ctx context.Context, area string, limit, offset int) analytics.TablePage
	Compare(ctx context.Context, area1, area2 string) analytics.Comparison
	Export(ctx context.Context, area, format string) (analytics.ExportPayload, error)
	DatasetInfo(ctx context.Context) services.DatasetInfo
	Clear(ctx context.Context)
	Health(ctx context.Context) services.HealthStatus
}
