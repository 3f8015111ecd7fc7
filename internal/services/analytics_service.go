package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/analytics"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/narrative"
)

// narrativeTimeout bounds the optional external narrative call so a slow
// generator never stalls the summary path.
const narrativeTimeout = 10 * time.Second

// UploadResult describes a successful dataset load.
type UploadResult struct {
	Status       string   `json:"status"`
	Message      string   `json:"message"`
	Areas        []string `json:"areas"`
	RecordCount  int      `json:"record_count"`
	ColumnsFound []string `json:"columns_found"`
	YearWarnings int      `json:"year_warnings,omitempty"`
	DataSource   string   `json:"data_source"`
}

// DatasetInfo describes the currently loaded dataset.
type DatasetInfo struct {
	Loaded         bool     `json:"loaded"`
	RecordCount    int      `json:"record_count"`
	AreaCount      int      `json:"area_count"`
	Columns        []string `json:"columns"`
	AreasSample    []string `json:"areas_sample"`
	YearsAvailable []int    `json:"years_available"`
	DataSource     string   `json:"data_source"`
}

// HealthStatus is the service health payload.
type HealthStatus struct {
	Status             string `json:"status"`
	Service            string `json:"service"`
	DatasetLoaded      bool   `json:"dataset_loaded"`
	AreasCount         int    `json:"areas_count"`
	RecordsCount       int    `json:"records_count"`
	DataSource         string `json:"data_source"`
	NarrativeAvailable bool   `json:"narrative_available"`
}

// AnalyticsService is the facade the HTTP layer talks to. It owns the
// dataset registry, runs the pure analytics operations over snapshots, and
// guards every read path so a fault degrades to an error-tagged payload
// instead of propagating.
type AnalyticsService struct {
	registry *dataset.Registry
	narrator narrative.Generator
	logger   *slog.Logger
	metrics  *Metrics
}

// NewAnalyticsService creates the service. narrator may be nil; the
// deterministic local narrative is used in that case.
func NewAnalyticsService(registry *dataset.Registry, narrator narrative.Generator, logger *slog.Logger, metrics *Metrics) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		registry: registry,
		narrator: narrator,
		logger:   logger.With(slog.String("component", "analytics_service")),
		metrics:  metrics,
	}
}

// observe records one operation for the metrics endpoint.
func (s *AnalyticsService) observe(operation string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Queries.WithLabelValues(operation).Inc()
	s.metrics.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Load normalizes uploaded workbook bytes and installs them as the active
// dataset. An empty or unreadable file returns ErrEmptyDataset so the
// transport layer can reject the upload.
func (s *AnalyticsService) Load(ctx context.Context, data []byte, filename string) (*UploadResult, error) {
	defer s.observe("load", time.Now())
	if s.metrics != nil {
		s.metrics.Uploads.Inc()
	}

	table, report := s.registry.Load(data)
	if table.IsEmpty() {
		return nil, ErrEmptyDataset
	}

	s.logger.InfoContext(ctx, "dataset uploaded",
		slog.String("filename", filename),
		slog.Int("records", report.Rows),
		slog.Int("columns", len(report.Columns)),
		slog.Int("year_warnings", report.YearWarnings))

	return &UploadResult{
		Status:       "success",
		Message:      fmt.Sprintf("File '%s' uploaded successfully.", filename),
		Areas:        analytics.ListAreas(table),
		RecordCount:  table.RowCount(),
		ColumnsFound: report.Columns,
		YearWarnings: report.YearWarnings,
		DataSource:   analytics.SourceUploaded,
	}, nil
}

// ListAreas returns the distinct areas of the active dataset, ascending.
func (s *AnalyticsService) ListAreas(ctx context.Context) []string {
	defer s.observe("areas", time.Now())
	return analytics.ListAreas(s.registry.Current())
}

// Summarize builds the analysis summary for one area. ErrNoDataset is
// returned when nothing is loaded; any internal fault degrades to an
// error-tagged summary.
func (s *AnalyticsService) Summarize(ctx context.Context, area string) (result analytics.Summary, err error) {
	defer s.observe("summarize", time.Now())
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "summary generation failed",
				slog.String("area", area), slog.Any("panic", r))
			result, err = errorSummary(area), nil
		}
	}()

	table := s.registry.Current()
	if table.IsEmpty() {
		return analytics.Summary{}, ErrNoDataset
	}

	summary := analytics.Summarize(analytics.ResolveArea(table, area), area)
	if summary.DataSource == analytics.SourceUploaded {
		summary.AISummary = s.narrate(ctx, area, summary)
	}
	return summary, nil
}

// narrate attaches the narrative text: generated when a narrator is
// configured and succeeds, the deterministic fallback otherwise.
func (s *AnalyticsService) narrate(ctx context.Context, area string, summary analytics.Summary) string {
	digest := buildDigest(area, summary)
	fallback := narrative.Fallback(digest)
	if s.narrator == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	text, err := s.narrator.Generate(ctx, digest)
	if err != nil || text == "" {
		s.logger.WarnContext(ctx, "narrative generator failed, using fallback",
			slog.String("area", area), slog.Any("error", err))
		return fallback
	}
	return text
}

// buildDigest condenses a summary into the structure handed to narrative
// generators. Column order follows the configured lists so output is stable.
func buildDigest(area string, summary analytics.Summary) narrative.Digest {
	d := narrative.Digest{
		Area:         area,
		RecordCount:  summary.KeyMetrics.RecordCount,
		YearCoverage: summary.KeyMetrics.AreaCoverage,
	}
	for _, col := range analytics.RateColumns {
		if stats, ok := summary.KeyMetrics.PriceData[col]; ok {
			d.AverageRates = append(d.AverageRates, narrative.Figure{
				Label: analytics.DisplayName(col),
				Value: stats.Avg,
			})
		}
	}
	for _, col := range analytics.SalesColumns {
		if stats, ok := summary.KeyMetrics.SalesData[col]; ok {
			d.SalesTotals = append(d.SalesTotals, narrative.Figure{
				Label: analytics.DisplayName(col),
				Value: stats.Total,
			})
		}
	}
	return d
}

func errorSummary(area string) analytics.Summary {
	return analytics.Summary{
		Summary:   fmt.Sprintf("Error analyzing data for %s.", area),
		AISummary: "Unable to generate analysis.",
		Years:     []int{},
		KeyMetrics: analytics.KeyMetrics{
			PriceData:    map[string]analytics.PriceStats{},
			SalesData:    map[string]analytics.SalesStats{},
			AreaCoverage: "N/A",
		},
		DataSource: analytics.SourceError,
	}
}

// BuildChart produces chart series for one area and kind. Faults degrade to
// an error-tagged empty payload.
func (s *AnalyticsService) BuildChart(ctx context.Context, area, kind string) (result analytics.ChartPayload) {
	defer s.observe("chart", time.Now())
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "chart generation failed",
				slog.String("area", area), slog.String("kind", kind), slog.Any("panic", r))
			result = analytics.ChartPayload{
				Labels:     []string{},
				Datasets:   []analytics.ChartDataset{},
				DataSource: analytics.SourceError,
			}
		}
	}()

	return analytics.BuildChart(analytics.ResolveArea(s.registry.Current(), area), kind)
}

// TableView returns one formatted page of the filtered subset.
func (s *AnalyticsService) TableView(ctx context.Context, area string, limit, offset int) (result analytics.TablePage) {
	defer s.observe("table", time.Now())
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "table view failed",
				slog.String("area", area), slog.Any("panic", r))
			result = analytics.TablePage{
				Columns:    []string{},
				Rows:       [][]interface{}{},
				DataSource: analytics.SourceError,
			}
		}
	}()

	return analytics.TableSlice(analytics.ResolveArea(s.registry.Current(), area), limit, offset)
}

// Compare contrasts the aggregate metrics of two areas.
func (s *AnalyticsService) Compare(ctx context.Context, area1, area2 string) (result analytics.Comparison) {
	defer s.observe("compare", time.Now())
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "comparison failed",
				slog.String("area1", area1), slog.String("area2", area2), slog.Any("panic", r))
			result = analytics.Comparison{Error: "Error comparing areas"}
		}
	}()

	table := s.registry.Current()
	return analytics.CompareAreas(
		analytics.ResolveArea(table, area1),
		analytics.ResolveArea(table, area2),
		area1, area2,
	)
}

// Export serializes the filtered subset. ErrUnsupportedFormat for unknown
// formats, ErrAreaNotFound when the area matches nothing.
func (s *AnalyticsService) Export(ctx context.Context, area, format string) (analytics.ExportPayload, error) {
	defer s.observe("export", time.Now())

	switch format {
	case analytics.FormatCSV, analytics.FormatExcel, analytics.FormatJSON:
	default:
		return analytics.ExportPayload{}, ErrUnsupportedFormat
	}

	sub := analytics.ResolveArea(s.registry.Current(), area)
	payload, ok := analytics.Export(sub, area, format)
	if !ok {
		return analytics.ExportPayload{}, ErrAreaNotFound
	}
	return payload, nil
}

// DatasetInfo reports the state of the active dataset.
func (s *AnalyticsService) DatasetInfo(ctx context.Context) DatasetInfo {
	defer s.observe("info", time.Now())

	table := s.registry.Current()
	areas := analytics.ListAreas(table)

	info := DatasetInfo{
		Loaded:         !table.IsEmpty(),
		RecordCount:    table.RowCount(),
		AreaCount:      len(areas),
		Columns:        []string{},
		AreasSample:    []string{},
		YearsAvailable: analytics.Years(table),
		DataSource:     analytics.SourceNoData,
	}
	if info.Loaded {
		info.Columns = table.Columns()
		info.DataSource = analytics.SourceUploaded
	}
	if len(areas) > 5 {
		areas = areas[:5]
	}
	info.AreasSample = areas
	return info
}

// Clear drops the active dataset.
func (s *AnalyticsService) Clear(ctx context.Context) {
	defer s.observe("clear", time.Now())
	s.registry.Clear()
	s.logger.InfoContext(ctx, "dataset cleared by request")
}

// Health reports service liveness and dataset state.
func (s *AnalyticsService) Health(ctx context.Context) HealthStatus {
	table := s.registry.Current()
	areas := analytics.ListAreas(table)

	status := HealthStatus{
		Status:             "healthy",
		Service:            "Real Estate Analysis API",
		DatasetLoaded:      !table.IsEmpty(),
		AreasCount:         len(areas),
		RecordsCount:       table.RowCount(),
		DataSource:         analytics.SourceNoData,
		NarrativeAvailable: s.narrator != nil,
	}
	if status.DatasetLoaded {
		status.DataSource = analytics.SourceUploaded
	}
	return status
}
