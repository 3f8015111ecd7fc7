package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/analytics"
	apierrors "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/errors"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/services"
)

// Table pagination defaults match the web client.
const (
	defaultTableLimit = 50
	maxTableLimit     = 500
)

// AnalyticsHandler handles the area analytics HTTP requests.
type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	validate     *validator.Validate
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		validate:     validator.New(),
		logger:       logger.With(slog.String("component", "analytics_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the analytics routes
func (h *AnalyticsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/areas", h.GetAreas)
	r.Get("/analyze", h.Analyze)
	r.Get("/chart", h.GetChart)
	r.Get("/table", h.GetTable)
	r.Get("/compare", h.Compare)
	r.Get("/export", h.Export)

	r.Route("/dataset", func(r chi.Router) {
		r.Get("/info", h.DatasetInfo)
		r.Post("/clear", h.ClearDataset)
	})

	return r
}

// areaQuery carries the single-area query parameters.
type areaQuery struct {
	Area string `validate:"required,min=1,max=200"`
}

// compareQuery carries the comparison query parameters.
type compareQuery struct {
	Area1 string `validate:"required,min=1,max=200"`
	Area2 string `validate:"required,min=1,max=200"`
}

// GetAreas handles GET /api/areas
func (h *AnalyticsHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	areas := h.service.ListAreas(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"areas": areas,
		"count": len(areas),
	})
}

// Analyze handles GET /api/analyze?area=
func (h *AnalyticsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	q := areaQuery{Area: r.URL.Query().Get("area")}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("area", "Area name is required"))
		return
	}

	summary, err := h.service.Summarize(r.Context(), q.Area)
	if err != nil {
		if errors.Is(err, services.ErrNoDataset) {
			h.errorHandler.HandleError(w, r, apierrors.ErrNoDatasetLoaded)
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, summary)
}

// GetChart handles GET /api/chart?area=&type=
func (h *AnalyticsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	q := areaQuery{Area: r.URL.Query().Get("area")}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("area", "Area name is required"))
		return
	}

	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = analytics.ChartPrice
	}
	switch kind {
	case analytics.ChartPrice, analytics.ChartDemand, analytics.ChartComposition:
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("type",
			fmt.Sprintf("Unknown chart type: %s", kind)))
		return
	}

	render.JSON(w, r, h.service.BuildChart(r.Context(), q.Area, kind))
}

// GetTable handles GET /api/table?area=&limit=&offset=
func (h *AnalyticsHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	q := areaQuery{Area: r.URL.Query().Get("area")}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("area", "Area name is required"))
		return
	}

	limit, err := queryInt(r, "limit", defaultTableLimit)
	if err != nil || limit < 1 || limit > maxTableLimit {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("limit",
			fmt.Sprintf("limit must be between 1 and %d", maxTableLimit)))
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("offset", "offset must be non-negative"))
		return
	}

	render.JSON(w, r, h.service.TableView(r.Context(), q.Area, limit, offset))
}

// Compare handles GET /api/compare?area1=&area2=
func (h *AnalyticsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := compareQuery{
		Area1: r.URL.Query().Get("area1"),
		Area2: r.URL.Query().Get("area2"),
	}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("area1/area2",
			"Both area names are required"))
		return
	}

	render.JSON(w, r, h.service.Compare(r.Context(), q.Area1, q.Area2))
}

// Export handles GET /api/export?area=&format=
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := areaQuery{Area: r.URL.Query().Get("area")}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("area", "Area name is required"))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = analytics.FormatCSV
	}

	payload, err := h.service.Export(r.Context(), q.Area, format)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format",
				fmt.Sprintf("Unsupported export format: %s", format)))
		case errors.Is(err, services.ErrAreaNotFound):
			h.errorHandler.HandleError(w, r, apierrors.NotFoundError(
				fmt.Sprintf("Data for area '%s'", q.Area)))
		default:
			h.errorHandler.HandleError(w, r, err)
		}
		return
	}

	filename := fmt.Sprintf("%s_data.%s", analytics.SheetName(q.Area), payload.Extension)
	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload.Data); err != nil {
		h.logger.WarnContext(r.Context(), "export write interrupted",
			slog.String("area", q.Area),
			slog.String("error", err.Error()))
	}
}

// DatasetInfo handles GET /api/dataset/info
func (h *AnalyticsHandler) DatasetInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.DatasetInfo(r.Context()))
}

// ClearDataset handles POST /api/dataset/clear
func (h *AnalyticsHandler) ClearDataset(w http.ResponseWriter, r *http.Request) {
	h.service.Clear(r.Context())
	render.JSON(w, r, map[string]string{
		"status":  "success",
		"message": "Dataset cleared",
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
