package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/errors"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/services"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/validation"
)

// UploadHandler handles dataset upload requests.
type UploadHandler struct {
	service      AnalyticsServiceInterface
	validator    *validation.FileValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(service AnalyticsServiceInterface, validator *validation.FileValidator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *UploadHandler {
	return &UploadHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "upload_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the upload routes
func (h *UploadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/", h.Upload)
	return r
}

// Upload handles POST /api/upload. The workbook arrives as multipart form
// field "file".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.validator.MaxBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "No file provided"))
		return
	}
	defer file.Close()

	if err := h.validator.ValidateUpload(header.Filename, header.Size); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", err.Error()))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to read upload body",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.UploadError(err))
		return
	}

	result, err := h.service.Load(r.Context(), data, header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDataset) {
			h.errorHandler.HandleError(w, r, apierrors.New(
				http.StatusBadRequest,
				"EMPTY_DATASET",
				"Uploaded file contains no usable rows",
			))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}
