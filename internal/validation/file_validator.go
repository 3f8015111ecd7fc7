package validation

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/config"
)

// FileValidator checks uploaded files against the configured limits before
// any bytes reach the parser.
type FileValidator struct {
	cfg    config.UploadConfig
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(cfg config.UploadConfig, logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{cfg: cfg, logger: logger}
}

// ValidateUpload checks the filename extension and declared size.
func (v *FileValidator) ValidateUpload(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))

	allowed := false
	for _, e := range v.cfg.AllowedExtensions {
		if ext == strings.ToLower(e) {
			allowed = true
			break
		}
	}
	if !allowed {
		v.logger.Warn("rejected upload with unsupported extension",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return fmt.Errorf("only Excel files (%s) are supported",
			strings.Join(v.cfg.AllowedExtensions, ", "))
	}

	if size > v.cfg.MaxBytes {
		v.logger.Warn("rejected oversized upload",
			slog.String("filename", filename),
			slog.Int64("size", size),
			slog.Int64("max_bytes", v.cfg.MaxBytes))
		return fmt.Errorf("file size too large, maximum is %d bytes", v.cfg.MaxBytes)
	}

	return nil
}

// MaxBytes exposes the configured size cap for request body limiting.
func (v *FileValidator) MaxBytes() int64 { return v.cfg.MaxBytes }
