package services

import "errors"

// Analytics service errors
var (
	// Dataset errors
	ErrEmptyDataset = errors.New("uploaded file is empty or could not be parsed")
	ErrNoDataset    = errors.New("no dataset loaded")

	// Query errors
	ErrAreaNotFound      = errors.New("no data found for area")
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
