package dataset

import (
	"log/slog"
	"sync"
)

// Registry owns the single process-wide dataset slot. Load replaces the
// active table wholesale; readers get a snapshot reference and must not
// mutate it. All slot access is serialized through the mutex so a reader
// never observes a partially-replaced table.
type Registry struct {
	mu     sync.RWMutex
	table  *Table
	source []byte
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger.With(slog.String("component", "dataset_registry"))}
}

// Load normalizes the uploaded workbook bytes and installs the result as the
// active dataset, replacing any prior one. Unreadable input degrades to an
// empty table; the caller decides whether that is worth reporting.
func (r *Registry) Load(source []byte) (*Table, Report) {
	raw, err := ReadWorkbook(source)
	if err != nil {
		r.logger.Warn("workbook unreadable, installing empty dataset",
			slog.String("error", err.Error()))
		raw = nil
	}

	table, report := Normalize(raw)

	r.mu.Lock()
	r.table = table
	if table.IsEmpty() {
		r.source = nil
	} else {
		r.source = source
	}
	r.mu.Unlock()

	r.logger.Info("dataset loaded",
		slog.Int("rows", report.Rows),
		slog.Int("columns", len(report.Columns)),
		slog.Int("year_warnings", report.YearWarnings))

	return table, report
}

// Current returns the active dataset. If nothing is cached but a source was
// remembered, the table is rebuilt from it; otherwise an empty table is
// returned.
func (r *Registry) Current() *Table {
	r.mu.RLock()
	table, source := r.table, r.source
	r.mu.RUnlock()

	if table != nil {
		return table
	}
	if source != nil {
		table, _ = r.Load(source)
		return table
	}
	return Empty()
}

// Clear drops the cached table and the remembered source.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.table = nil
	r.source = nil
	r.mu.Unlock()
	r.logger.Info("dataset cleared")
}
