package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hallwright/scenario-workbench/pkg/export"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// ExportHandler renders a scenario document as printable Markdown.
type ExportHandler struct {
	logger *slog.Logger
}

func NewExportHandler(logger *slog.Logger) *ExportHandler {
	return &ExportHandler{logger: logger}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var doc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(export.Markdown(&doc))); err != nil {
		h.logger.Error("Error writing export", "error", err)
	}
}
