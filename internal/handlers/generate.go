package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hallwright/scenario-workbench/internal/services"
	"github.com/hallwright/scenario-workbench/pkg/prompts"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// GenerateHandler runs one model generation against a scenario document
// carried in the request and returns the merged document. The API holds
// no document state between calls; the client owns the document and
// saves it explicitly.
type GenerateHandler struct {
	author *services.AuthorService
	logger *slog.Logger
}

func NewGenerateHandler(author *services.AuthorService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		author: author,
		logger: logger,
	}
}

type GenerateRequest struct {
	Section  prompts.Section    `json:"section"`
	Input    string             `json:"input"`
	Tone     string             `json:"tone,omitempty"`
	EventID  string             `json:"event_id,omitempty"`
	Scenario *scenario.Scenario `json:"scenario"`
}

func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Section, validation.Required,
			validation.By(func(value interface{}) error {
				if s, _ := value.(prompts.Section); !s.Valid() {
					return validation.NewError("validation_section", "unknown section")
				}
				return nil
			})),
		validation.Field(&r.Input, validation.Required),
		validation.Field(&r.Scenario, validation.NotNil),
		validation.Field(&r.EventID,
			validation.Required.When(r.Section == prompts.SectionScene).
				Error("event_id is required for scene generation")),
	)
}

type GenerateResponse struct {
	Scenario *scenario.Scenario `json:"scenario"`
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("Generation requested",
		"section", string(req.Section),
		"tone", req.Tone)

	merged, err := h.author.Generate(r.Context(), req.Scenario, services.GenerateRequest{
		Section: req.Section,
		Input:   req.Input,
		Tone:    req.Tone,
		EventID: req.EventID,
	})
	if err != nil {
		h.logger.Error("Generation failed", "section", string(req.Section), "error", err)
		// The client shows this message and keeps its document as-is.
		http.Error(w, "Generation failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, GenerateResponse{Scenario: merged})
}
