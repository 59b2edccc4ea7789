package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hallwright/scenario-workbench/internal/storage"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// SavesHandler serves the save slot CRUD endpoints.
type SavesHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewSavesHandler(store storage.Storage, logger *slog.Logger) *SavesHandler {
	return &SavesHandler{
		storage: store,
		logger:  logger,
	}
}

// SaveRequest is the PUT body. LastModified is stamped server-side.
type SaveRequest struct {
	Name string             `json:"name"`
	Data *scenario.Scenario `json:"data"`
}

func (r SaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Data, validation.NotNil),
	)
}

func (h *SavesHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.storage.ListSlots(r.Context())
	if err != nil {
		h.logger.Error("Failed to list save slots", "error", err)
		http.Error(w, "Failed to list save slots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, infos)
}

func (h *SavesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	slot, err := h.storage.GetSlot(r.Context(), id)
	if err != nil {
		var notFound *storage.ErrSlotNotFound
		if errors.As(err, &notFound) {
			http.Error(w, "Save slot not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get save slot", "error", err, "id", id)
		http.Error(w, "Failed to retrieve save slot", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, slot)
}

func (h *SavesHandler) Put(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slot := storage.SaveSlot{
		ID:           id,
		Name:         req.Name,
		LastModified: time.Now().UTC(),
		Data:         req.Data,
	}
	if err := h.storage.SaveSlot(r.Context(), slot); err != nil {
		h.logger.Error("Failed to write save slot", "error", err, "id", id)
		http.Error(w, "Failed to write save slot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, storage.SlotInfo{
		ID:           slot.ID,
		Name:         slot.Name,
		LastModified: slot.LastModified,
	})
}

func (h *SavesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.storage.DeleteSlot(r.Context(), id); err != nil {
		var notFound *storage.ErrSlotNotFound
		if errors.As(err, &notFound) {
			http.Error(w, "Save slot not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete save slot", "error", err, "id", id)
		http.Error(w, "Failed to delete save slot", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}
