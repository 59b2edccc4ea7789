package storage

import (
	"context"
	"time"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// SaveSlot is one named save of a scenario document. Data is the full
// serialized scenario; the metadata fields exist so a slot list can be
// rendered without deserializing every document.
type SaveSlot struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	LastModified time.Time          `json:"last_modified"`
	Data         *scenario.Scenario `json:"data"`
}

// SlotInfo is the listing view of a slot, without the document body.
type SlotInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"last_modified"`
}

// Storage persists scenario save slots.
type Storage interface {
	// SaveSlot writes a slot, overwriting any slot with the same id.
	SaveSlot(ctx context.Context, slot SaveSlot) error

	// GetSlot loads a slot by id.
	GetSlot(ctx context.Context, id string) (*SaveSlot, error)

	// ListSlots returns metadata for every slot, newest first.
	ListSlots(ctx context.Context) ([]SlotInfo, error)

	// DeleteSlot removes a slot. Deleting an absent slot is an error.
	DeleteSlot(ctx context.Context, id string) error

	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ErrSlotNotFound is returned when a slot id has no stored save.
type ErrSlotNotFound struct {
	ID string
}

func (e *ErrSlotNotFound) Error() string {
	return "save slot not found: " + e.ID
}
