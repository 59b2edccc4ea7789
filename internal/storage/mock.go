package storage

import (
	"context"
	"sort"
	"sync"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu    sync.RWMutex
	slots map[string]SaveSlot

	// Optional overrides for failure injection.
	SaveSlotFunc func(ctx context.Context, slot SaveSlot) error
	PingFunc     func(ctx context.Context) error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		slots: make(map[string]SaveSlot),
	}
}

func (m *MockStorage) SaveSlot(ctx context.Context, slot SaveSlot) error {
	if m.SaveSlotFunc != nil {
		return m.SaveSlotFunc(ctx, slot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot.ID] = slot
	return nil
}

func (m *MockStorage) GetSlot(ctx context.Context, id string) (*SaveSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slot, ok := m.slots[id]
	if !ok {
		return nil, &ErrSlotNotFound{ID: id}
	}
	return &slot, nil
}

func (m *MockStorage) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]SlotInfo, 0, len(m.slots))
	for _, slot := range m.slots {
		infos = append(infos, SlotInfo{
			ID:           slot.ID,
			Name:         slot.Name,
			LastModified: slot.LastModified,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].LastModified.After(infos[j].LastModified)
	})
	return infos, nil
}

func (m *MockStorage) DeleteSlot(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[id]; !ok {
		return &ErrSlotNotFound{ID: id}
	}
	delete(m.slots, id)
	return nil
}

func (m *MockStorage) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}
