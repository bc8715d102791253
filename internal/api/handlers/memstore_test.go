package handlers

import (
	"context"
	"fmt"
	"sync"

	"pallet-returns-dashboard/internal/models"
	"pallet-returns-dashboard/internal/store"
)

// memStore is an in-memory ReturnStore with the same lookup rules as the
// Mongo store, for tests that need a working backend.
type memStore struct {
	mu      sync.Mutex
	records []models.ReturnRequest
	seq     int
}

func (m *memStore) index(id string) int {
	for i, r := range m.records {
		if string(r.ID) == id {
			return i
		}
	}
	for i, r := range m.records {
		if r.OrderID == id {
			return i
		}
	}
	return -1
}

func (m *memStore) Insert(_ context.Context, r *models.ReturnRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.OrderID != "" && m.index(r.OrderID) >= 0 {
		return store.ErrDuplicateOrderID
	}
	if r.ID.IsZero() {
		m.seq++
		r.ID = models.RecordID(fmt.Sprintf("rec-%03d", m.seq))
	}
	if r.OrderID == "" {
		r.OrderID = models.NewOrderID()
	}
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *memStore) FindAll(context.Context) ([]models.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ReturnRequest{}, m.records...), nil
}

func (m *memStore) FindByIdentifier(_ context.Context, id string) (models.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		return m.records[i], nil
	}
	return models.ReturnRequest{}, store.ErrNotFound
}

func (m *memStore) UpdateFields(_ context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error) {
	if err := patch.Validate(); err != nil {
		return models.ReturnRequest{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return models.ReturnRequest{}, store.ErrNotFound
	}
	patch.Apply(&m.records[i])
	return m.records[i], nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.records = append(m.records[:i], m.records[i+1:]...)
	return nil
}
