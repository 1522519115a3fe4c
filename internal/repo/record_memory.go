package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

// InMemoryRecordInventory keeps records in a map keyed by ID.
type InMemoryRecordInventory struct {
	mu      sync.RWMutex
	records map[int]models.Record
	nextID  int
}

func NewInMemoryRecordInventory() *InMemoryRecordInventory {
	return &InMemoryRecordInventory{
		records: map[int]models.Record{},
		nextID:  1,
	}
}

func (r *InMemoryRecordInventory) List(_ context.Context) ([]models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.Record, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return *records[i].ID < *records[j].ID })
	return records, nil
}

func (r *InMemoryRecordInventory) Get(_ context.Context, id int) (models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}
	return rec, nil
}

func (r *InMemoryRecordInventory) Add(_ context.Context, record models.Record) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = models.IntPtr(r.nextID)
	r.records[r.nextID] = record
	r.nextID++
	return record, nil
}

func (r *InMemoryRecordInventory) Update(_ context.Context, id int, record models.Record) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return models.Record{}, ErrRecordNotFound
	}
	record.ID = models.IntPtr(id)
	r.records[id] = record
	return record, nil
}

func (r *InMemoryRecordInventory) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *InMemoryRecordInventory) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = map[int]models.Record{}
}
