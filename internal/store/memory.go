package store

import (
	"context"
	"sync"
)

// Memory is the in-memory reference implementation of Store: a map guarded
// by a read-write mutex. Every operation is atomic with respect to the
// others; records are stored by value, so callers never alias the map.
type Memory[I comparable, R Record[I]] struct {
	mu      sync.RWMutex
	records map[I]R
}

func NewMemory[I comparable, R Record[I]]() *Memory[I, R] {
	return &Memory[I, R]{records: make(map[I]R)}
}

func (m *Memory[I, R]) GetAll(_ context.Context) ([]R, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]R, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, record)
	}
	return all, nil
}

func (m *Memory[I, R]) Get(_ context.Context, id I) (*R, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *Memory[I, R]) Put(_ context.Context, record R) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.Key()] = record
	return nil
}

func (m *Memory[I, R]) Delete(_ context.Context, id I) (*R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	delete(m.records, id)
	return &record, nil
}
