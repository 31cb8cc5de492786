package docstore

import (
	"context"
	"sync"

	"github.com/erazemk/garderoba/internal/model"
)

// Memory is a Store that keeps collections in process memory.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]model.Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]model.Record)}
}

func (m *Memory) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	if err := validCollection(collection); err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	key, err := NewKey()
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		c = make(map[string]model.Record)
		m.collections[collection] = c
	}
	c[key] = rec.Clone()
	return key, nil
}

func (m *Memory) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c := m.collections[collection]
	if len(c) == 0 {
		return nil, nil
	}
	out := make(map[string]model.Record, len(c))
	for k, v := range c {
		out[k] = v.Clone()
	}
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
