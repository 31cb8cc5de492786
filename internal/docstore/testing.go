package docstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erazemk/garderoba/internal/model"
)

// ErrInjected is the cause of failures produced by Faulty.
var ErrInjected = errors.New("injected failure")

// NewTestStore returns an empty in-memory store that is closed when the test
// ends.
func NewTestStore(t *testing.T) *Memory {
	t.Helper()
	s := NewMemory()
	t.Cleanup(func() { s.Close() })
	return s
}

// Faulty wraps a Store and fails operations on demand. Block, if set, is
// waited on before each operation is forwarded; it lets tests hold an
// operation in flight.
type Faulty struct {
	Store

	mu         sync.Mutex
	failAppend bool
	failRead   bool
	Block      chan struct{}
}

// FailAppend makes subsequent appends fail (or succeed again).
func (f *Faulty) FailAppend(fail bool) {
	f.mu.Lock()
	f.failAppend = fail
	f.mu.Unlock()
}

// FailRead makes subsequent reads fail (or succeed again).
func (f *Faulty) FailRead(fail bool) {
	f.mu.Lock()
	f.failRead = fail
	f.mu.Unlock()
}

func (f *Faulty) wait(ctx context.Context) error {
	if f.Block == nil {
		return nil
	}
	select {
	case <-f.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Faulty) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	f.mu.Lock()
	fail := f.failAppend
	f.mu.Unlock()
	if fail {
		return "", storeError(OpAppend, collection, ErrInjected)
	}
	return f.Store.Append(ctx, collection, rec)
}

func (f *Faulty) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	if err := f.wait(ctx); err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}
	f.mu.Lock()
	fail := f.failRead
	f.mu.Unlock()
	if fail {
		return nil, storeError(OpReadAll, collection, ErrInjected)
	}
	return f.Store.ReadAll(ctx, collection)
}
