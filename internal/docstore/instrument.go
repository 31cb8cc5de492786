package docstore

import (
	"context"
	"time"

	"github.com/erazemk/garderoba/internal/model"
)

// Observer is told about every store operation.
type Observer interface {
	ObserveStoreOp(op, collection string, err error, elapsed time.Duration)
}

// Instrumented reports the outcome and latency of each operation of the
// wrapped Store to an Observer.
type Instrumented struct {
	Store
	observer Observer
}

// Instrument wraps s so that obs sees every operation.
func Instrument(s Store, obs Observer) *Instrumented {
	return &Instrumented{Store: s, observer: obs}
}

func (i *Instrumented) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	start := time.Now()
	key, err := i.Store.Append(ctx, collection, rec)
	i.observer.ObserveStoreOp(OpAppend, collection, err, time.Since(start))
	return key, err
}

func (i *Instrumented) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	start := time.Now()
	out, err := i.Store.ReadAll(ctx, collection)
	i.observer.ObserveStoreOp(OpReadAll, collection, err, time.Since(start))
	return out, err
}

// Unwrap returns the wrapped store.
func (i *Instrumented) Unwrap() Store {
	return i.Store
}
