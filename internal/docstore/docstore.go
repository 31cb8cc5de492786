// Package docstore is the client side of the document store: named
// collections of records addressed by store-generated keys.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/garderoba/internal/model"
)

// Store appends records to collections and reads collections back whole.
type Store interface {
	// Append writes rec as a new child of collection and returns the key the
	// store assigned to it. Keys are unique and sort in creation order.
	Append(ctx context.Context, collection string, rec model.Record) (string, error)

	// ReadAll returns the whole collection keyed by record key. A collection
	// that does not exist or holds nothing yields a nil map and no error.
	ReadAll(ctx context.Context, collection string) (map[string]model.Record, error)

	Close() error
}

// Store operations.
const (
	OpAppend  = "append"
	OpReadAll = "read_all"
)

// StoreError is returned for every failed store operation, whatever the
// cause.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("docstore: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is or wraps a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func storeError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// NewKey returns a fresh record key. Keys are time-ordered UUIDs, so their
// string form sorts in creation order.
func NewKey() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func validCollection(collection string) error {
	if collection == "" {
		return errors.New("empty collection name")
	}
	return nil
}
