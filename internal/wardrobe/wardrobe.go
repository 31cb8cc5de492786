// Package wardrobe implements the category workflow: a form that appends
// items to a category's collection and a listing that reads the collection
// back on demand.
package wardrobe

import (
	"context"
	"errors"
	"fmt"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

var (
	// ErrPending is returned by Form.Submit while a submission is in flight.
	ErrPending = errors.New("submission already in progress")

	// ErrSuperseded is returned by Listing.Fetch when a newer fetch replaced it.
	ErrSuperseded = errors.New("fetch superseded by a newer one")
)

// Add validates the draft and appends it to its category's collection.
func Add(ctx context.Context, s docstore.Store, d *model.Draft) (model.Item, error) {
	if err := d.Validate(); err != nil {
		return model.Item{}, err
	}

	c := d.Category()
	rec := d.Record()
	key, err := s.Append(ctx, c.Collection(), rec)
	if err != nil {
		return model.Item{}, fmt.Errorf("adding %s: %w", c, err)
	}
	return model.Item{ID: key, Category: c, Fields: rec}, nil
}

// List reads a category's whole collection, oldest item first. An absent
// collection yields an empty, non-nil slice.
func List(ctx context.Context, s docstore.Store, c model.Category) ([]model.Item, error) {
	snapshot, err := s.ReadAll(ctx, c.Collection())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c, err)
	}
	return model.ItemsFromSnapshot(c, snapshot), nil
}
