package wardrobe

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

// Listing shows the most recently fetched snapshot of a category's
// collection. Fetching is on demand; a new fetch cancels any fetch still in
// flight, so the latest request always determines what is shown.
type Listing struct {
	category model.Category
	store    docstore.Store

	mu      sync.Mutex
	items   []model.Item
	fetched bool
	phase   Phase
	notice  Notice
	seq     uint64
	cancel  context.CancelFunc
}

// NewListing returns an idle listing with nothing fetched.
func NewListing(c model.Category, s docstore.Store) *Listing {
	return &Listing{category: c, store: s}
}

// Category returns the listing's category.
func (l *Listing) Category() model.Category {
	return l.category
}

// Fetch reads the whole collection and replaces the shown items with it.
//
// An absent or empty collection shows no items and sets an empty notice. On
// failure the shown items are kept, a failure notice is set and the error is
// logged and returned. If another Fetch starts before this one completes,
// this one is cancelled and returns ErrSuperseded without touching the view.
func (l *Listing) Fetch(ctx context.Context) ([]model.Item, error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	l.cancel = cancel
	l.phase = PhasePending
	l.mu.Unlock()

	items, err := List(ctx, l.store, l.category)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		return nil, ErrSuperseded
	}
	l.cancel = nil

	msgs := categoryMessages[l.category]
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("failed to fetch items", "category", l.category, "error", err)
		}
		l.notice = Notice{Kind: NoticeFailure, Message: msgs.fetchFailed}
		l.phase = PhaseFailed
		return nil, err
	}

	l.items = items
	l.fetched = true
	if len(items) == 0 {
		l.notice = Notice{Kind: NoticeEmpty, Message: msgs.empty}
	} else {
		l.notice = Notice{}
	}
	l.phase = PhaseSucceeded
	return slices.Clone(items), nil
}

// Items returns the items currently shown.
func (l *Listing) Items() []model.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Fetched reports whether a fetch has ever completed successfully.
func (l *Listing) Fetched() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetched
}

// Status returns the current phase and last notice.
func (l *Listing) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{Phase: l.phase, Notice: l.notice}
}

// Loading reports whether a fetch is in flight.
func (l *Listing) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == PhasePending
}

// ConsumeNotice returns the last notice and clears it.
func (l *Listing) ConsumeNotice() Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.notice
	l.notice = Notice{}
	return n
}

// Close cancels a fetch in flight. The cancelled fetch still completes and
// reports a failure.
func (l *Listing) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}
