package wardrobe

import (
	"context"
	"log/slog"
	"sync"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

// Form holds the draft of one category and submits it to the store.
// It is safe for concurrent use; at most one submission is in flight.
type Form struct {
	category model.Category
	store    docstore.Store

	mu     sync.Mutex
	draft  *model.Draft
	phase  Phase
	notice Notice
}

// NewForm returns an idle form with an empty draft.
func NewForm(c model.Category, s docstore.Store) *Form {
	return &Form{
		category: c,
		store:    s,
		draft:    model.NewDraft(c),
	}
}

// Category returns the form's category.
func (f *Form) Category() model.Category {
	return f.category
}

// Set updates one field of the draft.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Set(field, value)
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() *model.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Clone()
}

// Status returns the current phase and last notice.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Status{Phase: f.phase, Notice: f.notice}
}

// Pending reports whether a submission is in flight.
func (f *Form) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase == PhasePending
}

// ConsumeNotice returns the last notice and clears it.
func (f *Form) ConsumeNotice() Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.notice
	f.notice = Notice{}
	return n
}

// Submit appends the draft to the category's collection.
//
// An incomplete draft is rejected with a *model.ValidationError and nothing
// is written. While a submission is in flight further calls return
// ErrPending. On success the draft is reset; on failure it is kept so the
// user can retry. Either way the form leaves the pending phase before
// Submit returns.
func (f *Form) Submit(ctx context.Context) (model.Item, error) {
	f.mu.Lock()
	if f.phase == PhasePending {
		f.mu.Unlock()
		return model.Item{}, ErrPending
	}
	if err := f.draft.Validate(); err != nil {
		f.mu.Unlock()
		return model.Item{}, err
	}
	draft := f.draft.Clone()
	f.phase = PhasePending
	f.notice = Notice{}
	f.mu.Unlock()

	item, err := Add(ctx, f.store, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	msgs := categoryMessages[f.category]
	if err != nil {
		slog.Error("failed to add item", "category", f.category, "error", err)
		f.notice = Notice{Kind: NoticeFailure, Message: msgs.addFailed}
		f.phase = PhaseFailed
		return model.Item{}, err
	}

	slog.Info("item added", "category", f.category, "id", item.ID)
	f.notice = Notice{Kind: NoticeSuccess, Message: msgs.added}
	f.draft.Reset()
	f.phase = PhaseSucceeded
	return item, nil
}
