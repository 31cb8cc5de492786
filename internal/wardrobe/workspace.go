package wardrobe

import (
	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

// Workspace is one user's set of forms and listings, one of each per
// category, all sharing the same store.
type Workspace struct {
	forms    map[model.Category]*Form
	listings map[model.Category]*Listing
}

// NewWorkspace returns a workspace whose forms and listings use s.
func NewWorkspace(s docstore.Store) *Workspace {
	ws := &Workspace{
		forms:    make(map[model.Category]*Form),
		listings: make(map[model.Category]*Listing),
	}
	for _, c := range model.Categories() {
		ws.forms[c] = NewForm(c, s)
		ws.listings[c] = NewListing(c, s)
	}
	return ws
}

// Form returns the category's form.
func (ws *Workspace) Form(c model.Category) *Form {
	return ws.forms[c]
}

// Listing returns the category's listing.
func (ws *Workspace) Listing(c model.Category) *Listing {
	return ws.listings[c]
}

// Close cancels any fetches in flight.
func (ws *Workspace) Close() {
	for _, l := range ws.listings {
		l.Close()
	}
}
