package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/wardrobe"
)

// otherSuffix names the free-text input that may replace an "others" choice.
const otherSuffix = "Other"

type fieldView struct {
	model.Field
	Value   string
	Missing bool

	// Other holds a free-text value that replaced the "others" choice.
	Other string
}

// newFieldView shows a choice field's free-text value as the "others"
// choice with its text in the companion input.
func newFieldView(f model.Field, value string, missing bool) fieldView {
	v := fieldView{Field: f, Value: value, Missing: missing}
	if value == "" || !f.HasChoices() {
		return v
	}
	for _, c := range f.Choices {
		if c.Value == value {
			return v
		}
	}
	if other := f.OtherChoice(); other != "" {
		v.Value = other
		v.Other = value
	}
	return v
}

type categoryPage struct {
	PageData
	Schema       model.Schema
	Fields       []fieldView
	Pending      bool
	FormNotice   wardrobe.Notice
	Loading      bool
	Fetched      bool
	Items        []model.Item
	ListNotice   wardrobe.Notice
	InvalidInput bool
}

// categoryFromPath resolves the {category} path value, writing a 404 if it
// is not a known category.
func categoryFromPath(w http.ResponseWriter, r *http.Request) (model.Category, bool) {
	c, err := model.ParseCategory(r.PathValue("category"))
	if err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return c, true
}

// renderCategory renders the category page. Pending notices are consumed so
// each is shown once.
func (s *Server) renderCategory(w http.ResponseWriter, status int, sess *session, c model.Category, missing []string) {
	form := sess.workspace.Form(c)
	listing := sess.workspace.Listing(c)
	schema := c.Schema()
	draft := form.Draft()

	isMissing := make(map[string]bool, len(missing))
	for _, name := range missing {
		isMissing[name] = true
	}
	fields := make([]fieldView, len(schema.Fields))
	for i, f := range schema.Fields {
		fields[i] = newFieldView(f, draft.Get(f.Name), isMissing[f.Name])
	}

	s.Templates.RenderStatus(w, status, "category.html", &categoryPage{
		PageData:     PageData{Title: schema.Title, Nav: navLinks(c)},
		Schema:       schema,
		Fields:       fields,
		Pending:      form.Pending(),
		FormNotice:   form.ConsumeNotice(),
		Loading:      listing.Loading(),
		Fetched:      listing.Fetched(),
		Items:        listing.Items(),
		ListNotice:   listing.ConsumeNotice(),
		InvalidInput: len(missing) > 0,
	})
}

// CategoryPage handles GET /{category}.
func (s *Server) CategoryPage(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFromPath(w, r)
	if !ok {
		return
	}
	s.renderCategory(w, http.StatusOK, getSession(r.Context()), c, nil)
}

// CategorySubmit handles POST /{category}.
func (s *Server) CategorySubmit(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFromPath(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := getSession(r.Context())
	form := sess.workspace.Form(c)

	for _, f := range c.Schema().Fields {
		value := r.PostFormValue(f.Name)
		if f.HasChoices() {
			value = f.ResolveChoice(value, r.PostFormValue(f.Name+otherSuffix))
		}
		if err := form.Set(f.Name, value); err != nil {
			slog.Error("failed to set field", "category", c, "field", f.Name, "error", err)
		}
	}

	// A write that reached the store is not abandoned because the browser
	// went away.
	_, err := form.Submit(context.WithoutCancel(r.Context()))
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		s.renderCategory(w, http.StatusUnprocessableEntity, sess, c, verr.Missing)
		return
	case errors.Is(err, wardrobe.ErrPending):
		slog.Warn("submit ignored while pending", "category", c)
	}

	http.Redirect(w, r, "/"+string(c), http.StatusSeeOther)
}

// CategoryFetch handles POST /{category}/list.
func (s *Server) CategoryFetch(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFromPath(w, r)
	if !ok {
		return
	}

	sess := getSession(r.Context())
	if _, err := sess.workspace.Listing(c).Fetch(r.Context()); errors.Is(err, wardrobe.ErrSuperseded) {
		slog.Info("fetch superseded", "category", c)
	}

	http.Redirect(w, r, "/"+string(c)+"#items", http.StatusSeeOther)
}
