package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/wardrobe"
)

// ItemsHandler handles the category item endpoints.
type ItemsHandler struct {
	Store docstore.Store
}

type listItemsResponse struct {
	Items []model.Item `json:"items"`
	Empty bool         `json:"empty"`
}

type validationErrorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	schemas := make([]model.Schema, 0, 3)
	for _, c := range model.Categories() {
		schemas = append(schemas, c.Schema())
	}
	jsonResponse(w, http.StatusOK, schemas)
}

// List handles GET /api/{category}/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := model.ParseCategory(r.PathValue("category"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "unknown category")
		return
	}

	items, err := wardrobe.List(r.Context(), h.Store, c)
	if err != nil {
		slog.Error("failed to list items", "category", c, "error", err)
		storeUnavailable(w)
		return
	}

	jsonResponse(w, http.StatusOK, listItemsResponse{Items: items, Empty: len(items) == 0})
}

// Create handles POST /api/{category}/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := model.ParseCategory(r.PathValue("category"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "unknown category")
		return
	}

	var req map[string]string
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := model.DraftFrom(c, model.Record(req))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := wardrobe.Add(r.Context(), h.Store, draft)
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonResponse(w, http.StatusBadRequest, validationErrorResponse{Error: "missing required fields", Missing: verr.Missing})
		return
	case err != nil:
		slog.Error("failed to add item", "category", c, "error", err)
		storeUnavailable(w)
		return
	}

	slog.Info("item added", "category", c, "id", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// storeUnavailable reports any store failure the same way; the cause is
// only logged.
func storeUnavailable(w http.ResponseWriter) {
	jsonError(w, http.StatusBadGateway, "store unavailable")
}
