package api

import (
	"net/http"

	"github.com/erazemk/garderoba/internal/docstore"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s docstore.Store) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Store: s}

	mux.HandleFunc("GET /api/categories", itemsHandler.Categories)
	mux.HandleFunc("GET /api/{category}/items", itemsHandler.List)
	mux.HandleFunc("POST /api/{category}/items", itemsHandler.Create)

	return mux
}
