package web

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/erazemk/garderoba/internal/docstore"
	webembed "github.com/erazemk/garderoba/web"
)

// Options configures the web server.
type Options struct {
	Store        docstore.Store
	SessionKey   []byte
	SessionTTL   time.Duration
	LandingDelay time.Duration

	// SubmitRate is the number of form posts allowed per session per second.
	SubmitRate  rate.Limit
	SubmitBurst int
}

// Server holds all dependencies for page handlers.
type Server struct {
	Templates    *Templates
	Sessions     *Sessions
	SessionKey   []byte
	SessionTTL   time.Duration
	LandingDelay time.Duration
}

// NewServer parses the templates and starts the session registry. Close
// releases the sessions.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("no document store")
	}
	if len(opts.SessionKey) == 0 {
		return nil, fmt.Errorf("no session key")
	}

	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		Templates:    templates,
		Sessions:     NewSessions(opts.Store, opts.SessionTTL, opts.SubmitRate, opts.SubmitBurst),
		SessionKey:   opts.SessionKey,
		SessionTTL:   opts.SessionTTL,
		LandingDelay: opts.LandingDelay,
	}, nil
}

// Close drops every session.
func (s *Server) Close() {
	s.Sessions.Close()
}

// Routes returns the page router with all page routes registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	limited := func(h http.HandlerFunc) http.Handler {
		return s.SessionMiddleware(SubmitLimitMiddleware(h))
	}

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	mux.HandleFunc("GET /healthz", s.Health)

	mux.HandleFunc("GET /{$}", s.Landing)

	mux.Handle("GET /{category}", s.ViewSessionMiddleware(http.HandlerFunc(s.CategoryPage)))
	mux.Handle("POST /{category}", limited(s.CategorySubmit))
	mux.Handle("POST /{category}/list", limited(s.CategoryFetch))

	return mux
}

// NewRouter creates the page router for a server that lives as long as the
// process.
func NewRouter(opts Options) (http.Handler, error) {
	s, err := NewServer(opts)
	if err != nil {
		return nil, err
	}
	return s.Routes(), nil
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
