package docstore

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/erazemk/garderoba/internal/db"
)

// Options configures Open.
type Options struct {
	// Token authenticates requests to a remote store.
	Token string

	// HTTPClient is used by remote stores. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Open connects to the store named by location:
//
//	memory:                  in-process, lost on exit
//	sqlite:<path>            SQLite database file (a bare path also works)
//	postgres://...           PostgreSQL database
//	bolt:<path>              bolt database file
//	http(s)://...            remote realtime-database REST endpoint
func Open(location string, opts Options) (Store, error) {
	switch {
	case location == "memory" || location == "memory:":
		return NewMemory(), nil
	case strings.HasPrefix(location, "sqlite:"):
		return OpenSQL(db.DriverSQLite, strings.TrimPrefix(location, "sqlite:"))
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return OpenSQL(db.DriverPostgres, location)
	case strings.HasPrefix(location, "bolt:"):
		return OpenBolt(strings.TrimPrefix(location, "bolt:"))
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewRemote(location, opts.Token, opts.HTTPClient)
	case location == "":
		return nil, fmt.Errorf("no store location given")
	case strings.Contains(location, "://"):
		return nil, fmt.Errorf("unsupported store location %q", location)
	default:
		return OpenSQL(db.DriverSQLite, location)
	}
}
