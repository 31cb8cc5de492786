package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/erazemk/garderoba/internal/model"
)

// maxResponseSize caps how much of a remote response is read.
const maxResponseSize = 16 << 20

// Remote is a Store reached over HTTP using the realtime-database REST
// convention: each collection is a JSON node at {base}/{collection}.json.
// POST to a node creates a child under a server-generated key and answers
// {"name": key}; GET answers the whole node, or null if it does not exist.
type Remote struct {
	base       *url.URL
	token      string
	httpClient *http.Client
}

// NewRemote returns a client for the database at baseURL. The token, if
// set, is sent as the auth query parameter.
func NewRemote(baseURL, token string, httpClient *http.Client) (*Remote, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing store url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("store url must be http or https, got %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Remote{base: u, token: token, httpClient: httpClient}, nil
}

func (r *Remote) nodeURL(collection string) string {
	u := *r.base
	u.Path = u.Path + "/" + url.PathEscape(collection) + ".json"
	if r.token != "" {
		q := u.Query()
		q.Set("auth", r.token)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (r *Remote) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return "", storeError(OpAppend, collection, fmt.Errorf("encoding record: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.nodeURL(collection), bytes.NewReader(body))
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := r.do(req)
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	var created struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return "", storeError(OpAppend, collection, fmt.Errorf("decoding response: %w", err))
	}
	if created.Name == "" {
		return "", storeError(OpAppend, collection, fmt.Errorf("response carries no key"))
	}
	return created.Name, nil
}

func (r *Remote) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.nodeURL(collection), nil)
	if err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}
	req.Header.Set("Accept", "application/json")

	data, err := r.do(req)
	if err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}

	// A missing node decodes from null into a nil map.
	var out map[string]model.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, storeError(OpReadAll, collection, fmt.Errorf("decoding response: %w", err))
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (r *Remote) do(req *http.Request) ([]byte, error) {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remoteErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &remoteErr) == nil && remoteErr.Error != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, remoteErr.Error)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return data, nil
}

func (r *Remote) Close() error {
	r.httpClient.CloseIdleConnections()
	return nil
}
