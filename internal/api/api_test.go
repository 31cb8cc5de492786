package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

func setupTestServer(t *testing.T, s docstore.Store) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewRouter(s))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func getItems(t *testing.T, url string) listItemsResponse {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out listItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func TestClothesAPIFlow(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	resp := postJSON(t, server.URL+"/api/clothes/items", map[string]string{
		"itemName": "shirt",
		"color":    "blue",
		"occasion": "work",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created model.Item
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.ID == "" {
		t.Error("expected created item to carry an id")
	}

	list := getItems(t, server.URL+"/api/clothes/items")
	if list.Empty || len(list.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", list)
	}
	got := list.Items[0]
	if got.ID != created.ID || got.Get("itemName") != "shirt" || got.Get("color") != "blue" || got.Get("occasion") != "work" {
		t.Errorf("unexpected item %+v", got)
	}
}

func TestAccessoriesDuplicatesAPI(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	for i := 0; i < 2; i++ {
		resp := postJSON(t, server.URL+"/api/accessories/items", map[string]string{"accessoryName": "Hat", "color": "red"})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	list := getItems(t, server.URL+"/api/accessories/items")
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
	for _, it := range list.Items {
		if it.ID == "" {
			t.Error("expected accessory items to keep their ids")
		}
	}
}

func TestEmptyFootwearAPI(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	list := getItems(t, server.URL+"/api/footwear/items")
	if !list.Empty || len(list.Items) != 0 {
		t.Errorf("expected empty listing, got %+v", list)
	}
	if list.Items == nil {
		t.Error("expected items to encode as an empty array")
	}
}

func TestCreateMissingFields(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	resp := postJSON(t, server.URL+"/api/clothes/items", map[string]string{"itemName": "jeans"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body validationErrorResponse
	json.NewDecoder(resp.Body).Decode(&body)
	if len(body.Missing) != 2 {
		t.Errorf("expected 2 missing fields, got %v", body.Missing)
	}
}

func TestCreateUnknownField(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	resp := postJSON(t, server.URL+"/api/footwear/items", map[string]string{"footwearName": "Boots", "color": "brown", "size": "42"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", resp.StatusCode)
	}
}

func TestUnknownCategory(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	resp, err := http.Get(server.URL + "/api/hats/items")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestStoreFailuresAreUniform(t *testing.T) {
	s := &docstore.Faulty{Store: docstore.NewTestStore(t)}
	s.FailAppend(true)
	s.FailRead(true)
	server := setupTestServer(t, s)

	resp := postJSON(t, server.URL+"/api/accessories/items", map[string]string{"accessoryName": "Watch", "color": "silver"})
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway || body["error"] != "store unavailable" {
		t.Errorf("unexpected write failure response: %d %v", resp.StatusCode, body)
	}

	resp, err := http.Get(server.URL + "/api/accessories/items")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	json.NewDecoder(resp.Body).Decode(&body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway || body["error"] != "store unavailable" {
		t.Errorf("unexpected read failure response: %d %v", resp.StatusCode, body)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	server := setupTestServer(t, docstore.NewTestStore(t))

	resp, err := http.Get(server.URL + "/api/categories")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var schemas []model.Schema
	json.NewDecoder(resp.Body).Decode(&schemas)
	if len(schemas) != 3 {
		t.Fatalf("expected 3 schemas, got %d", len(schemas))
	}
	if schemas[0].Category != model.CategoryClothes || len(schemas[0].Fields) != 3 {
		t.Errorf("unexpected clothes schema %+v", schemas[0])
	}
}

type statusCounter map[int]int

func (s statusCounter) RecordHTTPStatus(code int) { s[code]++ }

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	counts := statusCounter{}
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), counts)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if counts[http.StatusTeapot] != 1 {
		t.Errorf("expected teapot status recorded, got %v", counts)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
