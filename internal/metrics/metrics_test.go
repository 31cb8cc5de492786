package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveStoreOp("append", "clothes", nil, 10*time.Millisecond)
	c.ObserveStoreOp("read_all", "clothes", errors.New("boom"), time.Millisecond)
	c.RecordHTTPStatus(201)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`garderoba_store_operations_total{collection="clothes",op="append",outcome="ok"} 1`,
		`garderoba_store_operations_total{collection="clothes",op="read_all",outcome="error"} 1`,
		`garderoba_http_requests_total{code="201"} 1`,
		`garderoba_store_operation_seconds_count{op="append"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected metrics output to contain %q", want)
		}
	}
}
