package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordFileOp(t *testing.T) {
	okBefore := counterValue(t, FileOpsTotal.WithLabelValues("move", StatusOK))
	errBefore := counterValue(t, FileOpsTotal.WithLabelValues("move", StatusError))

	RecordFileOp("move", nil)
	RecordFileOp("move", errors.New("boom"))
	RecordFileOp("move", nil)

	assert.Equal(t, okBefore+2, counterValue(t, FileOpsTotal.WithLabelValues("move", StatusOK)))
	assert.Equal(t, errBefore+1, counterValue(t, FileOpsTotal.WithLabelValues("move", StatusError)))
}

func TestHandler_ServesExposition(t *testing.T) {
	PreviewCacheHits.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MetricNamePreviewCacheHits)
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	before := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418"))

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")))
}
