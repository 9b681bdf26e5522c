package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMiddleware)
	r.Get("/participants/details/{email}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/participants/details/{email}", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/participants/details/a@b.com", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/participants/details/{email}", "404"))
	assert.Equal(t, before+1, after)
}

func TestRegisterStoreSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := 3
	require.NoError(t, RegisterStoreSize(reg, func() int { return n }))

	expected := `
# HELP participants_stored Number of participant records currently held in memory
# TYPE participants_stored gauge
participants_stored 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "participants_stored"))
}

func TestHandler_ServesRegistry(t *testing.T) {
	AuthFailuresTotal.WithLabelValues("mismatch").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "participants_auth_failures_total")
}
