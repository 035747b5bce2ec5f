package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(CatalogQueries.WithLabelValues("chapters", "error"))

	ObserveQuery("chapters", time.Now(), errors.New("boom"))
	ObserveQuery("chapters", time.Now(), nil)

	assert.Equal(t, before+1, testutil.ToFloat64(CatalogQueries.WithLabelValues("chapters", "error")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(CatalogQueries.WithLabelValues("chapters", "ok")), 1.0)
}

func TestMetricsMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	Init()

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/classes", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", PrometheusHandler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.GreaterOrEqual(t, testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/classes", "200")), 1.0)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}
