package app

import (
	"context"
	"edu_catalog_backend/internal/config"
	"edu_catalog_backend/internal/model"
	"edu_catalog_backend/internal/testutil"
	"edu_catalog_backend/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, QueryTimeout: 5},
		Log:       config.LogConfig{Level: "info"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		Swagger:   config.SwaggerConfig{Enabled: true},
	}
}

func serve(a *App, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := New(testConfig(), testutil.SeededDB(t))

	tests := []struct {
		path string
		code int
	}{
		{"/api/health", http.StatusOK},
		{"/api/classes", http.StatusOK},
		{"/api/classes/10/subjects", http.StatusOK},
		{"/api/classes/10/subjects/mathematics/chapters", http.StatusOK},
		{"/api/classes/10/subjects/mathematics/chapters/1/questions", http.StatusOK},
		{"/api/classes/x/subjects", http.StatusBadRequest},
		{"/metrics", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(a, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	rec := serve(a, http.MethodGet, "/swagger/doc.json", nil)
	assert.Contains(t, rec.Body.String(), "/classes/{classNumber}/subjects")

	rec = serve(a, http.MethodGet, "/api/classes", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestSwaggerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Swagger.Enabled = false
	a := New(cfg, testutil.DB(t))

	assert.Equal(t, http.StatusNotFound, serve(a, http.MethodGet, "/swagger/doc.json", nil).Code)
}

func TestApplyConfigUpdatesOriginsAndLogLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := New(testConfig(), testutil.DB(t))

	origin := map[string]string{"Origin": "https://catalog.example"}
	rec := serve(a, http.MethodOptions, "/api/classes", origin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	next := testConfig()
	next.Server.Mode = "release"
	next.Log.Level = "warn"
	next.CORS.AllowedOrigins = []string{"https://catalog.example"}
	a.applyConfig(next)

	rec = serve(a, http.MethodOptions, "/api/classes", origin)
	assert.Equal(t, "https://catalog.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, zap.WarnLevel, logger.Level())
}

func TestCheckCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SeededDB(t)
	a := New(testConfig(), db)

	assert.Equal(t, 0, a.CheckCounts(context.Background()))

	require.NoError(t, db.Model(&model.Chapter{}).Where("name = ?", "Number Systems").Update("questions_count", 9).Error)
	assert.Equal(t, 1, a.CheckCounts(context.Background()))
}
