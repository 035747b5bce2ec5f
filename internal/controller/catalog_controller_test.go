package controller

import (
	"context"
	"edu_catalog_backend/internal/model"
	"edu_catalog_backend/internal/repository"
	"edu_catalog_backend/internal/service"
	"edu_catalog_backend/internal/testutil"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

const envelopeSchema = `{
  "type": "object",
  "required": ["success"],
  "properties": {
    "success": {"type": "boolean"},
    "data": {"type": ["array", "object"]},
    "error": {"type": "string", "minLength": 1}
  },
  "additionalProperties": false,
  "oneOf": [
    {"properties": {"success": {"const": true}}, "required": ["data"], "not": {"required": ["error"]}},
    {"properties": {"success": {"const": false}}, "required": ["error"], "not": {"required": ["data"]}}
  ]
}`

type failingStore struct{}

var errDown = errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")

func (failingStore) ListClasses(context.Context) ([]model.ClassSummary, error) {
	return nil, errDown
}
func (failingStore) ListSubjects(context.Context, int) ([]model.SubjectListing, error) {
	return nil, errDown
}
func (failingStore) ListChapters(context.Context, int, string) ([]model.ChapterListing, error) {
	return nil, errDown
}
func (failingStore) ListQuestions(context.Context, int, string, int) ([]model.QuestionListing, error) {
	return nil, errDown
}
func (failingStore) CountMismatches(context.Context) ([]model.CountMismatch, error) {
	return nil, errDown
}
func (failingStore) Ping(context.Context) error { return errDown }

func newRouter(store repository.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCatalogService(store, 0)
	catalog := NewCatalogController(svc)
	health := NewHealthController(svc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", health.HealthCheck)
	api.GET("/classes", catalog.ListClasses)
	api.GET("/classes/:classNumber/subjects", catalog.ListSubjects)
	api.GET("/classes/:classNumber/subjects/:subjectSlug/chapters", catalog.ListChapters)
	api.GET("/classes/:classNumber/subjects/:subjectSlug/chapters/:chapterNumber/questions", catalog.ListQuestions)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func get(t *testing.T, r *gin.Engine, path string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(envelopeSchema),
		gojsonschema.NewBytesLoader(rec.Body.Bytes()),
	)
	require.NoError(t, err)
	require.True(t, result.Valid(), "envelope violations for %s: %v body=%s", path, result.Errors(), rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestListClasses_IncludesClassesWithoutSubjects(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	code, env := get(t, r, "/api/classes")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &classes))
	require.Len(t, classes, 3)

	first := classes[0]
	assert.EqualValues(t, 6, first["class_number"])
	assert.EqualValues(t, 0, first["subjects_count"])
	assert.EqualValues(t, 0, first["total_questions"])
	for _, key := range []string{"id", "name", "description", "created_at"} {
		assert.Contains(t, first, key)
	}
}

func TestListSubjects_UnknownClassIsEmptySuccess(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	code, env := get(t, r, "/api/classes/999/subjects")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, env = get(t, r, "/api/classes/10/subjects")
	assert.Equal(t, http.StatusOK, code)
	var subjects []model.SubjectListing
	require.NoError(t, json.Unmarshal(env.Data, &subjects))
	require.Len(t, subjects, 2)
	assert.Equal(t, "Mathematics", subjects[0].Name)
	assert.Equal(t, 3, subjects[0].QuestionsCount)
}

func TestListChapters_NonexistentSlug(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	code, env := get(t, r, "/api/classes/10/subjects/nonexistent-slug/chapters")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestListChapters_Ordered(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	code, env := get(t, r, "/api/classes/10/subjects/mathematics/chapters")
	require.Equal(t, http.StatusOK, code)

	var chapters []model.ChapterListing
	require.NoError(t, json.Unmarshal(env.Data, &chapters))
	require.Len(t, chapters, 2)
	assert.Equal(t, 1, chapters[0].ChapterNumber)
	assert.Equal(t, 2, chapters[1].ChapterNumber)
}

func TestListQuestions_Class10Mathematics(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	code, env := get(t, r, "/api/classes/10/subjects/mathematics/chapters/1/questions")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var questions []model.QuestionListing
	require.NoError(t, json.Unmarshal(env.Data, &questions))
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, i+1, q.QuestionNumber)
		assert.NotEmpty(t, q.QuestionText)
		assert.NotEmpty(t, q.AnswerText)
		assert.Equal(t, "Real Numbers", q.ChapterName)
	}
}

func TestInvalidNumericParams(t *testing.T) {
	r := newRouter(repository.NewCatalogRepository(testutil.SeededDB(t)))

	tests := []struct {
		path    string
		message string
	}{
		{"/api/classes/ten/subjects", "invalid class number"},
		{"/api/classes/0/subjects", "invalid class number"},
		{"/api/classes/-1/subjects/mathematics/chapters", "invalid class number"},
		{"/api/classes/abc/subjects/mathematics/chapters/1/questions", "invalid class number"},
		{"/api/classes/10/subjects/mathematics/chapters/one/questions", "invalid chapter number"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, env := get(t, r, tt.path)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Error)
		})
	}
}

func TestQueryFailureReturnsGeneric500(t *testing.T) {
	r := newRouter(failingStore{})

	tests := []struct {
		path    string
		message string
	}{
		{"/api/classes", "Failed to fetch classes"},
		{"/api/classes/10/subjects", "Failed to fetch subjects"},
		{"/api/classes/10/subjects/mathematics/chapters", "Failed to fetch chapters"},
		{"/api/classes/10/subjects/mathematics/chapters/1/questions", "Failed to fetch questions"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, env := get(t, r, tt.path)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Error)
			assert.NotContains(t, env.Error, "connection refused")
			assert.Empty(t, env.Data)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	code, env := get(t, newRouter(repository.NewCatalogRepository(testutil.DB(t))), "/api/health")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = get(t, newRouter(failingStore{}), "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "Database unavailable", env.Error)
}
