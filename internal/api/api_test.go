package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newslens/internal/analyze"
	"newslens/internal/textscore"
)

type stubNewsService struct {
	resp        *analyze.NewsResponse
	err         error
	gotCategory string
	gotSearch   string
	gotPage     int
}

func (s *stubNewsService) Fetch(ctx context.Context, category, search string, page int) (*analyze.NewsResponse, error) {
	s.gotCategory, s.gotSearch, s.gotPage = category, search, page
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func serve(t *testing.T, svc NewsService, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := NewRouter(svc, textscore.New())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetNewsDefaultsAndPassesParams(t *testing.T) {
	svc := &stubNewsService{resp: &analyze.NewsResponse{
		Articles:       []analyze.NewsItem{},
		Category:       "general",
		TrendingTopics: []analyze.TopicCount{},
	}}

	w := serve(t, svc, "/api/news?search=markets")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "general", svc.gotCategory)
	assert.Equal(t, "markets", svc.gotSearch)
	assert.Equal(t, 1, svc.gotPage)

	var body analyze.NewsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "general", body.Category)
	assert.NotNil(t, body.Articles)
}

func TestGetNewsRejectsInvalidCategory(t *testing.T) {
	svc := &stubNewsService{}

	w := serve(t, svc, "/api/news?category=horoscopes")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "horoscopes")
	assert.Empty(t, svc.gotCategory, "service must not be called")
}

func TestGetNewsRejectsBadPage(t *testing.T) {
	for _, page := range []string{"0", "-2", "abc", "1.5"} {
		w := serve(t, &stubNewsService{}, "/api/news?page="+page)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "page=%s", page)
	}
}

func TestGetNewsUpstreamFailureIs500(t *testing.T) {
	svc := &stubNewsService{err: errors.New("fetch headlines: news api status 429")}

	w := serve(t, svc, "/api/news?category=business")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "429")
}

func TestGetCategories(t *testing.T) {
	w := serve(t, &stubNewsService{}, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 7)
	assert.NotContains(t, body.Categories, "all")
}

func TestHealthReportsAnalyzerState(t *testing.T) {
	w := serve(t, &stubNewsService{}, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "unstarted", body["analyzer"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMetricsEndpointShape(t *testing.T) {
	w := serve(t, &stubNewsService{}, "/api/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "requests_served")
	assert.Contains(t, body, "articles_analyzed")
}
