package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *url.Values) {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 5*time.Second), &got
}

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestTopHeadlinesQueryParams(t *testing.T) {
	c, got := newTestClient(t, okHandler(`{"status":"ok","totalResults":0,"articles":[]}`))

	_, err := c.TopHeadlines(context.Background(), Params{
		Category: "technology",
		Query:    "chips",
		Page:     2,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}

	want := map[string]string{
		"apiKey":   "test-key",
		"language": "en",
		"pageSize": "10",
		"page":     "2",
		"category": "technology",
		"q":        "chips",
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, got.Get(k), v)
		}
	}
}

func TestTopHeadlinesOmitsAllCategoryAndEmptyQuery(t *testing.T) {
	c, got := newTestClient(t, okHandler(`{"status":"ok","articles":[]}`))

	if _, err := c.TopHeadlines(context.Background(), Params{Category: "all"}); err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}
	if got.Has("category") {
		t.Errorf(`category = %q, want omitted for "all"`, got.Get("category"))
	}
	if got.Has("q") {
		t.Errorf("q = %q, want omitted when empty", got.Get("q"))
	}
	// Defaults applied for missing paging.
	if got.Get("page") != "1" || got.Get("pageSize") != "50" {
		t.Errorf("page/pageSize = %q/%q, want 1/50", got.Get("page"), got.Get("pageSize"))
	}
}

func TestTopHeadlinesDecodesArticles(t *testing.T) {
	c, _ := newTestClient(t, okHandler(`{
		"status": "ok",
		"totalResults": 2,
		"articles": [
			{"source":{"id":"w","name":"Wire"},"title":"Headline one","url":"https://n.test/1","publishedAt":"2026-08-20T09:00:00Z"},
			{"source":{"name":"Other"},"title":"Headline two","url":"https://n.test/2"}
		]
	}`))

	headlines, err := c.TopHeadlines(context.Background(), Params{Category: "general"})
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}
	if headlines.TotalResults != 2 || len(headlines.Articles) != 2 {
		t.Fatalf("got total=%d articles=%d, want 2/2", headlines.TotalResults, len(headlines.Articles))
	}
	if headlines.Articles[0].Source.Name != "Wire" {
		t.Errorf("source = %q, want Wire", headlines.Articles[0].Source.Name)
	}
}

func TestTopHeadlinesSurfacesUpstreamErrorMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	})

	_, err := c.TopHeadlines(context.Background(), Params{})
	if err == nil {
		t.Fatal("want error on 401")
	}
	if !strings.Contains(err.Error(), "Your API key is invalid") {
		t.Errorf("error %q must carry the upstream message", err)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q must carry the status code", err)
	}
}

func TestTopHeadlinesRejectsNonOKStatusField(t *testing.T) {
	c, _ := newTestClient(t, okHandler(`{"status":"error","articles":[]}`))

	if _, err := c.TopHeadlines(context.Background(), Params{}); err == nil {
		t.Fatal(`want error when body status is not "ok"`)
	}
}
