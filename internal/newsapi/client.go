// Package newsapi is a minimal client for the NewsAPI top-headlines
// endpoint. One request per call, no retries: transport errors and non-2xx
// statuses fail the whole call.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RawArticle is one article exactly as the upstream API reports it.
type RawArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Headlines is the upstream top-headlines response.
type Headlines struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

// apiError is the upstream error body shape.
type apiError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Params select which headlines to fetch. Category "all" (or empty) and an
// empty query are omitted from the request.
type Params struct {
	Category string
	Query    string
	Page     int
	PageSize int
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// TopHeadlines fetches one page of English headlines.
func (c *Client) TopHeadlines(ctx context.Context, p Params) (*Headlines, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 50
	}

	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("language", "en")
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	q.Set("page", strconv.Itoa(p.Page))
	if p.Category != "" && p.Category != "all" {
		q.Set("category", p.Category)
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e apiError
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return nil, fmt.Errorf("news api status %d: %s", resp.StatusCode, e.Message)
		}
		return nil, fmt.Errorf("news api status %d", resp.StatusCode)
	}

	var headlines Headlines
	if err := json.Unmarshal(body, &headlines); err != nil {
		return nil, fmt.Errorf("decode news api response: %w", err)
	}
	if headlines.Status != "" && headlines.Status != "ok" {
		return nil, fmt.Errorf("news api returned status %q", headlines.Status)
	}

	return &headlines, nil
}
