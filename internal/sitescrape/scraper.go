// Package sitescrape fetches headlines from a single news site's HTML.
// It is the lightweight alternative to the NewsAPI pipeline: fetch, parse,
// filter, return — no analysis.
package sitescrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"newslens/internal/logger"
	"newslens/internal/retry"
)

// Item is one scraped headline.
type Item struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

type Scraper struct {
	client     *http.Client
	sourceURL  string
	sourceName string
	feedURL    string
	maxItems   int
}

// New builds a scraper for one site. feedURL is optional: when set, it is
// used as an RSS fallback if the HTML yields no headlines (news frontpages
// are often script-rendered).
func New(sourceURL, sourceName, feedURL string, maxItems int, timeout time.Duration) *Scraper {
	if maxItems < 1 {
		maxItems = 10
	}
	return &Scraper{
		client:     &http.Client{Timeout: timeout},
		sourceURL:  sourceURL,
		sourceName: sourceName,
		feedURL:    feedURL,
		maxItems:   maxItems,
	}
}

// Headlines fetches and parses the site, falling back to the RSS feed when
// the HTML produces nothing.
func (s *Scraper) Headlines(ctx context.Context) ([]Item, error) {
	var body []byte
	err := retry.Do(ctx, retry.Config{MaxAttempts: 2, Delay: time.Second}, func() error {
		b, err := s.fetch(ctx, s.sourceURL)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		if s.feedURL != "" {
			logger.Warn("page fetch failed, trying feed", "url", s.sourceURL, "error", err)
			return s.fromFeed(ctx)
		}
		return nil, err
	}

	items, err := s.parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && s.feedURL != "" {
		logger.Warn("no headlines in page, trying feed", "url", s.sourceURL)
		return s.fromFeed(ctx)
	}
	return items, nil
}

func (s *Scraper) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newslens/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", target, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parse pulls headline blocks out of the page: an <article> with an <h3>
// headline, an optional link and an optional <p> summary.
func (s *Scraper) parse(r io.Reader) ([]Item, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	items := []Item{}
	doc.Find("article").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Find("h3").First().Text())
		if title == "" {
			return true
		}

		link := ""
		if href, ok := sel.Find("a").First().Attr("href"); ok {
			link = s.absoluteURL(href)
		}
		summary := strings.TrimSpace(sel.Find("p").First().Text())

		items = append(items, Item{
			Title:   title,
			URL:     link,
			Source:  s.sourceName,
			Summary: summary,
		})
		return len(items) < s.maxItems
	})

	return items, nil
}

func (s *Scraper) absoluteURL(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return href
	}
	base, err := url.Parse(s.sourceURL)
	if err != nil {
		return href
	}
	return base.ResolveReference(u).String()
}

// fromFeed reads the site's RSS feed instead of its HTML.
func (s *Scraper) fromFeed(ctx context.Context) ([]Item, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feedURL, err)
	}

	items := []Item{}
	for _, entry := range feed.Items {
		if len(items) >= s.maxItems {
			break
		}
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		items = append(items, Item{
			Title:   title,
			URL:     entry.Link,
			Source:  s.sourceName,
			Summary: strings.TrimSpace(entry.Description),
		})
	}
	return items, nil
}
