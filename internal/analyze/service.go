// Package analyze runs the per-article scoring pipeline over one page of
// fetched headlines and assembles the API response.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/newsapi"
	"newslens/internal/textscore"
)

// Articles whose combined title+description is shorter than this are
// dropped before analysis.
const minArticleTextRunes = 10

// Fetcher fetches one page of raw headlines.
type Fetcher interface {
	TopHeadlines(ctx context.Context, p newsapi.Params) (*newsapi.Headlines, error)
}

// Service ties the fetcher and the analyzer together. It holds no per-request
// state: concurrent requests are naturally isolated.
type Service struct {
	fetcher  Fetcher
	analyzer *textscore.Analyzer
	pageSize int
}

func NewService(fetcher Fetcher, analyzer *textscore.Analyzer, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = 50
	}
	return &Service{fetcher: fetcher, analyzer: analyzer, pageSize: pageSize}
}

// Fetch retrieves one page of headlines for category (the fixed enum plus
// "all"), analyzes every usable article and computes trending topics over
// the pooled article text. Upstream failures fail the whole call; malformed
// or low-content articles are skipped silently.
func (s *Service) Fetch(ctx context.Context, category, search string, page int) (*NewsResponse, error) {
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("invalid category %q", category)
	}
	if page < 1 {
		page = 1
	}

	start := time.Now()
	defer metrics.Global.RecordProcessingTime(time.Since(start))

	logger.Info("fetching headlines", "category", category, "search", search, "page", page)

	headlines, err := s.fetcher.TopHeadlines(ctx, newsapi.Params{
		Category: category,
		Query:    search,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		metrics.Global.IncrementUpstreamErrors()
		metrics.Global.SetError(err.Error())
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	logger.Debug("got upstream response", "articles", len(headlines.Articles), "total", headlines.TotalResults)

	var pooled strings.Builder
	items := []NewsItem{}

	for _, raw := range headlines.Articles {
		item, fullText, ok := s.analyzeArticle(raw, category)
		if !ok {
			metrics.Global.IncrementArticlesSkipped()
			continue
		}
		pooled.WriteString(" ")
		pooled.WriteString(fullText)
		items = append(items, item)
		metrics.Global.IncrementArticlesAnalyzed()
	}

	if len(items) == 0 {
		logger.Warn("no articles survived filtering", "category", category)
		return &NewsResponse{
			Articles:       []NewsItem{},
			Total:          0,
			Category:       category,
			TrendingTopics: []TopicCount{},
		}, nil
	}

	total := headlines.TotalResults
	if total == 0 {
		total = len(items)
	}

	return &NewsResponse{
		Articles:       items,
		Total:          total,
		Category:       category,
		TrendingTopics: s.trendingTopics(pooled.String()),
	}, nil
}

// analyzeArticle validates one raw article and runs the scorer battery on
// it. Returns ok=false when the article should be skipped.
func (s *Service) analyzeArticle(raw newsapi.RawArticle, category string) (NewsItem, string, bool) {
	if raw.Title == "" || raw.URL == "" {
		logger.Debug("skipping article with missing required fields", "url", raw.URL)
		return NewsItem{}, "", false
	}

	title := strings.TrimSpace(raw.Title)
	description := strings.TrimSpace(raw.Description)
	fullText := strings.TrimSpace(title + " " + description)
	if utf8.RuneCountInString(fullText) < minArticleTextRunes {
		logger.Debug("skipping article with insufficient text", "title", title)
		return NewsItem{}, "", false
	}

	// Summary and quotes work off the description; everything else sees the
	// combined text.
	summarySource := description
	if summarySource == "" {
		summarySource = title
	}

	sentiment, _ := s.analyzer.Sentiment(fullText)
	aiSummary, _ := s.analyzer.Summarize(summarySource, textscore.DefaultSummarySentences)
	keywords, _ := s.analyzer.Keywords(fullText, textscore.DefaultKeywords)
	contentType, _ := s.analyzer.ContentType(fullText)
	readability, _ := s.analyzer.Readability(fullText)
	bias, _ := s.analyzer.Bias(fullText)
	quotes, _ := s.analyzer.KeyQuotes(summarySource, textscore.DefaultMaxQuotes)

	timestamp := raw.PublishedAt
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}
	source := raw.Source.Name
	if source == "" {
		source = "Unknown Source"
	}

	return NewsItem{
		Title:       title,
		URL:         raw.URL,
		Source:      source,
		Timestamp:   timestamp,
		Summary:     description,
		Category:    category,
		URLToImage:  raw.URLToImage,
		Sentiment:   &sentiment,
		AISummary:   aiSummary,
		Keywords:    keywords,
		ContentType: contentType,
		Readability: &readability,
		Bias:        &bias,
		KeyQuotes:   quotes,
	}, fullText, true
}

// trendingTopics extracts the top keywords from the pooled text and counts
// each one as a literal case-insensitive substring over the entire pool —
// not per article and not on word boundaries, so a topic can count more
// often than the number of articles mentioning it.
func (s *Service) trendingTopics(pooled string) []TopicCount {
	topics, _ := s.analyzer.Keywords(pooled, textscore.TrendingKeywords)
	lowerPool := strings.ToLower(pooled)

	out := make([]TopicCount, 0, len(topics))
	for _, topic := range topics {
		out = append(out, TopicCount{
			Topic: topic,
			Count: strings.Count(lowerPool, strings.ToLower(topic)),
		})
	}
	return out
}
