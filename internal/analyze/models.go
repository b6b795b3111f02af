package analyze

import "newslens/internal/textscore"

// Categories is the fixed set of news categories the upstream API supports.
// "all" is accepted on the query side but is not a category of its own.
var Categories = []string{
	"general",
	"business",
	"technology",
	"entertainment",
	"sports",
	"science",
	"health",
}

// IsValidCategory reports whether category may be requested.
func IsValidCategory(category string) bool {
	if category == "all" {
		return true
	}
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NewsItem is one fetched article plus everything the scorer battery
// derived from it. Built fresh per request and never mutated afterwards.
type NewsItem struct {
	Title       string                 `json:"title"`
	URL         string                 `json:"url"`
	Source      string                 `json:"source"`
	Timestamp   string                 `json:"timestamp"`
	Summary     string                 `json:"summary"`
	Category    string                 `json:"category"`
	URLToImage  string                 `json:"urlToImage,omitempty"`
	Sentiment   *textscore.Sentiment   `json:"sentiment"`
	AISummary   string                 `json:"ai_summary"`
	Keywords    []string               `json:"keywords"`
	ContentType string                 `json:"content_type"`
	Readability *textscore.Readability `json:"readability"`
	Bias        *textscore.Bias        `json:"bias_analysis"`
	KeyQuotes   []string               `json:"key_quotes"`
}

// TopicCount is one trending topic with its occurrence count over the
// pooled text of the whole response.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// NewsResponse is the /api/news payload.
type NewsResponse struct {
	Articles       []NewsItem   `json:"articles"`
	Total          int          `json:"total"`
	Category       string       `json:"category"`
	TrendingTopics []TopicCount `json:"trending_topics"`
}
