package textscore

// Fallback when sentiment cannot be computed: neutral polarity, middling
// subjectivity.
var fallbackSentiment = Sentiment{Polarity: 0.0, Subjectivity: 0.5}

// Subjectivity above this threshold classifies text as opinion.
const opinionThreshold = 0.6

// Sentiment scores text, rounding both values to two decimals. Degraded
// calls return the fixed neutral fallback.
func (a *Analyzer) Sentiment(text string) (Sentiment, bool) {
	if !a.ready() {
		a.fallback("sentiment")
		return fallbackSentiment, true
	}

	polarity, subjectivity, err := a.backend.Sentiment(text)
	if err != nil {
		a.fallback("sentiment")
		return fallbackSentiment, true
	}
	return Sentiment{
		Polarity:     round2(clamp(polarity, -1, 1)),
		Subjectivity: round2(clamp(subjectivity, 0, 1)),
	}, false
}

// ContentType classifies text as "opinion/editorial" or "factual" by
// thresholding subjectivity; "unknown" when the backend is unavailable.
func (a *Analyzer) ContentType(text string) (string, bool) {
	if !a.ready() {
		a.fallback("content_type")
		return "unknown", true
	}

	_, subjectivity, err := a.backend.Sentiment(text)
	if err != nil {
		a.fallback("content_type")
		return "unknown", true
	}
	if subjectivity > opinionThreshold {
		return "opinion/editorial", false
	}
	return "factual", false
}
