// Package textscore implements the heuristic text-analysis battery that runs
// over every article: sentiment, content type, readability, bias, quotes,
// keywords and an extractive summary.
//
// All scorers are best-effort. Each one returns its value together with a
// degraded flag: when the analyzer is not ready, or its NLP backend fails,
// the scorer substitutes a documented fallback value instead of returning an
// error, and reports degraded=true so callers can tell genuine neutral output
// from a suppressed failure.
package textscore

import (
	"math"
	"sync/atomic"

	"newslens/internal/logger"
	"newslens/internal/metrics"
)

// Default limits for the scorers that take one.
const (
	DefaultMaxQuotes        = 2
	DefaultKeywords         = 5
	TrendingKeywords        = 10
	DefaultSummarySentences = 3
)

// TextScorer is the NLP capability the scoring battery runs on. The default
// implementation is lexicon-based; anything that can produce a polarity,
// a subjectivity and noun phrases can be plugged in instead.
type TextScorer interface {
	// Sentiment returns polarity in [-1,1] and subjectivity in [0,1].
	Sentiment(text string) (polarity, subjectivity float64, err error)
	// NounPhrases returns keyword candidates in extraction order.
	NounPhrases(text string) ([]string, error)
}

// Sentiment is the sentiment scorer output.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Readability is the readability scorer output.
type Readability struct {
	Score             float64 `json:"score"`
	ReadingLevel      string  `json:"reading_level"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// Bias is the bias detector output.
type Bias struct {
	Level   string         `json:"bias_level"`
	Score   float64        `json:"bias_score"`
	Factors map[string]int `json:"bias_factors"`
}

// State describes the analyzer lifecycle. Scorer calls are valid in every
// state; anything other than StateReady yields fallback values.
type State int32

const (
	StateUnstarted State = iota
	StateLoading
	StateReady
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	}
	return "unknown"
}

// Analyzer runs the scoring battery on top of a TextScorer backend.
type Analyzer struct {
	state   atomic.Int32
	backend TextScorer
	bias    map[string]map[string]struct{}
}

// New returns an unstarted analyzer. Call Load before serving; until then
// every scorer reports degraded fallback values.
func New() *Analyzer {
	return &Analyzer{}
}

// NewWithBackend returns a ready analyzer on a caller-supplied backend,
// keeping the built-in bias keyword lists. Used by tests and by callers that
// bring their own NLP.
func NewWithBackend(backend TextScorer) *Analyzer {
	a := &Analyzer{backend: backend, bias: buildBiasSets(defaultBiasKeywords())}
	a.state.Store(int32(StateReady))
	return a
}

// Load parses the sentiment lexicon (the embedded default, or the file at
// path when non-empty) and warms the POS tagger. On failure the analyzer is
// left degraded and keeps serving fallback values.
func (a *Analyzer) Load(path string) error {
	a.state.Store(int32(StateLoading))

	lex, biasKeywords, err := loadLexicon(path)
	if err != nil {
		a.state.Store(int32(StateDegraded))
		return err
	}
	if err := warmTagger(); err != nil {
		a.state.Store(int32(StateDegraded))
		return err
	}

	a.backend = &lexiconScorer{lex: lex}
	a.bias = buildBiasSets(biasKeywords)
	a.state.Store(int32(StateReady))
	logger.Info("text analyzer ready", "lexicon_words", len(lex.words))
	return nil
}

// State reports the current lifecycle state.
func (a *Analyzer) State() State {
	return State(a.state.Load())
}

func (a *Analyzer) ready() bool {
	return a.State() == StateReady && a.backend != nil
}

func (a *Analyzer) fallback(scorer string) {
	metrics.Global.IncrementScorerFallbacks()
	logger.Warn("scorer returned fallback value", "scorer", scorer, "state", a.State().String())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
