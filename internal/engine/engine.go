// Package engine implements the query-understanding and ranking core of the
// assistant: preprocessing, fuzzy candidate retrieval, composite scoring,
// intent classification, fallback page search, and the per-session sales
// signals. One Engine owns exactly one session; multi-session callers go
// through the Manager.
package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/albait/assistant/internal/catalog"
	"github.com/albait/assistant/internal/pkg/fuzzy"
)

// Config carries the tuned ranking thresholds. The zero value is unusable;
// start from DefaultConfig.
type Config struct {
	ScoreThreshold        int     `yaml:"score_threshold"`
	MaxResults            int     `yaml:"max_results"`
	FuzzyThreshold        float64 `yaml:"fuzzy_threshold"`
	TitleWeight           float64 `yaml:"title_weight"`
	KeywordWeight         float64 `yaml:"keyword_weight"`
	DescriptionWeight     float64 `yaml:"description_weight"`
	FallbackMinResults    int     `yaml:"fallback_min_results"`
	FallbackMinConfidence int     `yaml:"fallback_min_confidence"`
	FallbackMaxSynthetic  int     `yaml:"fallback_max_synthetic"`
	CTAMinPackageQueries  int     `yaml:"cta_min_package_queries"`
	CTAMinTotalQueries    int     `yaml:"cta_min_total_queries"`
	CTAMessage            string  `yaml:"cta_message"`
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		ScoreThreshold:        10,
		MaxResults:            5,
		FuzzyThreshold:        0.45,
		TitleWeight:           0.8,
		KeywordWeight:         0.5,
		DescriptionWeight:     0.2,
		FallbackMinResults:    3,
		FallbackMinConfidence: 40,
		FallbackMaxSynthetic:  2,
		CTAMinPackageQueries:  2,
		CTAMinTotalQueries:    3,
		CTAMessage:            "Sepertinya Anda tertarik dengan paket kami. Hubungi admin via WhatsApp untuk konsultasi gratis!",
	}
}

// ResultItem is one ranked answer.
type ResultItem struct {
	Item      catalog.Item `json:"item"`
	Score     float64      `json:"score"`
	Synthetic bool         `json:"synthetic,omitempty"`
}

// Result is the structured outcome of one Search call.
type Result struct {
	Results             []ResultItem `json:"results"`
	Intent              string       `json:"intent"`
	Entities            EntityFlags  `json:"entities"`
	Confidence          int          `json:"confidence"`
	ShowCallToAction    bool         `json:"show_call_to_action"`
	CallToActionMessage string       `json:"call_to_action_message,omitempty"`
	QueryCount          int          `json:"query_count"`
	PackageQueryCount   int          `json:"package_query_count"`
	Comparison          *Comparison  `json:"comparison,omitempty"`
}

// Engine answers queries for a single session. Not safe for concurrent use;
// each session gets its own instance.
type Engine struct {
	cfg   Config
	items []catalog.Item
	pages []catalog.Page
	index fuzzy.Index
	sess  *Session
	log   zerolog.Logger
}

// New builds an engine over the catalog with the default fuzzy matcher.
func New(items []catalog.Item, pages []catalog.Page, cfg Config, log zerolog.Logger) *Engine {
	docs := make([]fuzzy.Document, len(items))
	for i, it := range items {
		docs[i] = fuzzy.Document{
			"title":       it.Title,
			"keywords":    strings.Join(it.Keywords, " "),
			"description": it.Description,
		}
	}
	fields := []fuzzy.Field{
		{Name: "title", Weight: cfg.TitleWeight},
		{Name: "keywords", Weight: cfg.KeywordWeight},
		{Name: "description", Weight: cfg.DescriptionWeight},
	}
	return NewWithIndex(items, pages, cfg, fuzzy.NewMatcher(docs, fields, cfg.FuzzyThreshold), log)
}

// NewWithIndex builds an engine around a caller-supplied retrieval index.
func NewWithIndex(items []catalog.Item, pages []catalog.Page, cfg Config, index fuzzy.Index, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:   cfg,
		items: items,
		pages: pages,
		index: index,
		sess:  NewSession(),
		log:   log,
	}
}

// Session exposes the engine's conversational state, read-only by contract.
func (e *Engine) Session() *Session {
	return e.sess
}

type candidate struct {
	item  catalog.Item
	score float64
}

// Search answers one raw query. It mutates the engine's session: entity
// accumulation, counters, last category, and token history.
func (e *Engine) Search(raw string) Result {
	q := e.preprocess(raw, e.sess)
	intent := classifyIntent(q)

	e.sess.QueryCount++
	if q.PackageRelated {
		e.sess.PackageQueryCount++
	}

	survivors := e.rank(q, intent)

	if len(survivors) > 0 {
		e.sess.LastCategory = survivors[0].item.Category
	}
	if len(q.Tokens) > 0 {
		e.sess.TokenHistory = append(e.sess.TokenHistory, q.Tokens)
	}

	results := make([]ResultItem, 0, e.cfg.MaxResults)
	for _, c := range survivors {
		results = append(results, ResultItem{Item: c.item, Score: c.score})
	}

	confidence := 0
	if len(results) > 0 {
		confidence = int(math.Min(math.Round(results[0].Score*2), 100))
	}

	if len(results) < e.cfg.FallbackMinResults || confidence < e.cfg.FallbackMinConfidence {
		if synthetic := e.searchPages(q); len(synthetic) > 0 {
			if len(synthetic) > e.cfg.FallbackMaxSynthetic {
				synthetic = synthetic[:e.cfg.FallbackMaxSynthetic]
			}
			merged := make([]ResultItem, 0, len(synthetic)+len(results))
			for _, it := range synthetic {
				merged = append(merged, ResultItem{Item: it, Synthetic: true})
			}
			merged = append(merged, results...)
			if len(merged) > e.cfg.MaxResults {
				merged = merged[:e.cfg.MaxResults]
			}
			results = merged
			if confidence < 50 {
				confidence = 50
			}
		}
	}

	res := Result{
		Results:           results,
		Intent:            intent,
		Entities:          q.Entities,
		Confidence:        confidence,
		QueryCount:        e.sess.QueryCount,
		PackageQueryCount: e.sess.PackageQueryCount,
	}

	if e.sess.PackageQueryCount >= e.cfg.CTAMinPackageQueries ||
		e.sess.QueryCount >= e.cfg.CTAMinTotalQueries {
		res.ShowCallToAction = true
		res.CallToActionMessage = e.cfg.CTAMessage
	}

	if q.Entities.Comparison {
		res.Comparison = BuildComparison(e.items)
	}

	e.log.Debug().
		Str("query", raw).
		Str("intent", intent).
		Int("results", len(results)).
		Int("confidence", confidence).
		Msg("search")

	return res
}

// rank retrieves candidates for the expanded term set, re-scores them with
// the composite scorer, drops weak ones, and caps the survivor list.
func (e *Engine) rank(q ProcessedQuery, intent string) []candidate {
	var survivors []candidate
	for _, m := range e.index.Query(q.Expanded) {
		it := e.items[m.Ref]
		composite := compositeScore(it, q, e.sess, intent)
		if composite <= e.cfg.ScoreThreshold {
			continue
		}
		final := float64(composite) + (1-m.Score)*retrievalWeight
		survivors = append(survivors, candidate{item: it, score: final})
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score > survivors[j].score
	})
	if len(survivors) > e.cfg.MaxResults {
		survivors = survivors[:e.cfg.MaxResults]
	}
	return survivors
}
