// Package fuzzy provides an approximate multi-field string-matching index
// over a small in-memory document set. Query terms are resolved against the
// indexed vocabulary in three stages (exact, prefix, edit distance), then
// matched documents are scored by weighted field hits. The Index interface is
// intentionally narrow so a different matcher can be dropped in.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/albait/assistant/internal/pkg/textdist"
	"github.com/albait/assistant/internal/pkg/trie"
)

// Document is one indexable record, as raw text per field name.
type Document map[string]string

// Field configures one indexed field. An exact hit scores perfectly on any
// field; weight only inflates the dissimilarity of imperfect (prefix or
// typo-resolved) hits on weaker fields.
type Field struct {
	Name   string
	Weight float64
}

// Match pairs a document (by its index in the input slice) with a
// dissimilarity score in [0,1], where 0 is a perfect match.
type Match struct {
	Ref   int
	Score float64
}

// Index is the retrieval capability the engine depends on.
type Index interface {
	// Query runs an OR-of-terms lookup and returns matches ordered by
	// ascending dissimilarity. An empty result is a valid weak-match
	// outcome, not an error.
	Query(terms []string) []Match
}

const (
	prefixResolveLimit = 3
	maxEditDistance    = 2

	// match grades per resolution stage
	exactGrade  = 1.0
	prefixGrade = 0.85
)

type docEntry struct {
	fields map[string]map[string]bool // field name -> token set
}

// Matcher is the built-in Index implementation.
type Matcher struct {
	fields    []Field
	maxWeight float64
	threshold float64
	docs      []docEntry
	vocab     map[string]struct{}
	prefixes  *trie.Trie
}

// NewMatcher indexes docs over the given fields. threshold is the maximum
// dissimilarity admitted by Query; loose values admit typo-grade matches.
func NewMatcher(docs []Document, fields []Field, threshold float64) *Matcher {
	m := &Matcher{
		fields:    fields,
		threshold: threshold,
		vocab:     make(map[string]struct{}),
		prefixes:  trie.NewTrie(),
	}
	for _, f := range fields {
		if f.Weight > m.maxWeight {
			m.maxWeight = f.Weight
		}
	}

	for _, doc := range docs {
		entry := docEntry{fields: make(map[string]map[string]bool)}
		for _, f := range fields {
			set := make(map[string]bool)
			for _, tok := range tokenize(doc[f.Name]) {
				set[tok] = true
				if _, seen := m.vocab[tok]; !seen {
					m.vocab[tok] = struct{}{}
					m.prefixes.Insert(tok)
				}
			}
			entry.fields[f.Name] = set
		}
		m.docs = append(m.docs, entry)
	}
	return m
}

// resolved is a vocabulary token a query term was mapped to, with the grade
// of that mapping.
type resolved struct {
	token string
	grade float64
}

// resolveTerm maps a query term onto indexed vocabulary: exact membership
// first, then prefix completions, then nearest term within edit distance.
func (m *Matcher) resolveTerm(term string) []resolved {
	if _, ok := m.vocab[term]; ok {
		return []resolved{{token: term, grade: exactGrade}}
	}

	if completions := m.prefixes.SearchPrefix(term, prefixResolveLimit); completions != nil {
		out := make([]resolved, 0, len(completions))
		for _, c := range completions {
			out = append(out, resolved{token: c, grade: prefixGrade})
		}
		return out
	}

	best := ""
	bestDist := maxEditDistance + 1
	for key := range m.vocab {
		if d := textdist.Distance(term, key); d < bestDist {
			bestDist = d
			best = key
		}
	}
	if best == "" {
		return nil
	}
	longer := len(term)
	if len(best) > longer {
		longer = len(best)
	}
	return []resolved{{token: best, grade: 1.0 - float64(bestDist)/float64(longer)}}
}

// noMatch is a sentinel dissimilarity above any admissible score.
const noMatch = 2.0

// Query implements Index.
func (m *Matcher) Query(terms []string) []Match {
	var pool []resolved
	for _, term := range terms {
		pool = append(pool, m.resolveTerm(term)...)
	}
	if len(pool) == 0 {
		return nil
	}

	var matches []Match
	for ref, doc := range m.docs {
		dissim := noMatch
		for _, f := range m.fields {
			set := doc.fields[f.Name]
			for _, r := range pool {
				if !set[r.token] {
					continue
				}
				// exact resolutions (grade 1) score 0 regardless of the
				// field; the weight exponent only pushes imperfect hits on
				// weaker fields further out
				if d := math.Pow(1.0-r.grade, f.Weight/m.maxWeight); d < dissim {
					dissim = d
				}
			}
		}
		if dissim <= m.threshold {
			matches = append(matches, Match{Ref: ref, Score: dissim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}

// tokenize lowercases and splits field text on non-alphanumeric runs.
func tokenize(content string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(content) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
