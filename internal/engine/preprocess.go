package engine

import (
	"regexp"
	"strings"

	"github.com/albait/assistant/internal/lexicon"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// EntityFlags are the topical signals detected in one query.
type EntityFlags struct {
	Location   bool `json:"location"`
	VIP        bool `json:"vip"`
	Regular    bool `json:"regular"`
	Legality   bool `json:"legality"`
	Contact    bool `json:"contact"`
	Manasik    bool `json:"manasik"`
	Urgency    bool `json:"urgency"`
	Pricing    bool `json:"pricing"`
	Comparison bool `json:"comparison"`
}

func (f EntityFlags) names() []string {
	var names []string
	add := func(on bool, name string) {
		if on {
			names = append(names, name)
		}
	}
	add(f.Location, EntityLocation)
	add(f.VIP, EntityVIP)
	add(f.Regular, EntityRegular)
	add(f.Legality, EntityLegality)
	add(f.Contact, EntityContact)
	add(f.Manasik, EntityManasik)
	add(f.Urgency, EntityUrgency)
	add(f.Pricing, EntityPricing)
	add(f.Comparison, EntityComparison)
	return names
}

// PhraseMatch is a multi-token pattern hit carrying its scoring boost.
type PhraseMatch struct {
	Intent string
	Boost  int
}

// ProcessedQuery is the structured form of one raw query, built once per
// Search call and discarded afterwards.
type ProcessedQuery struct {
	Raw            string
	Tokens         []string
	Expanded       []string
	Entities       EntityFlags
	Phrases        []PhraseMatch
	PackageRelated bool
}

// preprocess turns a raw query into a ProcessedQuery. Entity detection also
// folds the raised flags into the session's accumulated set; every other
// step is pure.
func (e *Engine) preprocess(raw string, sess *Session) ProcessedQuery {
	lowered := strings.ToLower(raw)
	stripped := nonWordRe.ReplaceAllString(lowered, " ")

	var tokens []string
	for _, tok := range strings.Fields(stripped) {
		if len(tok) <= 1 {
			continue
		}
		tok = lexicon.Normalize(tok)
		if lexicon.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	// Expanded terms feed retrieval only; positional scoring sticks to the
	// token sequence.
	seen := make(map[string]bool, len(tokens))
	expanded := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			expanded = append(expanded, tok)
		}
	}
	for _, tok := range tokens {
		for _, rel := range lexicon.Expand(tok) {
			if !seen[rel] {
				seen[rel] = true
				expanded = append(expanded, rel)
			}
		}
	}

	flags := detectEntities(tokens)
	sess.rememberEntities(flags)

	return ProcessedQuery{
		Raw:            lowered,
		Tokens:         tokens,
		Expanded:       expanded,
		Entities:       flags,
		Phrases:        detectPhrases(tokens),
		PackageRelated: lexicon.PackageVocab.ContainsAny(tokens),
	}
}

func detectEntities(tokens []string) EntityFlags {
	return EntityFlags{
		Location:   lexicon.LocationTerms.ContainsAny(tokens),
		VIP:        lexicon.VIPTerms.ContainsAny(tokens),
		Regular:    lexicon.RegularTerms.ContainsAny(tokens),
		Legality:   lexicon.LegalityTerms.ContainsAny(tokens),
		Contact:    lexicon.ContactTerms.ContainsAny(tokens),
		Manasik:    lexicon.ManasikTerms.ContainsAny(tokens),
		Urgency:    lexicon.UrgencyTerms.ContainsAny(tokens),
		Pricing:    lexicon.PricingTerms.ContainsAny(tokens),
		Comparison: lexicon.ComparisonTerms.ContainsAny(tokens),
	}
}

// detectPhrases slides each pattern over the token sequence and records
// exact ordered matches. Multiple patterns may fire for one query.
func detectPhrases(tokens []string) []PhraseMatch {
	var matches []PhraseMatch
	for _, p := range lexicon.Patterns {
		n := len(p.Tokens)
		if n == 0 || n > len(tokens) {
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			hit := true
			for j := 0; j < n; j++ {
				if tokens[i+j] != p.Tokens[j] {
					hit = false
					break
				}
			}
			if hit {
				matches = append(matches, PhraseMatch{Intent: p.Intent, Boost: p.Boost})
				break
			}
		}
	}
	return matches
}
