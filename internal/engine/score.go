package engine

import (
	"strings"

	"github.com/albait/assistant/internal/catalog"
)

// Additive scoring weights. Hand-tuned against real user queries; retrieval
// similarity is folded in last and never dominates these.
const (
	tokenHitScore        = 10
	bigramBonus          = 5
	fullPhraseBonus      = 20
	entityTitleBonus     = 15
	continuityBonus      = 10
	persistedEntityBonus = 10
	titleTokenBonus      = 20
	categoryTokenBonus   = 25
	keywordExactBonus    = 15
	retrievalWeight      = 10.0
)

// compositeScore ranks one catalog item against the processed query and the
// session so far. Purely additive; components are independent.
func compositeScore(it catalog.Item, q ProcessedQuery, sess *Session, intent string) int {
	score := 0
	searchText := it.SearchText()
	titleLower := strings.ToLower(it.Title)
	categoryLower := strings.ToLower(it.Category)

	for i, tok := range q.Tokens {
		if strings.Contains(searchText, tok) {
			score += tokenHitScore
			if i > 0 && strings.Contains(searchText, q.Tokens[i-1]+" "+tok) {
				score += bigramBonus
			}
		}
		if strings.Contains(titleLower, tok) {
			score += titleTokenBonus
		}
		if strings.Contains(categoryLower, tok) {
			score += categoryTokenBonus
		}
		for _, kw := range it.Keywords {
			if tok == strings.ToLower(kw) {
				score += keywordExactBonus
				break
			}
		}
	}

	if len(q.Tokens) >= 2 && strings.Contains(titleLower, strings.Join(q.Tokens, " ")) {
		score += fullPhraseBonus
	}

	for _, ph := range q.Phrases {
		if phraseCategories[ph.Intent][it.Category] {
			score += ph.Boost
		}
	}

	for _, name := range q.Entities.names() {
		if entityMatchesItem(name, it) {
			score += entityTitleBonus
		}
	}

	if sess.LastCategory != "" && it.Category == sess.LastCategory {
		score += continuityBonus
	}

	if b, ok := intentBoosts[intent]; ok && b.categories[it.Category] {
		score += b.amount
	}

	// Entities accumulated across the whole session keep nudging matching
	// items even on unrelated follow-up queries.
	for _, name := range sess.entityNames() {
		if entityMatchesItem(name, it) {
			score += persistedEntityBonus
		}
	}

	return score
}

// entityMatchesItem checks whether an entity flag is about this item.
func entityMatchesItem(entity string, it catalog.Item) bool {
	titleLower := strings.ToLower(it.Title)
	switch entity {
	case EntityVIP:
		return strings.Contains(titleLower, "vip") || strings.Contains(titleLower, "eksklusif")
	case EntityRegular:
		return strings.Contains(titleLower, "reguler")
	case EntityLocation, EntityContact:
		return it.Category == catalog.CategoryKontak
	case EntityManasik:
		return it.Category == catalog.CategoryManasik || strings.Contains(titleLower, "manasik")
	case EntityUrgency, EntityPricing:
		return it.Category == catalog.CategoryPaket || it.Category == catalog.CategoryPembayaran
	case EntityLegality:
		return strings.Contains(titleLower, "legalitas") || strings.Contains(titleLower, "resmi")
	default:
		return false
	}
}
