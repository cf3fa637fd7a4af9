package engine

import (
	"sort"
	"strings"

	"github.com/albait/assistant/internal/catalog"
)

// Page scoring weights for the fallback content search.
const (
	pageRawTitleBonus   = 15
	pageTitleTokenBonus = 8
	pageHeadingBonus    = 6
	pageParagraphBonus  = 3
	pageKeywordExact    = 10
	pageKeywordPartial  = 5
	pageScoreThreshold  = 10
	pageMaxResults      = 3
)

// Sentence scoring weights for answer extraction.
const (
	sentenceTokenBonus     = 10
	sentenceWholeWordBonus = 5
	sentencePhraseBonus    = 20
	sentenceMinLen         = 10
)

type pageHit struct {
	page  catalog.Page
	score int
}

// searchPages scans the fallback corpus and synthesizes catalog-shaped items
// from the best-matching pages. Runs only when catalog retrieval is weak.
func (e *Engine) searchPages(q ProcessedQuery) []catalog.Item {
	var hits []pageHit
	for _, page := range e.pages {
		if s := scorePage(page, q); s > pageScoreThreshold {
			hits = append(hits, pageHit{page: page, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > pageMaxResults {
		hits = hits[:pageMaxResults]
	}

	items := make([]catalog.Item, 0, len(hits))
	for _, h := range hits {
		items = append(items, synthesizeItem(h.page, q))
	}
	return items
}

func scorePage(page catalog.Page, q ProcessedQuery) int {
	score := 0
	titleLower := strings.ToLower(page.Title)
	if q.Raw != "" && strings.Contains(titleLower, q.Raw) {
		score += pageRawTitleBonus
	}
	for _, tok := range q.Tokens {
		if strings.Contains(titleLower, tok) {
			score += pageTitleTokenBonus
		}
		for _, h := range page.Headings {
			if strings.Contains(strings.ToLower(h), tok) {
				score += pageHeadingBonus
			}
		}
		for _, p := range page.Paragraphs {
			if strings.Contains(strings.ToLower(p), tok) {
				score += pageParagraphBonus
			}
		}
		for _, kw := range page.Keywords {
			kwLower := strings.ToLower(kw)
			if kwLower == tok {
				score += pageKeywordExact
			} else if strings.Contains(kwLower, tok) {
				score += pageKeywordPartial
			}
		}
	}
	return score
}

// synthesizeItem shapes one page into a catalog item: best heading as title,
// extracted sentence as description, category inferred from the URL path.
func synthesizeItem(page catalog.Page, q ProcessedQuery) catalog.Item {
	title := page.Title
	for _, h := range page.Headings {
		hLower := strings.ToLower(h)
		matched := false
		for _, tok := range q.Tokens {
			if strings.Contains(hLower, tok) {
				matched = true
				break
			}
		}
		if matched {
			title = h
			break
		}
	}

	return catalog.Item{
		Title:       title,
		Description: extractAnswer(page, q),
		URL:         page.URL,
		Category:    categoryFromURL(page.URL),
		Keywords:    page.Keywords,
	}
}

func categoryFromURL(url string) string {
	switch {
	case strings.Contains(url, "service"):
		return catalog.CategoryPaket
	case strings.Contains(url, "about"):
		return catalog.CategoryInformasi
	case strings.Contains(url, "contact"):
		return catalog.CategoryKontak
	default:
		return catalog.CategoryInformasi
	}
}

type scoredSentence struct {
	text      string
	paragraph int
	order     int
	score     int
}

// extractAnswer picks the most relevant sentence across all paragraphs. When
// the runner-up comes from the same paragraph the two are joined in their
// original order; with no scored sentence at all the first paragraph stands
// in.
func extractAnswer(page catalog.Page, q ProcessedQuery) string {
	var sentences []scoredSentence
	for pi, para := range page.Paragraphs {
		for si, sent := range splitSentences(para) {
			if s := scoreSentence(sent, q); s > 0 {
				sentences = append(sentences, scoredSentence{
					text: sent, paragraph: pi, order: si, score: s,
				})
			}
		}
	}
	if len(sentences) == 0 {
		if len(page.Paragraphs) > 0 {
			return page.Paragraphs[0]
		}
		return ""
	}

	sort.SliceStable(sentences, func(i, j int) bool { return sentences[i].score > sentences[j].score })
	best := sentences[0]
	if len(sentences) > 1 {
		second := sentences[1]
		if second.paragraph == best.paragraph {
			first, last := best, second
			if second.order < best.order {
				first, last = second, best
			}
			return first.text + " " + last.text
		}
	}
	return best.text
}

func scoreSentence(sentence string, q ProcessedQuery) int {
	score := 0
	lower := strings.ToLower(sentence)
	words := strings.Fields(nonWordRe.ReplaceAllString(lower, " "))
	for _, tok := range q.Tokens {
		if !strings.Contains(lower, tok) {
			continue
		}
		score += sentenceTokenBonus
		for _, w := range words {
			if w == tok {
				score += sentenceWholeWordBonus
				break
			}
		}
	}
	if len(q.Tokens) >= 2 && strings.Contains(lower, strings.Join(q.Tokens, " ")) {
		score += sentencePhraseBonus
	}
	return score
}

// Title abbreviations that end with a period mid-sentence. Indonesian
// addresses are full of these.
var abbreviations = map[string]bool{
	"jl": true, "rt": true, "rw": true, "no": true, "dr": true,
	"h": true, "kh": true, "hj": true, "ust": true, "sk": true,
}

// splitSentences breaks a paragraph on sentence boundaries while keeping
// decimal numbers ("28.5 juta") and abbreviated titles ("Jl. Raya") intact.
// Fragments of sentenceMinLen characters or fewer are dropped.
func splitSentences(paragraph string) []string {
	var sentences []string
	runes := []rune(paragraph)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' {
			if i+1 < len(runes) && isDigit(runes[i+1]) && i > 0 && isDigit(runes[i-1]) {
				continue
			}
			if abbreviations[trailingWord(runes, i)] {
				continue
			}
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); len(s) > sentenceMinLen {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); len(s) > sentenceMinLen {
		sentences = append(sentences, s)
	}
	return sentences
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// trailingWord returns the lower-cased word immediately before position i.
func trailingWord(runes []rune, i int) string {
	end := i
	start := end
	for start > 0 && isLetter(runes[start-1]) {
		start--
	}
	return strings.ToLower(string(runes[start:end]))
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
