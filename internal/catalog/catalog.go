// Package catalog holds the business facts the assistant answers from: the
// curated item catalog and the unstructured page corpus used as a fallback.
// Both are loaded once at startup and never mutated afterwards.
package catalog

import "strings"

// Recognized category names. Scoring and intent compatibility key off these
// values, so catalog data must use them verbatim.
const (
	CategoryPaket      = "Paket"
	CategoryKontak     = "Kontak"
	CategoryLayanan    = "Layanan"
	CategoryManasik    = "Manasik"
	CategoryPembayaran = "Pembayaran"
	CategorySapaan     = "Sapaan"
	CategoryInformasi  = "Informasi"
)

// Item is one answerable fact or offering.
type Item struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Category      string   `json:"category" validate:"required"`
	Keywords      []string `json:"keywords"`
	PriceNumeric  int64    `json:"price_numeric,omitempty" validate:"gte=0"`
	IsRecommended bool     `json:"is_recommended,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Answer        string   `json:"answer,omitempty"`
}

// SearchText returns the lower-cased concatenation of title, keywords, and
// description, the text the composite scorer matches tokens against.
func (it Item) SearchText() string {
	return strings.ToLower(it.Title + " " + strings.Join(it.Keywords, " ") + " " + it.Description)
}

// Page is one entry of the fallback corpus: unstructured site content
// scanned only when catalog retrieval is weak.
type Page struct {
	URL        string   `json:"url" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Headings   []string `json:"headings"`
	Paragraphs []string `json:"paragraphs"`
	Keywords   []string `json:"keywords"`
}
