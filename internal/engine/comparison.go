package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/albait/assistant/internal/catalog"
)

// packageTiers are the title markers that qualify a Paket item for the
// comparison table.
var packageTiers = []string{"Reguler", "VIP", "Eksklusif"}

// ComparisonPackage is one column of the side-by-side package table.
type ComparisonPackage struct {
	Title         string   `json:"title"`
	Tier          string   `json:"tier"`
	Price         string   `json:"price"`
	PriceNumeric  int64    `json:"price_numeric"`
	Features      []string `json:"features"`
	URL           string   `json:"url"`
	IsRecommended bool     `json:"is_recommended"`
}

// Comparison is the synthesized package comparison, ordered by price.
type Comparison struct {
	Packages []ComparisonPackage `json:"packages"`
}

// BuildComparison assembles a side-by-side table of the known package tiers,
// cheapest first. Returns nil when no qualifying package exists.
func BuildComparison(items []catalog.Item) *Comparison {
	var pkgs []ComparisonPackage
	for _, it := range items {
		if it.Category != catalog.CategoryPaket {
			continue
		}
		tier := tierOf(it.Title)
		if tier == "" {
			continue
		}
		pkgs = append(pkgs, ComparisonPackage{
			Title:         it.Title,
			Tier:          tier,
			Price:         formatPrice(it.PriceNumeric),
			PriceNumeric:  it.PriceNumeric,
			Features:      sniffFeatures(it.Description),
			URL:           it.URL,
			IsRecommended: it.IsRecommended,
		})
	}
	if len(pkgs) == 0 {
		return nil
	}
	sort.SliceStable(pkgs, func(i, j int) bool {
		return pkgs[i].PriceNumeric < pkgs[j].PriceNumeric
	})
	return &Comparison{Packages: pkgs}
}

func tierOf(title string) string {
	for _, tier := range packageTiers {
		if strings.Contains(title, tier) {
			return tier
		}
	}
	return ""
}

// sniffFeatures pulls the headline facts out of a package description:
// hotel star rating, trip duration, meal plan, and the Thaif bonus tour.
func sniffFeatures(description string) []string {
	lower := strings.ToLower(description)
	var features []string

	if i := strings.Index(lower, "bintang "); i >= 0 && i+8 < len(lower) {
		if isDigit(rune(lower[i+8])) {
			features = append(features, "Hotel bintang "+string(lower[i+8]))
		}
	}
	for _, tok := range strings.Fields(lower) {
		if !isDigit(rune(tok[0])) {
			continue
		}
		if j := strings.Index(lower, tok+" hari"); j >= 0 {
			features = append(features, tok+" hari")
			break
		}
	}
	if strings.Contains(lower, "makan 3x") {
		features = append(features, "Makan 3x sehari")
	}
	if strings.Contains(lower, "city tour thaif") {
		features = append(features, "City tour Thaif")
	}
	return features
}

// formatPrice renders a rupiah amount the way the brochure does, e.g.
// 28500000 becomes "Rp 28.5 Juta". Zero means the price is unpublished.
func formatPrice(price int64) string {
	if price <= 0 {
		return "Hubungi kami"
	}
	juta := float64(price) / 1_000_000
	if juta == float64(int64(juta)) {
		return fmt.Sprintf("Rp %d Juta", int64(juta))
	}
	return fmt.Sprintf("Rp %.1f Juta", juta)
}
