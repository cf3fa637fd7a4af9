package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albait/assistant/internal/catalog"
)

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{
			Title:        "Paket Umroh Reguler 9 Hari",
			Description:  "Paket hemat 9 hari dengan hotel bintang 3 dekat masjid, makan 3x sehari.",
			URL:          "/services#reguler",
			Category:     catalog.CategoryPaket,
			Keywords:     []string{"paket", "reguler", "murah", "hemat"},
			PriceNumeric: 28500000,
		},
		{
			Title:         "Paket Umroh VIP 12 Hari",
			Description:   "Paket terlaris 12 hari dengan hotel bintang 4, makan 3x sehari, city tour Thaif.",
			URL:           "/services#vip",
			Category:      catalog.CategoryPaket,
			Keywords:      []string{"paket", "vip", "premium"},
			PriceNumeric:  35500000,
			IsRecommended: true,
		},
		{
			Title:        "Paket Umroh Eksklusif 9 Hari",
			Description:  "Paket premium 9 hari dengan hotel bintang 5, pesawat business class, makan 3x sehari.",
			URL:          "/services#eksklusif",
			Category:     catalog.CategoryPaket,
			Keywords:     []string{"paket", "eksklusif", "mewah"},
			PriceNumeric: 42500000,
		},
		{
			Title:       "Kontak & WhatsApp Admin",
			Description: "Customer service siap melayani konsultasi seputar pendaftaran.",
			URL:         "/contact",
			Category:    catalog.CategoryKontak,
			Keywords:    []string{"kontak", "whatsapp", "telepon", "admin"},
			Answer:      "Hubungi kami via WhatsApp.",
		},
		{
			Title:       "Bimbingan Manasik Gratis",
			Description: "Manasik umroh gratis teori dan praktik untuk semua jamaah.",
			URL:         "/services#manasik",
			Category:    catalog.CategoryManasik,
			Keywords:    []string{"manasik", "bimbingan"},
		},
	}
}

func newTestEngine(t *testing.T, items []catalog.Item) *Engine {
	t.Helper()
	pages, err := catalog.LoadPages("")
	require.NoError(t, err)
	return New(items, pages, DefaultConfig(), zerolog.Nop())
}

func TestSearchExactTitleRanksFirst(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	res := e.Search("paket umroh reguler")
	require.NotEmpty(t, res.Results)
	assert.Equal(t, "Paket Umroh Reguler 9 Hari", res.Results[0].Item.Title)
	assert.Positive(t, res.Confidence)
}

func TestSearchTypoToleranceAndIntent(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	res := e.Search("info paket umro")
	require.NotEmpty(t, res.Results)
	assert.Equal(t, IntentPaketUmum, res.Intent)
	assert.Equal(t, catalog.CategoryPaket, res.Results[0].Item.Category)
}

func TestSearchDescriptionOnlyTokensRetrieveCatalog(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	// "hotel" and "bintang" appear only in package descriptions, never in
	// titles or keywords; they must still surface genuine catalog items
	res := e.Search("hotel bintang berapa")
	require.NotEmpty(t, res.Results)
	assert.False(t, res.Results[0].Synthetic)
	assert.Equal(t, catalog.CategoryPaket, res.Results[0].Item.Category)
}

func TestSearchEntityAccumulationIsMonotonic(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	e.Search("paket vip dong")
	require.True(t, e.Session().Entities[EntityVIP])
	before := len(e.Session().Entities)

	e.Search("jadwal manasik")
	assert.True(t, e.Session().Entities[EntityVIP], "vip flag must survive unrelated queries")
	assert.True(t, e.Session().Entities[EntityManasik])
	assert.GreaterOrEqual(t, len(e.Session().Entities), before)
}

func TestSearchPersistedEntityBiasesFollowUps(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	e.Search("paket vip")
	res := e.Search("harga paket umroh")
	require.NotEmpty(t, res.Results)

	var vipScore, eksklusifScore float64
	for _, r := range res.Results {
		switch r.Item.Title {
		case "Paket Umroh VIP 12 Hari":
			vipScore = r.Score
		case "Paket Umroh Eksklusif 9 Hari":
			eksklusifScore = r.Score
		}
	}
	require.NotZero(t, vipScore)
	require.NotZero(t, eksklusifScore)
}

func TestSearchUpdatesLastCategory(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	e.Search("paket umroh vip")
	assert.Equal(t, catalog.CategoryPaket, e.Session().LastCategory)

	e.Search("nomor whatsapp admin")
	assert.Equal(t, catalog.CategoryKontak, e.Session().LastCategory)
}

func TestSearchTokenHistoryGrows(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	e.Search("paket umroh")
	e.Search("???")
	e.Search("manasik")

	// the punctuation-only query contributes no tokens and no history entry
	assert.Len(t, e.Session().TokenHistory, 2)
}

func TestSearchSalesTriggerOnThirdQuery(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	r1 := e.Search("jadwal manasik")
	assert.False(t, r1.ShowCallToAction)
	r2 := e.Search("nomor whatsapp")
	assert.False(t, r2.ShowCallToAction)
	r3 := e.Search("alamat kantor")
	assert.True(t, r3.ShowCallToAction)
	assert.NotEmpty(t, r3.CallToActionMessage)
	assert.Equal(t, 3, r3.QueryCount)
}

func TestSearchSalesTriggerOnSecondPackageQuery(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	r1 := e.Search("paket vip")
	assert.False(t, r1.ShowCallToAction)
	r2 := e.Search("harga umroh reguler")
	assert.True(t, r2.ShowCallToAction)
	assert.Equal(t, 2, r2.PackageQueryCount)
}

func TestSearchComparisonOnComparisonQuery(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	res := e.Search("apa bedanya paket")
	require.NotNil(t, res.Comparison)
	assert.Len(t, res.Comparison.Packages, 3)

	res = e.Search("jadwal manasik")
	assert.Nil(t, res.Comparison)
}

func TestSearchEmptyQuery(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	res := e.Search("")
	assert.Equal(t, IntentFuzzy, res.Intent)
	assert.Equal(t, 1, res.QueryCount)
}

func TestSearchConfidenceZeroWithoutAnyMatch(t *testing.T) {
	e := New(nil, nil, DefaultConfig(), zerolog.Nop())

	res := e.Search("zzz qqq xxx")
	assert.Empty(t, res.Results)
	assert.Equal(t, 0, res.Confidence)
}

func TestSearchResultCap(t *testing.T) {
	e := newTestEngine(t, testCatalog())

	res := e.Search("paket umroh harga promo")
	assert.LessOrEqual(t, len(res.Results), DefaultConfig().MaxResults)
}
