package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albait/assistant/internal/catalog"
)

func TestFallbackWithEmptyCatalog(t *testing.T) {
	pages, err := catalog.LoadPages("")
	require.NoError(t, err)
	e := New(nil, pages, DefaultConfig(), zerolog.Nop())

	res := e.Search("alamat kantor cirebon")
	require.NotEmpty(t, res.Results)
	assert.True(t, res.Results[0].Synthetic)
	assert.Equal(t, catalog.CategoryKontak, res.Results[0].Item.Category)
	assert.GreaterOrEqual(t, res.Confidence, 50)
}

func TestFallbackCategoryFromURL(t *testing.T) {
	assert.Equal(t, catalog.CategoryPaket, categoryFromURL("/services"))
	assert.Equal(t, catalog.CategoryInformasi, categoryFromURL("/about"))
	assert.Equal(t, catalog.CategoryKontak, categoryFromURL("/contact"))
	assert.Equal(t, catalog.CategoryInformasi, categoryFromURL("/"))
}

func TestFallbackSyntheticTitleFromHeading(t *testing.T) {
	page := catalog.Page{
		URL:        "/contact",
		Title:      "Hubungi Kami",
		Headings:   []string{"Informasi Umum", "Alamat Kantor di Cirebon"},
		Paragraphs: []string{"Kantor kami berlokasi di Cirebon dan mudah dijangkau."},
	}
	q := ProcessedQuery{Tokens: []string{"alamat", "kantor"}}

	it := synthesizeItem(page, q)
	assert.Equal(t, "Alamat Kantor di Cirebon", it.Title)
	assert.Equal(t, catalog.CategoryKontak, it.Category)
	assert.NotEmpty(t, it.Description)
}

func TestSplitSentencesProtectsDecimals(t *testing.T) {
	got := splitSentences("Paket mulai dari 28.5 juta rupiah. Hubungi kami untuk detailnya.")
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "28.5 juta")
}

func TestSplitSentencesProtectsAbbreviations(t *testing.T) {
	got := splitSentences("Kantor kami di Jl. Raya Banjarwangunan, Kecamatan Mundu. Jam buka 08.30 sampai 16.30 WIB.")
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Jl. Raya Banjarwangunan")
	assert.Contains(t, got[1], "08.30 sampai 16.30")
}

func TestSplitSentencesDropsFragments(t *testing.T) {
	got := splitSentences("Ya. Kami melayani pendaftaran umroh setiap hari kerja.")
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "pendaftaran")
}

func TestExtractAnswerJoinsSameParagraph(t *testing.T) {
	page := catalog.Page{
		URL:   "/",
		Title: "Beranda",
		Paragraphs: []string{
			"Paket umroh reguler tersedia setiap bulan dari Cirebon. Jadwal umroh berangkat rutin dan terjadwal. Kantor kami buka setiap hari kerja.",
		},
	}
	q := ProcessedQuery{Tokens: []string{"umroh"}}

	got := extractAnswer(page, q)
	assert.Contains(t, got, "Paket umroh reguler tersedia")
	assert.Contains(t, got, "Jadwal umroh berangkat")
	assert.NotContains(t, got, "Kantor kami")
}

func TestExtractAnswerSingleBest(t *testing.T) {
	page := catalog.Page{
		URL:   "/",
		Title: "Beranda",
		Paragraphs: []string{
			"Manasik umroh gratis untuk semua jamaah terdaftar.",
			"Kantor buka dari pagi sampai sore hari.",
		},
	}
	q := ProcessedQuery{Tokens: []string{"manasik"}}

	got := extractAnswer(page, q)
	assert.Equal(t, "Manasik umroh gratis untuk semua jamaah terdaftar.", got)
}

func TestExtractAnswerFallsBackToFirstParagraph(t *testing.T) {
	page := catalog.Page{
		URL:        "/",
		Title:      "Beranda",
		Paragraphs: []string{"Selamat datang di situs kami.", "Paragraf kedua."},
	}
	q := ProcessedQuery{Tokens: []string{"zzz"}}

	assert.Equal(t, "Selamat datang di situs kami.", extractAnswer(page, q))
}

func TestScorePageKeywordHits(t *testing.T) {
	page := catalog.Page{
		URL:      "/contact",
		Title:    "Hubungi Kami",
		Keywords: []string{"alamat", "alamat kantor"},
	}
	q := ProcessedQuery{Raw: "alamat", Tokens: []string{"alamat"}}

	// exact keyword +10, partial keyword +5
	assert.Equal(t, pageKeywordExact+pageKeywordPartial, scorePage(page, q))
}
