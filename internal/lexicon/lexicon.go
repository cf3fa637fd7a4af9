// Package lexicon bundles the static Indonesian language tables the query
// preprocessor runs on: typo variants, informal synonyms, semantic
// expansions, stop-words, entity keyword sets, multi-token phrase patterns,
// and the package vocabulary. The tables are data; the only behavior here is
// lookup and token correction.
package lexicon

import "github.com/albait/assistant/internal/pkg/textdist"

// maxTypoDistance bounds the edit-distance correction of unknown tokens
// against canonical lexicon terms.
const maxTypoDistance = 2

// phoneticVariants maps each canonical term to the misspellings users
// actually type for it.
var phoneticVariants = map[string][]string{
	"umroh":     {"omroh", "umro", "umrokh", "unroh", "umrah"},
	"haji":      {"haj", "hajji"},
	"syarat":    {"syrat", "sarat", "siarat", "persyaratan"},
	"paket":     {"pakit", "pake", "pket"},
	"vip":       {"vif", "fip"},
	"reguler":   {"regerul", "regler", "regular"},
	"eksklusif": {"eksklusip", "exclusive", "ekslusif"},
	"manasik":   {"nasik", "mansik"},
	"kantor":    {"kanter", "kntr"},
	"alamat":    {"lamat", "almat"},
	"harga":     {"hrga", "harge"},
	"daftar":    {"dafter", "dftar"},
}

// synonyms normalizes informal and abbreviated forms before typo correction.
var synonyms = map[string]string{
	"pengen": "mau",
	"pingin": "mau",
	"pengin": "mau",
	"gimana": "bagaimana",
	"gmn":    "bagaimana",
	"dmn":    "dimana",
	"brp":    "berapa",
	"telp":   "telepon",
	"tlp":    "telepon",
	"telfon": "telepon",
	"nomer":  "nomor",
	"duit":   "uang",
	"ongkos": "biaya",
}

// semanticMap expands a token into related terms for candidate retrieval.
// Expansions never participate in positional scoring.
var semanticMap = map[string][]string{
	"syarat":      {"dokumen", "berkas", "akta", "nikah", "kk", "ktp", "paspor"},
	"biaya":       {"harga", "tarif", "bayar", "uang", "mahal", "murah"},
	"lokasi":      {"alamat", "kantor", "dimana", "maps", "cirebon", "mundu"},
	"layanan":     {"fasilitas", "fitur", "sarana", "servis", "keunggulan"},
	"kontak":      {"hubungi", "wa", "whatsapp", "nomor", "telepon", "admin", "cs"},
	"pendaftaran": {"daftar", "join", "registrasi"},
	"murah":       {"hemat", "ekonomis", "promo", "terjangkau", "miring"},
	"eksklusif":   {"mewah", "premium", "business"},
	"manasik":     {"bimbingan", "pembekalan", "praktik"},
}

var stopWords = map[string]bool{
	"yang": true, "di": true, "ke": true, "dari": true, "dan": true,
	"atau": true, "pada": true, "dengan": true, "untuk": true,
	"karena": true, "oleh": true, "itu": true, "ini": true,
	"adalah": true, "bagi": true, "seperti": true, "dalam": true,
	"setelah": true, "sebelum": true, "siapa": true, "apa": true,
	"mana": true, "kapan": true, "bagaimana": true, "berapa": true,
	"kenapa": true, "mengapa": true, "mencari": true, "tentang": true,
	"info": true, "informasi": true, "ada": true, "bisa": true,
	"dong": true, "mau": true, "saya": true, "kak": true, "min": true,
}

// Set is a membership lookup over lexicon terms.
type Set map[string]struct{}

func newSet(terms ...string) Set {
	s := make(Set, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tok is in the set.
func (s Set) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// ContainsAny reports whether any token is in the set.
func (s Set) ContainsAny(tokens []string) bool {
	for _, t := range tokens {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Entity keyword sets, scanned against the final token sequence.
var (
	LocationTerms   = newSet("cirebon", "mundu", "banjarwangunan")
	VIPTerms        = newSet("vip", "premium", "mewah", "eksklusif")
	RegularTerms    = newSet("reguler", "hemat", "murah", "ekonomis")
	LegalityTerms   = newSet("resmi", "izin", "legal", "ppiu", "kemenag")
	ContactTerms    = newSet("wa", "whatsapp", "telepon", "kontak", "hubungi", "nomor", "admin", "cs")
	ManasikTerms    = newSet("manasik", "bimbingan", "pembekalan")
	UrgencyTerms    = newSet("booking", "daftar", "pesan", "segera", "langsung")
	PricingTerms    = newSet("harga", "biaya", "tarif", "bayar", "dp", "cicilan")
	ComparisonTerms = newSet("banding", "bandingkan", "perbandingan", "beda", "bedanya", "dibanding", "vs")
)

// PackageVocab marks a query as package-related for the sales counters.
var PackageVocab = newSet(
	"paket", "harga", "biaya", "umroh", "vip", "reguler", "eksklusif",
	"promo", "murah", "daftar", "booking", "pesan", "dp", "cicilan",
	"berangkat",
)

// Phrase intents recognized by patterns; the scorer maps them to compatible
// categories.
const (
	PhrasePricing        = "pricing"
	PhraseBudgetPackage  = "budget_package"
	PhrasePremiumPackage = "premium_package"
	PhraseContact        = "contact"
	PhraseLocation       = "location"
	PhraseRegistration   = "registration"
)

// Pattern is a multi-token phrase whose exact ordered occurrence in the
// token sequence contributes an intent boost.
type Pattern struct {
	Tokens []string
	Intent string
	Boost  int
}

var Patterns = []Pattern{
	{Tokens: []string{"paket", "murah"}, Intent: PhraseBudgetPackage, Boost: 25},
	{Tokens: []string{"paket", "hemat"}, Intent: PhraseBudgetPackage, Boost: 25},
	{Tokens: []string{"paket", "vip"}, Intent: PhrasePremiumPackage, Boost: 25},
	{Tokens: []string{"paket", "eksklusif"}, Intent: PhrasePremiumPackage, Boost: 25},
	{Tokens: []string{"harga", "paket"}, Intent: PhrasePricing, Boost: 20},
	{Tokens: []string{"biaya", "umroh"}, Intent: PhrasePricing, Boost: 20},
	{Tokens: []string{"cara", "daftar"}, Intent: PhraseRegistration, Boost: 25},
	{Tokens: []string{"nomor", "whatsapp"}, Intent: PhraseContact, Boost: 30},
	{Tokens: []string{"alamat", "kantor"}, Intent: PhraseLocation, Boost: 30},
	{Tokens: []string{"lokasi", "kantor"}, Intent: PhraseLocation, Boost: 30},
}

// variantLookup is the reverse of phoneticVariants, built once.
var variantLookup = func() map[string]string {
	m := make(map[string]string)
	for canonical, typos := range phoneticVariants {
		for _, typo := range typos {
			m[typo] = canonical
		}
	}
	return m
}()

// canonicalTerms keeps a stable iteration order for edit-distance correction
// so equidistant keys resolve deterministically.
var canonicalTerms = func() []string {
	terms := make([]string, 0, len(phoneticVariants))
	for canonical := range phoneticVariants {
		terms = append(terms, canonical)
	}
	// fixed order, independent of map iteration
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && terms[j] < terms[j-1]; j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
	return terms
}()

// Normalize maps a raw token to its canonical lexicon form: synonym
// normalization first, then typo correction. Unknown tokens pass through
// unchanged.
func Normalize(tok string) string {
	if canonical, ok := synonyms[tok]; ok {
		tok = canonical
	}
	return correctTypo(tok)
}

// correctTypo resolves a token against the phonetic-variant table, falling
// back to the nearest canonical term within maxTypoDistance.
func correctTypo(tok string) string {
	if canonical, ok := variantLookup[tok]; ok {
		return canonical
	}
	if _, ok := phoneticVariants[tok]; ok {
		return tok
	}
	if nearest, ok := textdist.Nearest(tok, canonicalTerms, maxTypoDistance); ok {
		return nearest
	}
	return tok
}

// IsStopWord reports whether tok is a function word dropped from queries.
func IsStopWord(tok string) bool {
	return stopWords[tok]
}

// Expand returns the semantic expansion terms for tok, or nil.
func Expand(tok string) []string {
	return semanticMap[tok]
}
