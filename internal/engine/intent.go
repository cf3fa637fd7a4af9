package engine

import "github.com/albait/assistant/internal/catalog"

// Intent labels returned by the classifier.
const (
	IntentKontak       = "kontak"
	IntentManasik      = "manasik"
	IntentBooking      = "booking"
	IntentPaketVIP     = "paket_vip"
	IntentPaketReguler = "paket_reguler"
	IntentAlamat       = "alamat"
	IntentPaketUmum    = "paket_umum"
	IntentLayanan      = "layanan"
	IntentFuzzy        = "fuzzy"
)

// classifyIntent walks a fixed priority chain over entity flags and literal
// tokens; the first matching rule wins. Contact outranks everything.
func classifyIntent(q ProcessedQuery) string {
	has := func(terms ...string) bool {
		for _, t := range q.Tokens {
			for _, want := range terms {
				if t == want {
					return true
				}
			}
		}
		return false
	}

	switch {
	case q.Entities.Contact || has("kontak", "hubungi"):
		return IntentKontak
	case q.Entities.Manasik || has("manasik", "bimbingan"):
		return IntentManasik
	case q.Entities.Urgency || has("booking", "daftar", "pesan"):
		return IntentBooking
	case q.Entities.VIP:
		return IntentPaketVIP
	case q.Entities.Regular:
		return IntentPaketReguler
	case q.Entities.Location || has("kantor", "alamat"):
		return IntentAlamat
	case has("paket", "harga", "biaya"):
		return IntentPaketUmum
	case has("layanan", "fasilitas"):
		return IntentLayanan
	default:
		return IntentFuzzy
	}
}

// intentBoost is the category bonus granted when an item's category sits in
// the intent's expected set. Contact-style intents carry the largest weight
// so that address and phone items win ties on raw overlap.
type intentBoost struct {
	categories map[string]bool
	amount     int
}

var intentBoosts = map[string]intentBoost{
	IntentKontak: {categories: map[string]bool{catalog.CategoryKontak: true}, amount: 50},
	IntentAlamat: {categories: map[string]bool{catalog.CategoryKontak: true}, amount: 50},
	IntentManasik: {
		categories: map[string]bool{catalog.CategoryManasik: true},
		amount:     40,
	},
	IntentBooking: {
		categories: map[string]bool{catalog.CategoryPaket: true, catalog.CategoryLayanan: true},
		amount:     30,
	},
	IntentPaketVIP: {
		categories: map[string]bool{catalog.CategoryPaket: true, catalog.CategoryLayanan: true},
		amount:     30,
	},
	IntentPaketReguler: {
		categories: map[string]bool{catalog.CategoryPaket: true, catalog.CategoryLayanan: true},
		amount:     30,
	},
	IntentPaketUmum: {
		categories: map[string]bool{catalog.CategoryPaket: true, catalog.CategoryLayanan: true},
		amount:     30,
	},
	IntentLayanan: {
		categories: map[string]bool{catalog.CategoryLayanan: true, catalog.CategoryPaket: true},
		amount:     30,
	},
}

// phraseCategories maps a detected phrase intent to the categories its boost
// applies to.
var phraseCategories = map[string]map[string]bool{
	"pricing":         {catalog.CategoryPaket: true},
	"budget_package":  {catalog.CategoryPaket: true},
	"premium_package": {catalog.CategoryPaket: true},
	"contact":         {catalog.CategoryKontak: true},
	"location":        {catalog.CategoryKontak: true},
	"registration":    {catalog.CategoryPaket: true, catalog.CategoryPembayaran: true},
}
