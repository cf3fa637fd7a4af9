package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

//go:embed data/pages.json
var defaultPagesJSON []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// LoadItems reads catalog items from the JSON file at path, or from the
// bundled default dataset when path is empty. Entries that fail validation
// reject the whole load; a broken catalog should never reach the engine.
func LoadItems(path string) ([]Item, error) {
	raw, err := readOrDefault(path, defaultCatalogJSON)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i, it := range items {
		if err := validate.Struct(it); err != nil {
			return nil, fmt.Errorf("catalog item %d (%q): %w", i, it.Title, err)
		}
	}
	return items, nil
}

// LoadPages reads the fallback page corpus from the JSON file at path, or
// from the bundled default when path is empty.
func LoadPages(path string) ([]Page, error) {
	raw, err := readOrDefault(path, defaultPagesJSON)
	if err != nil {
		return nil, err
	}

	var pages []Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	for i, p := range pages {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("page %d (%q): %w", i, p.URL, err)
		}
	}
	return pages, nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
