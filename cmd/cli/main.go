// Command cli runs an interactive single-session console against the
// bundled catalog. Useful for tuning the lexicon and scoring weights.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/albait/assistant/internal/catalog"
	"github.com/albait/assistant/internal/engine"
	"github.com/albait/assistant/internal/pkg/logger"
)

func main() {
	log := logger.New(os.Getenv("ASSISTANT_LOG_LEVEL"), "console")

	items, err := catalog.LoadItems(os.Getenv("ASSISTANT_CATALOG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	pages, err := catalog.LoadPages(os.Getenv("ASSISTANT_PAGES_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("load pages")
	}

	eng := engine.New(items, pages, engine.DefaultConfig(), log)

	bold := color.New(color.Bold)
	title := color.New(color.FgCyan, color.Bold)
	meta := color.New(color.FgYellow)
	faint := color.New(color.Faint)
	cta := color.New(color.FgGreen)

	bold.Println("assistant console. Ketik pertanyaan, kosong untuk keluar.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}

		res := eng.Search(query)
		meta.Printf("intent=%s confidence=%d\n", res.Intent, res.Confidence)
		for i, r := range res.Results {
			title.Printf("%d. %s", i+1, r.Item.Title)
			faint.Printf("  [%s]\n", r.Item.Category)
			if r.Item.Answer != "" {
				fmt.Println("   " + r.Item.Answer)
			} else if r.Item.Description != "" {
				fmt.Println("   " + r.Item.Description)
			}
		}
		if len(res.Results) == 0 {
			faint.Println("tidak ada hasil")
		}
		if res.Comparison != nil {
			bold.Println("perbandingan paket:")
			for _, p := range res.Comparison.Packages {
				fmt.Printf("   %-10s %-14s %s\n", p.Tier, p.Price, strings.Join(p.Features, ", "))
			}
		}
		if res.ShowCallToAction {
			cta.Println(res.CallToActionMessage)
		}
	}
}
