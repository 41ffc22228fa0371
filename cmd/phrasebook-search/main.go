// Command phrasebook-search looks phrases up in a built phrase-book, the
// way the viewer's search bar does: pick the key language, type part of a
// phrase, get the matching records sorted by key.
//
// Flags:
//
//	--book    phrase-book JSON path
//	--lang    key language: english or somali
//	--search  case-insensitive substring of the key phrase
//	--limit   maximum matches to print (0 = all)
//	--config  path to YAML config file
//
// Exit codes: 0 = success (including no matches), 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/somali-phrasebook/internal/app"
	"github.com/heartmarshall/somali-phrasebook/internal/app/builder/phrasejson"
	"github.com/heartmarshall/somali-phrasebook/internal/config"
	"github.com/heartmarshall/somali-phrasebook/internal/phrasebook"
)

func main() {
	bookFlag := flag.String("book", "", "phrase-book JSON path")
	langFlag := flag.String("lang", "", "key language: english or somali")
	searchFlag := flag.String("search", "", "substring of the key phrase")
	limitFlag := flag.Int("limit", 0, "maximum matches to print (0 = all)")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Explicit CLI flags override config.
	if set["book"] {
		cfg.Search.BookPath = *bookFlag
	}
	if set["lang"] {
		cfg.Search.KeyLanguage = *langFlag
	}
	if set["limit"] {
		cfg.Search.Limit = *limitFlag
	}

	logger := app.NewLogger(os.Stderr, cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	records, err := phrasejson.DecodeFile(cfg.Search.BookPath)
	if err != nil {
		logger.Error("load phrase-book", slog.String("error", err.Error()))
		os.Exit(1)
	}

	matches := phrasebook.Search(records, phrasebook.Query{
		KeyLanguage: cfg.Search.Language(),
		Search:      *searchFlag,
	})
	logger.Debug("search completed",
		slog.Int("records", len(records)),
		slog.Int("matches", len(matches)),
	)

	if cfg.Search.Limit > 0 && len(matches) > cfg.Search.Limit {
		matches = matches[:cfg.Search.Limit]
	}

	fmt.Printf("%s ⇄ %s\n", cfg.Search.Language().DisplayName(), cfg.Search.Language().Other().DisplayName())
	for _, m := range matches {
		fmt.Println(phrasebook.RenderMatch(m))
	}
}
