package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/scraper"
	"github.com/crstnhllg/realtor-scraper/services"
	"github.com/crstnhllg/realtor-scraper/storage"
	"github.com/crstnhllg/realtor-scraper/utils"
	"github.com/crstnhllg/realtor-scraper/writer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("✗ Failed to load config: %v", err)
	}

	maxPages := flag.Int("pages", cfg.MaxPages,
		"Search-result pages to scrape")
	outFile := flag.String("out", cfg.OutFile,
		"Output CSV filename")
	headless := flag.Bool("headless", cfg.Headless,
		"Run Chrome headless (false = visible window)")
	useDB := flag.Bool("db", false,
		"Also upsert listings into PostgreSQL")
	flag.Parse()

	cfg.MaxPages = *maxPages
	cfg.OutFile = *outFile
	cfg.Headless = *headless
	if zip := flag.Arg(0); zip != "" {
		cfg.ZIP = zip
	}

	log.Printf("╔═══════════════════════════════════════════════════╗")
	log.Printf("║          Realtor.com ZIP Code Scraper             ║")
	log.Printf("╚═══════════════════════════════════════════════════╝")
	log.Printf("ZIP code : %s", cfg.ZIP)
	log.Printf("Pages    : up to %d", cfg.MaxPages)
	log.Printf("Output   : %s", cfg.OutFile)
	log.Printf("Postgres : %v", *useDB)

	rootCtx, cancelRoot := context.WithTimeout(context.Background(), cfg.GlobalTimeout)
	defer cancelRoot()

	// The browser session is released before anything is written, on success
	// and failure alike.
	fetcher, closeBrowser := scraper.NewChromeFetcher(rootCtx, cfg)
	listings, err := services.ScrapeZIP(fetcher, cfg)
	closeBrowser()
	if err != nil {
		log.Fatalf("✗ %v", err)
	}

	if len(listings) == 0 {
		log.Printf("[%s] no listings scraped — nothing written", cfg.ZIP)
		return
	}

	total, err := writer.WriteCSV(cfg.OutFile, listings)
	if err != nil {
		log.Fatalf("✗ Failed to write CSV: %v", err)
	}

	if *useDB {
		store, err := storage.NewPostgresStore(cfg)
		if err != nil {
			log.Fatalf("✗ Failed to connect to PostgreSQL: %v", err)
		}
		dbCtx, cancelDB := context.WithTimeout(context.Background(), 30*time.Second)
		saved, err := store.SaveListings(dbCtx, cfg.ZIP, listings)
		cancelDB()
		_ = store.Close()
		if err != nil {
			log.Fatalf("✗ Failed to store listings in PostgreSQL: %v", err)
		}
		log.Printf("  %d listings upserted into PostgreSQL", saved)
	}

	stats := utils.BuildSummaryStats(listings)
	log.Printf("═══════════════════════════════════════════════════")
	log.Printf("  DONE — %d listings → %s", total, cfg.OutFile)
	if stats.PricedListings > 0 {
		log.Printf("    priced    : %d of %d", stats.PricedListings, stats.TotalListings)
		log.Printf("    price     : $%.0f – $%.0f (avg $%.0f)",
			stats.MinimumPrice, stats.MaximumPrice, stats.AveragePrice)
		log.Printf("    top price : %s", stats.MostExpensive.Address)
	}
	log.Printf("═══════════════════════════════════════════════════")
}
