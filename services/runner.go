package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/models"
	"github.com/crstnhllg/realtor-scraper/scraper"
)

// PageFetcher renders one search-results page for a ZIP code and returns its
// HTML. Satisfied by scraper.ChromeFetcher; tests plug in a stub.
type PageFetcher interface {
	FetchPage(zip string, page int) (string, error)
}

// ScrapeZIP walks up to cfg.MaxPages of search results for one ZIP code and
// returns every valid listing in document order. A failure on the first page
// is fatal; a failure (or empty page) later ends pagination with whatever was
// collected so far.
func ScrapeZIP(fetcher PageFetcher, cfg config.Config) ([]models.Listing, error) {
	var all []models.Listing

	for page := 1; page <= cfg.MaxPages; page++ {
		log.Printf("[%s] search page %d/%d", cfg.ZIP, page, cfg.MaxPages)

		html, err := fetcher.FetchPage(cfg.ZIP, page)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("load first results page: %w", err)
			}
			log.Printf("[%s] ⚠ page %d: %v — stopping pagination", cfg.ZIP, page, err)
			break
		}

		got, err := scraper.Extract(strings.NewReader(html), cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", page, err)
		}
		if len(got) == 0 {
			log.Printf("[%s] page %d had no listings — stopping pagination", cfg.ZIP, page)
			break
		}

		all = append(all, got...)
		log.Printf("[%s] page %d → %d listings (running total: %d)",
			cfg.ZIP, page, len(got), len(all))
	}

	return all, nil
}
