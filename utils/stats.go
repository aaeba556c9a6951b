package utils

import (
	"strconv"

	"github.com/crstnhllg/realtor-scraper/models"
)

// SummaryStats aggregates one run's listings for the end-of-run report.
// Price figures only cover listings that published a price.
type SummaryStats struct {
	TotalListings  int
	PricedListings int
	AveragePrice   float64
	MinimumPrice   float64
	MaximumPrice   float64
	MostExpensive  models.Listing
}

func BuildSummaryStats(listings []models.Listing) SummaryStats {
	stats := SummaryStats{TotalListings: len(listings)}

	var totalPrice float64
	for _, l := range listings {
		price, err := strconv.ParseFloat(l.Price, 64)
		if err != nil || price <= 0 {
			continue
		}

		if stats.PricedListings == 0 || price < stats.MinimumPrice {
			stats.MinimumPrice = price
		}
		if price > stats.MaximumPrice {
			stats.MaximumPrice = price
			stats.MostExpensive = l
		}

		totalPrice += price
		stats.PricedListings++
	}

	if stats.PricedListings > 0 {
		stats.AveragePrice = totalPrice / float64(stats.PricedListings)
	}

	return stats
}
