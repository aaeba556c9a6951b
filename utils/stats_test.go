package utils

import (
	"testing"

	"github.com/crstnhllg/realtor-scraper/models"
)

func TestBuildSummaryStats(t *testing.T) {
	listings := []models.Listing{
		{Price: "450000", Address: "123 Main St", URL: "/listing/1"},
		{Price: "", Address: "456 Oak Ave", URL: "/listing/2"},
		{Price: "1200000", Address: "789 Elm Dr", URL: "/listing/3"},
		{Price: "300000", Address: "12 Pine Ct", URL: "/listing/4"},
	}

	stats := BuildSummaryStats(listings)

	if stats.TotalListings != 4 {
		t.Errorf("TotalListings = %d, want 4", stats.TotalListings)
	}
	if stats.PricedListings != 3 {
		t.Errorf("PricedListings = %d, want 3", stats.PricedListings)
	}
	if stats.MinimumPrice != 300000 {
		t.Errorf("MinimumPrice = %f, want 300000", stats.MinimumPrice)
	}
	if stats.MaximumPrice != 1200000 {
		t.Errorf("MaximumPrice = %f, want 1200000", stats.MaximumPrice)
	}
	if stats.MostExpensive.Address != "789 Elm Dr" {
		t.Errorf("MostExpensive = %q, want 789 Elm Dr", stats.MostExpensive.Address)
	}
	if stats.AveragePrice != 650000 {
		t.Errorf("AveragePrice = %f, want 650000", stats.AveragePrice)
	}
}

func TestBuildSummaryStats_Empty(t *testing.T) {
	stats := BuildSummaryStats(nil)
	if stats.TotalListings != 0 || stats.PricedListings != 0 || stats.AveragePrice != 0 {
		t.Errorf("Empty input should produce zero stats, got %+v", stats)
	}
}
