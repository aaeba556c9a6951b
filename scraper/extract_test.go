package scraper

import (
	"strings"
	"testing"
)

// card builds a synthetic search-result card. Empty field values are omitted
// from the markup entirely, matching how the site drops unpublished fields.
func card(price, beds, baths, sqft, lot, address, href string) string {
	var b strings.Builder
	b.WriteString(`<div data-search-rank="1">`)
	if href != "" {
		b.WriteString(`<div class="card-content"><a href="` + href + `">View</a></div>`)
	}
	if price != "" {
		b.WriteString(`<div data-testid="card-price"><span>` + price + `</span></div>`)
	}
	b.WriteString(`<ul>`)
	if beds != "" {
		b.WriteString(`<li data-testid="property-meta-beds"><span>` + beds + `</span>bed</li>`)
	}
	if baths != "" {
		b.WriteString(`<li data-testid="property-meta-baths"><span>` + baths + `</span>bath</li>`)
	}
	if sqft != "" {
		b.WriteString(`<li data-testid="property-meta-sqft"><span>` + sqft + `</span>sqft</li>`)
	}
	if lot != "" {
		b.WriteString(`<li data-testid="property-meta-lot-size"><span>` + lot + `</span>lot</li>`)
	}
	b.WriteString(`</ul>`)
	if address != "" {
		b.WriteString(`<div class="card-address">` + address + `</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func page(cards ...string) string {
	return `<html><body><section class="PropertiesList_propertiesContainer__abc">` +
		strings.Join(cards, "") + `</section></body></html>`
}

func TestExtract_AllFieldsPresent(t *testing.T) {
	doc := page(
		card("$450,000", "3", "2", "1,800", "0.2 acre", "123 Main St", "/listing/1"),
		card("$1,200,000", "4", "3.5+", "3,200", "0.5 acre", "789 Elm Dr", "/listing/3"),
	)

	listings, err := Extract(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(listings))
	}

	first := listings[0]
	if first.Price != "450000" {
		t.Errorf("Price = %q, want %q", first.Price, "450000")
	}
	if first.Beds != "3" || first.Baths != "2" {
		t.Errorf("Beds/Baths = %q/%q, want 3/2", first.Beds, first.Baths)
	}
	if first.SquareFootage != "1800" {
		t.Errorf("SquareFootage = %q, want %q", first.SquareFootage, "1800")
	}
	if first.LotSize != "0.2 acre" {
		t.Errorf("LotSize = %q, want %q", first.LotSize, "0.2 acre")
	}
	if first.Address != "123 Main St" {
		t.Errorf("Address = %q, want %q", first.Address, "123 Main St")
	}
	if first.URL != "/listing/1" {
		t.Errorf("URL = %q, want %q", first.URL, "/listing/1")
	}

	// Document order is preserved.
	if listings[1].Address != "789 Elm Dr" {
		t.Errorf("Second listing address = %q, want %q", listings[1].Address, "789 Elm Dr")
	}
	if listings[1].Baths != "3.5" {
		t.Errorf("Second listing baths = %q, want %q", listings[1].Baths, "3.5")
	}
}

func TestExtract_MissingOptionalFields(t *testing.T) {
	doc := page(card("", "2", "1", "", "", "456 Oak Ave", "/listing/2"))

	listings, err := Extract(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}

	l := listings[0]
	if l.Price != "" || l.SquareFootage != "" || l.LotSize != "" {
		t.Errorf("Missing optional fields should be empty, got price=%q sqft=%q lot=%q",
			l.Price, l.SquareFootage, l.LotSize)
	}
	if l.Beds != "2" || l.Baths != "1" {
		t.Errorf("Beds/Baths = %q/%q, want 2/1", l.Beds, l.Baths)
	}
	if l.Address != "456 Oak Ave" || l.URL != "/listing/2" {
		t.Errorf("Required fields wrong: address=%q url=%q", l.Address, l.URL)
	}
}

func TestExtract_SkipsCardsMissingRequiredFields(t *testing.T) {
	doc := page(
		card("$450,000", "3", "2", "1,800", "0.2 acre", "123 Main St", "/listing/1"),
		// one card with no address, one with no link
		card("$300,000", "2", "1", "", "", "", "/listing/2"),
		card("$300,000", "2", "1", "", "", "456 Oak Ave", ""),
		card("", "", "", "", "", "789 Elm Dr", "/listing/3"),
	)

	listings, err := Extract(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings (two cards skipped), got %d", len(listings))
	}
	if listings[0].URL != "/listing/1" || listings[1].URL != "/listing/3" {
		t.Errorf("Wrong cards survived: %q, %q", listings[0].URL, listings[1].URL)
	}
}

func TestExtract_ResolvesRelativeLinks(t *testing.T) {
	doc := page(card("$450,000", "3", "2", "", "", "123 Main St", "/realestateandhomes-detail/x"))

	listings, err := Extract(strings.NewReader(doc), "https://www.realtor.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}

	want := "https://www.realtor.com/realestateandhomes-detail/x"
	if listings[0].URL != want {
		t.Errorf("URL = %q, want %q", listings[0].URL, want)
	}
}

func TestExtract_CollapsesAddressWhitespace(t *testing.T) {
	doc := page(card("", "", "", "", "", "123   Main St\n Frisco,  TX", "/listing/1"))

	listings, err := Extract(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}

	want := "123 Main St Frisco, TX"
	if listings[0].Address != want {
		t.Errorf("Address = %q, want %q", listings[0].Address, want)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	listings, err := Extract(strings.NewReader(page()), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("Expected 0 listings, got %d", len(listings))
	}
}
