package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/crstnhllg/realtor-scraper/models"
)

// Extract parses a rendered search-results document and returns one Listing
// per property card, in document order. Each field is read independently: a
// missing optional field becomes "", while a card missing its address or link
// is skipped entirely. When baseURL is non-empty, relative hrefs are resolved
// against it.
func Extract(r io.Reader, baseURL string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var listings []models.Listing
	doc.Find(CardSelector).Each(func(_ int, card *goquery.Selection) {
		l := models.Listing{
			Price:         normalizeNumber(fieldText(card, PriceSelector)),
			Beds:          normalizeNumber(fieldText(card, BedsSelector)),
			Baths:         normalizeNumber(fieldText(card, BathsSelector)),
			SquareFootage: normalizeNumber(fieldText(card, SqftSelector)),
			LotSize:       fieldText(card, LotSizeSelector),
			Address:       fieldText(card, AddressSelector),
			URL:           cardLink(card, baseURL),
		}
		if l.Valid() {
			listings = append(listings, l)
		}
	})
	return listings, nil
}

// fieldText reads one field from a card, tolerating its absence.
func fieldText(card *goquery.Selection, selector string) string {
	return collapseSpace(card.Find(selector).First().Text())
}

// cardLink reads the card's detail-page href and resolves it against baseURL
// when one is given. Returns "" when the card has no usable anchor.
func cardLink(card *goquery.Selection, baseURL string) string {
	href, ok := card.Find(LinkSelector).First().Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if href == "" || baseURL == "" {
		return href
	}
	return resolveURL(baseURL, href)
}

// resolveURL turns a relative href into an absolute one
// (e.g. "/realestateandhomes-detail/x" -> "https://www.realtor.com/...").
func resolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	return b.ResolveReference(u).String()
}
