package models

// Listing holds the data scraped from a single Realtor.com search-result card.
// Values are normalized display text; optional fields are "" when the card
// does not show them.
type Listing struct {
	Price         string `json:"price"`
	Beds          string `json:"beds"`
	Baths         string `json:"baths"`
	SquareFootage string `json:"square_footage"`
	LotSize       string `json:"lot_size"`
	Address       string `json:"address"`
	URL           string `json:"listing_url"`
}

// Valid reports whether the listing carries both required fields.
// Cards missing either are dropped during extraction.
func (l Listing) Valid() bool {
	return l.Address != "" && l.URL != ""
}
