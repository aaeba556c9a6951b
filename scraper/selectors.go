package scraper

// CSS selectors for the Realtor.com search-results page.
// Centralising them makes future site updates trivial.
const (
	// Search results page
	PropertiesContainerSelector = `section[class*="PropertiesList_propertiesContainer"]`
	CardSelector                = `div[data-search-rank]`

	// Per-card fields
	LinkSelector    = `div[class*="card-content"] a[href]`
	PriceSelector   = `div[data-testid="card-price"] span`
	BedsSelector    = `li[data-testid="property-meta-beds"] span`
	BathsSelector   = `li[data-testid="property-meta-baths"] span`
	SqftSelector    = `li[data-testid="property-meta-sqft"] span`
	LotSizeSelector = `li[data-testid="property-meta-lot-size"] span`
	AddressSelector = `div[class*="card-address"]`
)
