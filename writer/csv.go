package writer

import (
	"encoding/csv"
	"os"

	"github.com/crstnhllg/realtor-scraper/models"
)

// Header is the fixed CSV column order; rows use the same order.
var Header = []string{
	"price", "beds", "baths", "square_footage", "lot_size", "address", "listing_url",
}

// WriteCSV writes all listings to filename, replacing any existing file.
// Returns the number of data rows written.
func WriteCSV(filename string, listings []models.Listing) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(Header); err != nil {
		return 0, err
	}

	total := 0
	for _, l := range listings {
		row := []string{
			l.Price,
			l.Beds,
			l.Baths,
			l.SquareFootage,
			l.LotSize,
			l.Address,
			l.URL,
		}
		if err := w.Write(row); err != nil {
			return total, err
		}
		total++
	}
	return total, w.Error()
}
