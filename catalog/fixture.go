package catalog

import (
	_ "embed"

	"go-storefront/models"

	"github.com/go-faster/errors"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed products.csv
var fixtureCSV []byte

// productRecord is one row of a catalog CSV file
type productRecord struct {
	ID          int    `csv:"id"`
	Title       string `csv:"title"`
	Price       string `csv:"price"`
	Image       string `csv:"image"`
	Description string `csv:"description"`
}

// Default loads the catalog shipped with the binary
func Default() (*Catalog, error) {
	return FromCSV(fixtureCSV)
}

// FromCSV decodes a catalog from CSV with the columns
// id,title,price,image,description.
func FromCSV(data []byte) (*Catalog, error) {
	var records []productRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, errors.Wrap(err, "decode catalog csv")
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "product %d price %q", rec.ID, rec.Price)
		}
		products = append(products, models.Product{
			ID:          rec.ID,
			Title:       rec.Title,
			Price:       price,
			Image:       rec.Image,
			Description: rec.Description,
		})
	}
	return New(products)
}
