// Package catalog holds the immutable product list and the storefront search.
package catalog

import (
	"iter"
	"strings"

	"go-storefront/models"

	"github.com/go-faster/errors"
	"golang.org/x/text/cases"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidCatalog is returned when loaded products violate catalog rules.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a fixed, ordered product list. It never changes after New.
type Catalog struct {
	products []models.Product
	byID     map[int]int
}

// New validates products and freezes them into a Catalog. Ids must be unique,
// titles non-empty and prices non-negative.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate product id %d", p.ID)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, errors.Wrapf(ErrInvalidCatalog, "product %d has no title", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidCatalog, "product %d has negative price %s", p.ID, p.Price)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Len is the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}

// All yields every product in catalog order
func (c *Catalog) All() iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Get looks a product up by id
func (c *Catalog) Get(id int) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return c.products[i], nil
}

// Filter yields the products whose title or description contains query,
// ignoring case. A blank query yields the whole catalog; any other query is
// matched as typed, surrounding spaces included. Matching happens while the
// sequence is ranged over, so every range sees a fresh evaluation.
func (c *Catalog) Filter(query string) iter.Seq[models.Product] {
	if strings.TrimSpace(query) == "" {
		return c.All()
	}

	return func(yield func(models.Product) bool) {
		// A Caser keeps state between calls and must not be shared across goroutines.
		fold := cases.Fold()
		needle := fold.String(query)
		for _, p := range c.products {
			if !matches(fold, needle, p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matches(fold cases.Caser, needle string, p models.Product) bool {
	return strings.Contains(fold.String(p.Title), needle) ||
		strings.Contains(fold.String(p.Description), needle)
}
