package render

import (
	"context"
	"iter"
	"strconv"

	"go-storefront/models"

	"github.com/a-h/templ"
)

// Catalog renders the product grid. An empty sequence renders the no-results
// placeholder.
func Catalog(products iter.Seq[models.Product]) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div`)
		hw.attr("id", ProductsGridID)
		hw.raw(` class="products-grid">`)

		empty := true
		for p := range products {
			empty = false
			hw.component(ctx, ProductCard(p))
		}
		if empty {
			hw.raw(`<p class="no-results">`)
			hw.text(NoResultsText)
			hw.raw(`</p>`)
		}

		hw.raw(`</div>`)
	})
}

// ProductCard renders one catalog entry with its add-to-cart control
func ProductCard(p models.Product) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		addURL := "/cart/items/" + strconv.Itoa(p.ID)

		hw.raw(`<div class="product-card"><div class="product-image"><img`)
		hw.attr("src", p.Image)
		hw.attr("alt", p.Title)
		hw.raw(`></div><div class="product-info"><h3 class="product-title">`)
		hw.text(p.Title)
		hw.raw(`</h3><div class="product-price">`)
		hw.text(p.FormattedPrice())
		hw.raw(`</div><p class="product-description">`)
		hw.text(p.Description)
		hw.raw(`</p><form method="post"`)
		hw.attr("action", addURL)
		hw.attr("hx-post", addURL)
		hw.attr("hx-target", "#"+CartContentsID)
		hw.raw(` hx-swap="outerHTML"><button type="submit" class="add-to-cart"`)
		hw.attr("data-id", strconv.Itoa(p.ID))
		hw.raw(`>Add to Cart</button></form></div></div>`)
	})
}
