package render

import (
	"context"
	"strconv"

	"go-storefront/models"

	"github.com/a-h/templ"
)

// Cart renders the cart lines and total. An empty cart renders a placeholder.
func Cart(cart models.Cart) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div`)
		hw.attr("id", CartContentsID)
		hw.raw(` class="cart-contents"><div class="cart-items">`)

		if cart.IsEmpty() {
			hw.raw(`<p class="empty-cart">`)
			hw.text(EmptyCartText)
			hw.raw(`</p>`)
		}
		for _, line := range cart.Lines {
			hw.component(ctx, cartLine(line))
		}

		hw.raw(`</div><div class="cart-total">Total: $<span id="cartTotal">`)
		hw.text(cart.Total.StringFixed(2))
		hw.raw(`</span></div></div>`)
	})
}

func cartLine(line models.CartLine) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		base := "/cart/items/" + strconv.Itoa(line.Product.ID)

		hw.raw(`<div class="cart-item"><div class="cart-item-image"><img`)
		hw.attr("src", line.Product.Image)
		hw.attr("alt", line.Product.Title)
		hw.raw(`></div><div class="cart-item-info"><h4 class="cart-item-title">`)
		hw.text(line.Product.Title)
		hw.raw(`</h4><div class="cart-item-price">`)
		hw.text(line.Product.FormattedPrice())
		hw.raw(`</div><div class="cart-item-quantity">`)
		cartButton(hw, base+"/decrement", "quantity-btn", "decrease", "-")
		hw.raw(`<span class="quantity">`)
		hw.text(strconv.Itoa(line.Quantity))
		hw.raw(`</span>`)
		cartButton(hw, base+"/increment", "quantity-btn", "increase", "+")
		cartButton(hw, base+"/remove", "remove-btn", "remove", "Remove")
		hw.raw(`</div></div></div>`)
	})
}

func cartButton(hw *htmlWriter, action, class, name, label string) {
	hw.raw(`<form method="post" class="inline-form"`)
	hw.attr("action", action)
	hw.attr("hx-post", action)
	hw.attr("hx-target", "#"+CartContentsID)
	hw.raw(` hx-swap="outerHTML"><button type="submit"`)
	hw.attr("class", class)
	hw.attr("data-action", name)
	hw.raw(`>`)
	hw.text(label)
	hw.raw(`</button></form>`)
}

// CartCount renders the item badge on the cart button
func CartCount(count int, swapOOB bool) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<span`)
		hw.attr("id", CartCountID)
		hw.raw(` class="cart-count"`)
		oob(hw, swapOOB)
		hw.raw(`>`)
		hw.text(strconv.Itoa(count))
		hw.raw(`</span>`)
	})
}

// CartButton renders the header control that opens the cart modal
func CartButton(count int) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<form method="post" action="/cart/toggle" hx-post="/cart/toggle"`)
		hw.attr("hx-target", "#"+CartModalID)
		hw.raw(` hx-swap="outerHTML"><button type="submit" id="cartBtn" class="cart-btn">Cart `)
		hw.component(ctx, CartCount(count, false))
		hw.raw(`</button></form>`)
	})
}

// CartModal renders the cart dialog, shown when open is true
func CartModal(cart models.Cart, open bool) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		class := "cart-modal"
		if open {
			class += " active"
		}
		hw.raw(`<div`)
		hw.attr("id", CartModalID)
		hw.attr("class", class)
		// Clicks on the backdrop itself close the modal
		hw.raw(` hx-post="/cart/close" hx-trigger="click target:#`)
		hw.raw(CartModalID)
		hw.raw(`" hx-swap="outerHTML"><div class="cart-content"><div class="cart-header"><h3>Shopping Cart</h3>`)
		hw.raw(`<form method="post" action="/cart/close" hx-post="/cart/close"`)
		hw.attr("hx-target", "#"+CartModalID)
		hw.raw(` hx-swap="outerHTML"><button type="submit" id="closeCart" class="close-cart">&times;</button></form></div>`)
		hw.component(ctx, Cart(cart))
		hw.raw(`</div></div>`)
	})
}

// CartUpdate is the response to a cart mutation: the cart contents plus
// out-of-band updates for the badge and the notices.
func CartUpdate(cart models.Cart, notices NoticesView) templ.Component {
	return Join(
		Cart(cart),
		CartCount(cart.Count, true),
		Notices(notices, true),
	)
}
