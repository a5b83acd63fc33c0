package render

import (
	"context"
	"iter"

	"go-storefront/models"

	"github.com/a-h/templ"
)

// Navigation renders the nav links together with the hamburger that expands
// them on small screens.
func Navigation(menuOpen bool) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		active := ""
		if menuOpen {
			active = " active"
		}
		hw.raw(`<div`)
		hw.attr("id", NavigationID)
		hw.raw(` class="navigation"><ul`)
		hw.attr("class", "nav-menu"+active)
		hw.raw(`>`)
		for _, link := range []struct{ href, label string }{
			{"#home", "Home"},
			{"#products", "Products"},
			{"#about", "About"},
			{"#contact", "Contact"},
		} {
			hw.raw(`<li><a class="nav-link"`)
			hw.attr("href", link.href)
			hw.raw(`>`)
			hw.text(link.label)
			hw.raw(`</a></li>`)
		}
		hw.raw(`</ul><form method="post" action="/menu/toggle" hx-post="/menu/toggle"`)
		hw.attr("hx-target", "#"+NavigationID)
		hw.raw(` hx-swap="outerHTML"><button type="submit" id="hamburger"`)
		hw.attr("class", "hamburger"+active)
		hw.raw(` aria-label="Menu"><span></span><span></span><span></span></button></form></div>`)
	})
}

// SearchBox renders the search input; every keystroke refreshes the grid
func SearchBox(query string) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<form class="search-box" method="get" action="/"><input type="search" name="q" class="search-input" placeholder="Search products..."`)
		hw.attr("value", query)
		hw.raw(` hx-get="/products" hx-trigger="input changed, search"`)
		hw.attr("hx-target", "#"+ProductsGridID)
		hw.raw(` hx-swap="outerHTML"></form>`)
	})
}

// ContactForm renders the contact form prefilled with values
func ContactForm(values models.ContactMessage) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<form`)
		hw.attr("id", ContactFormID)
		hw.raw(` class="contact-form" method="post" action="/contact" hx-post="/contact" hx-swap="outerHTML">`)
		hw.raw(`<input type="text" name="name" placeholder="Your Name" required`)
		hw.attr("value", values.Name)
		hw.raw(`><input type="email" name="email" placeholder="Your Email" required`)
		hw.attr("value", values.Email)
		hw.raw(`><textarea name="message" placeholder="Your Message" rows="5" required>`)
		hw.text(values.Message)
		hw.raw(`</textarea><button type="submit" class="submit-btn">Send Message</button></form>`)
	})
}

// ContactUpdate is the response to a contact form post
func ContactUpdate(values models.ContactMessage, notices NoticesView) templ.Component {
	return Join(ContactForm(values), Notices(notices, true))
}

// PageView is everything the full storefront page shows. Script is the htmx
// URL.
type PageView struct {
	Script   string
	Query    string
	Products iter.Seq[models.Product]
	Cart     models.Cart
	CartOpen bool
	MenuOpen bool
	Notices  NoticesView
	Contact  models.ContactMessage
}

// Page renders the whole storefront document
func Page(view PageView) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		hw.raw(`<title>ShopEasy - Your Online Store</title>`)
		hw.raw(`<link rel="stylesheet" href="/static/styles.css"><script`)
		hw.attr("src", view.Script)
		hw.raw(`></script></head><body>`)

		hw.raw(`<header class="header"><nav class="navbar"><div class="nav-container"><a href="#home" class="logo">ShopEasy</a>`)
		hw.component(ctx, Navigation(view.MenuOpen))
		hw.component(ctx, SearchBox(view.Query))
		hw.component(ctx, CartButton(view.Cart.Count))
		hw.raw(`</div></nav></header>`)

		hw.raw(`<section id="home" class="hero"><div class="hero-content"><h1>Welcome to ShopEasy</h1>`)
		hw.raw(`<p>Discover amazing products at unbeatable prices</p><a href="#products" class="cta-btn">Shop Now</a></div></section>`)

		hw.raw(`<section id="products" class="products"><div class="container"><h2 class="section-title">Featured Products</h2>`)
		hw.component(ctx, Catalog(view.Products))
		hw.raw(`</div></section>`)

		hw.raw(`<section id="about" class="about"><div class="container"><h2 class="section-title">About Us</h2>`)
		hw.raw(`<p>We bring you carefully selected products with fast shipping and friendly support.</p></div></section>`)

		hw.raw(`<section id="contact" class="contact"><div class="container"><h2 class="section-title">Contact Us</h2>`)
		hw.component(ctx, ContactForm(view.Contact))
		hw.raw(`</div></section>`)

		hw.raw(`<footer class="footer"><p>&copy; ShopEasy. All rights reserved.</p></footer>`)

		hw.component(ctx, CartModal(view.Cart, view.CartOpen))
		hw.component(ctx, Notices(view.Notices, false))
		hw.raw(`</body></html>`)
	})
}
