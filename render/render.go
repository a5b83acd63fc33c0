// Package render projects catalog and cart state into HTML fragments.
//
// Every component renders a whole display region with a stable element id so
// the page can swap the region in one piece. Components hold no state.
package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Region ids shared by the fragments and the page
const (
	ProductsGridID = "productsGrid"
	CartModalID    = "cartModal"
	CartContentsID = "cartContents"
	CartCountID    = "cartCount"
	NavigationID   = "navigation"
	NoticesID      = "notifications"
	ContactFormID  = "contactForm"
)

// Placeholder texts for empty regions
const (
	EmptyCartText = "Your cart is empty"
	NoResultsText = "No products found matching your search."
)

// htmlWriter collects the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func component(fn func(ctx context.Context, hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		fn(ctx, hw)
		return hw.err
	})
}

// Join renders components one after the other
func Join(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		for _, c := range components {
			hw.component(ctx, c)
		}
	})
}

func oob(hw *htmlWriter, enabled bool) {
	if enabled {
		hw.attr("hx-swap-oob", "true")
	}
}
