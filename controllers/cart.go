package controllers

import (
	"net/http"

	"go-storefront/catalog"
	"go-storefront/models"
	"go-storefront/render"
	"go-storefront/session"
	"go-storefront/utils"
)

// CartController handles cart-related requests
type CartController struct {
	Catalog *catalog.Catalog
}

// NewCartController creates a new CartController
func NewCartController(c *catalog.Catalog) *CartController {
	return &CartController{
		Catalog: c,
	}
}

// AddToCart adds one unit of a catalog product to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, err := cc.Catalog.Get(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Cart().AddOrIncrement(product)
	cc.respond(w, r, sess)
}

// IncreaseQuantity adds one unit to an existing cart line
func (cc *CartController) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(sess *session.Session, id int) {
		sess.Cart().Increment(id)
	})
}

// DecreaseQuantity removes one unit, dropping the line at zero
func (cc *CartController) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(sess *session.Session, id int) {
		sess.Cart().Decrement(id)
	})
}

// RemoveFromCart removes a product from the session's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(sess *session.Session, id int) {
		sess.Cart().Remove(id)
	})
}

// GetCart renders the cart modal
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	utils.RenderFragment(w, r, http.StatusOK, render.CartModal(sess.Cart().Snapshot(), sess.CartOpen()))
}

// GetCartJSON returns the session's cart with its count and total
func (cc *CartController) GetCartJSON(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	sess.Lock()
	snapshot := sess.Cart().Snapshot()
	sess.Unlock()

	if snapshot.Lines == nil {
		snapshot.Lines = []models.CartLine{}
	}
	utils.WriteJSON(w, http.StatusOK, snapshot)
}

// ToggleCart opens or closes the cart modal
func (cc *CartController) ToggleCart(w http.ResponseWriter, r *http.Request) {
	cc.modal(w, r, (*session.Session).ToggleCart)
}

// CloseCart closes the cart modal
func (cc *CartController) CloseCart(w http.ResponseWriter, r *http.Request) {
	cc.modal(w, r, (*session.Session).CloseCart)
}

func (cc *CartController) modal(w http.ResponseWriter, r *http.Request, change func(*session.Session)) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	change(sess)

	if !utils.IsHTMXRequest(r) {
		utils.RedirectBack(w, r, "/")
		return
	}
	utils.RenderFragment(w, r, http.StatusOK, render.CartModal(sess.Cart().Snapshot(), sess.CartOpen()))
}

// mutate applies a line-level change. Ids that are not in the cart are
// absorbed by the store, so repeating a request is harmless.
func (cc *CartController) mutate(w http.ResponseWriter, r *http.Request, change func(*session.Session, int)) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	change(sess, id)
	cc.respond(w, r, sess)
}

// respond redraws the cart after a mutation. The session must be locked.
func (cc *CartController) respond(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if !utils.IsHTMXRequest(r) {
		utils.RedirectBack(w, r, "/")
		return
	}
	utils.RenderFragment(w, r, http.StatusOK, render.CartUpdate(sess.Cart().Snapshot(), noticesView(sess)))
}
