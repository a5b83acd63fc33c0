package routes

import (
	"io/fs"
	"net/http"

	"go-storefront/controllers"
	"go-storefront/static"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers the router dispatches to
type Controllers struct {
	Storefront *controllers.StorefrontController
	Product    *controllers.ProductController
	Cart       *controllers.CartController
	Contact    *controllers.ContactController

	// Assets is served under /static/; nil means the embedded static.FS
	Assets fs.FS
}

// RegisterRoutes sets up all the routes for the application. Routes that act
// on shopper state run behind sessionMiddleware.
func RegisterRoutes(router *mux.Router, c Controllers, sessionMiddleware mux.MiddlewareFunc) {
	assets := c.Assets
	if assets == nil {
		assets = static.FS
	}

	// Stateless routes
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }).Methods("GET")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(assets)))).Methods("GET")
	router.HandleFunc("/api/products", c.Product.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", c.Product.GetProductByID).Methods("GET")

	// Session routes
	shop := router.PathPrefix("/").Subrouter()
	shop.Use(sessionMiddleware)

	// Page routes
	shop.HandleFunc("/", c.Storefront.Index).Methods("GET")
	shop.HandleFunc("/products", c.Product.SearchProducts).Methods("GET")
	shop.HandleFunc("/notifications", c.Storefront.GetNotifications).Methods("GET")
	shop.HandleFunc("/menu/toggle", c.Storefront.ToggleMenu).Methods("POST")

	// Cart routes
	shop.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	shop.HandleFunc("/cart/toggle", c.Cart.ToggleCart).Methods("POST")
	shop.HandleFunc("/cart/close", c.Cart.CloseCart).Methods("POST")
	shop.HandleFunc("/cart/items/{id}", c.Cart.AddToCart).Methods("POST")
	shop.HandleFunc("/cart/items/{id}", c.Cart.RemoveFromCart).Methods("DELETE")
	shop.HandleFunc("/cart/items/{id}/increment", c.Cart.IncreaseQuantity).Methods("POST")
	shop.HandleFunc("/cart/items/{id}/decrement", c.Cart.DecreaseQuantity).Methods("POST")
	shop.HandleFunc("/cart/items/{id}/remove", c.Cart.RemoveFromCart).Methods("POST")
	shop.HandleFunc("/api/cart", c.Cart.GetCartJSON).Methods("GET")

	// Contact routes
	shop.HandleFunc("/contact", c.Contact.SubmitContact).Methods("POST")
}
