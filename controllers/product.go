package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"slices"

	"go-storefront/catalog"
	"go-storefront/models"
	"go-storefront/render"
	"go-storefront/utils"
)

// ProductController handles product-related requests
type ProductController struct {
	Catalog *catalog.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(c *catalog.Catalog) *ProductController {
	return &ProductController{
		Catalog: c,
	}
}

// SearchProducts redraws the product grid for the ?q= search term
func (pc *ProductController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if !utils.IsHTMXRequest(r) {
		utils.RedirectBack(w, r, "/?q="+url.QueryEscape(query)+"#products")
		return
	}
	utils.RenderFragment(w, r, http.StatusOK, render.Catalog(pc.Catalog.Filter(query)))
}

// GetProducts returns the catalog as JSON, filtered by ?q= when present
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := slices.Collect(pc.Catalog.Filter(r.URL.Query().Get("q")))
	if products == nil {
		products = []models.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, err := pc.Catalog.Get(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}
