package controllers

import (
	"net/http"

	"go-storefront/catalog"
	"go-storefront/models"
	"go-storefront/render"
	"go-storefront/static"
	"go-storefront/utils"
)

// StorefrontController serves the storefront page and its page-level regions
type StorefrontController struct {
	Catalog *catalog.Catalog
	Script  string
}

// NewStorefrontController creates a new StorefrontController that loads htmx
// from the embedded static files when they carry it
func NewStorefrontController(c *catalog.Catalog) *StorefrontController {
	return &StorefrontController{
		Catalog: c,
		Script:  static.ScriptSrc(static.FS),
	}
}

// Index renders the whole storefront for the current session
func (sc *StorefrontController) Index(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")

	sess.Lock()
	view := render.PageView{
		Script:   sc.Script,
		Query:    query,
		Products: sc.Catalog.Filter(query),
		Cart:     sess.Cart().Snapshot(),
		CartOpen: sess.CartOpen(),
		MenuOpen: sess.MenuOpen(),
		Notices:  noticesView(sess),
		Contact:  models.ContactMessage{},
	}
	sess.Unlock()

	utils.RenderPage(w, r, http.StatusOK, render.Page(view))
}

// ToggleMenu expands or collapses the mobile navigation menu
func (sc *StorefrontController) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	sess.Lock()
	sess.ToggleMenu()
	open := sess.MenuOpen()
	sess.Unlock()

	if !utils.IsHTMXRequest(r) {
		utils.RedirectBack(w, r, "/")
		return
	}
	utils.RenderFragment(w, r, http.StatusOK, render.Navigation(open))
}

// GetNotifications redraws the notices that are still inside their window
func (sc *StorefrontController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	sess.Lock()
	view := noticesView(sess)
	sess.Unlock()

	utils.RenderFragment(w, r, http.StatusOK, render.Notices(view, false))
}
