package controllers

import (
	"net/http"
	"strconv"

	"go-storefront/middleware"
	"go-storefront/render"
	"go-storefront/session"

	"github.com/gorilla/mux"
)

// currentSession fetches the session attached by the session middleware
func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Session required", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// productIDParam parses the {id} route variable
func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// noticesView collects the visible notices. The session must be locked.
func noticesView(sess *session.Session) render.NoticesView {
	return render.NoticesView{
		Items:     sess.Notices(),
		RefreshIn: sess.NextExpiry(),
	}
}
