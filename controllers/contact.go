package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"go-storefront/models"
	"go-storefront/render"
	"go-storefront/utils"
)

// Contact form acknowledgements
const (
	ContactThanksMessage     = "Thank you for your message! We'll get back to you soon."
	ContactIncompleteMessage = "Please fill in all fields."
)

// ContactController handles the contact form. Submissions are acknowledged
// and logged; nothing is delivered anywhere.
type ContactController struct {
	Logger *slog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(logger *slog.Logger) *ContactController {
	return &ContactController{
		Logger: logger,
	}
}

// SubmitContact accepts a contact form post
func (cc *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Message: strings.TrimSpace(r.PostForm.Get("message")),
	}

	sess.Lock()
	defer sess.Unlock()

	form := msg
	if msg.Complete() {
		cc.Logger.InfoContext(r.Context(), "contact message received",
			slog.String("session_id", sess.ID),
			slog.Int("message_length", len(msg.Message)),
		)
		sess.Notify(ContactThanksMessage)
		// Reset the form for the next message
		form = models.ContactMessage{}
	} else {
		sess.Notify(ContactIncompleteMessage)
	}

	if !utils.IsHTMXRequest(r) {
		utils.RedirectBack(w, r, "/#contact")
		return
	}
	utils.RenderFragment(w, r, http.StatusOK, render.ContactUpdate(form, noticesView(sess)))
}
