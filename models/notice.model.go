package models

import (
	"time"
)

// Notice is a short-lived acknowledgement shown to the shopper
type Notice struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	PostedAt time.Time `json:"posted_at"`
}

// ContactMessage holds the fields of the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether every field was filled in
func (m ContactMessage) Complete() bool {
	return m.Name != "" && m.Email != "" && m.Message != ""
}
