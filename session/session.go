// Package session keeps per-shopper storefront state in memory.
package session

import (
	"sync"
	"time"

	"go-storefront/cart"
	"go-storefront/models"

	"github.com/google/uuid"
)

// Session is the in-memory state of one browser session. Lock must be held
// while reading or mutating any field other than ID.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      *cart.Store
	cartOpen  bool
	menuOpen  bool
	notices   []models.Notice
	noticeTTL time.Duration
	now       func() time.Time
	lastSeen  time.Time
}

func newSession(id string, noticeTTL time.Duration, now func() time.Time) *Session {
	s := &Session{
		ID:        id,
		noticeTTL: noticeTTL,
		now:       now,
		lastSeen:  now(),
	}
	s.cart = cart.NewStore(s)
	return s
}

// Lock serializes events for this session
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session
func (s *Session) Unlock() { s.mu.Unlock() }

// Cart returns the session's cart store
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Notify queues an acknowledgement for the display window
func (s *Session) Notify(message string) {
	s.notices = append(s.notices, models.Notice{
		ID:       uuid.NewString(),
		Message:  message,
		PostedAt: s.now(),
	})
}

// Notices returns the notices still inside their display window and drops
// the expired ones.
func (s *Session) Notices() []models.Notice {
	now := s.now()
	live := s.notices[:0]
	for _, n := range s.notices {
		if now.Sub(n.PostedAt) < s.noticeTTL {
			live = append(live, n)
		}
	}
	s.notices = live

	out := make([]models.Notice, len(live))
	copy(out, live)
	return out
}

// CartOpen reports whether the cart modal is showing
func (s *Session) CartOpen() bool { return s.cartOpen }

// ToggleCart flips the cart modal
func (s *Session) ToggleCart() { s.cartOpen = !s.cartOpen }

// CloseCart hides the cart modal
func (s *Session) CloseCart() { s.cartOpen = false }

// MenuOpen reports whether the mobile navigation menu is expanded
func (s *Session) MenuOpen() bool { return s.menuOpen }

// ToggleMenu flips the mobile navigation menu
func (s *Session) ToggleMenu() { s.menuOpen = !s.menuOpen }

// NextExpiry is how long until the oldest visible notice leaves its display
// window. It is zero when nothing is showing.
func (s *Session) NextExpiry() time.Duration {
	now := s.now()
	var next time.Duration
	for _, n := range s.notices {
		left := n.PostedAt.Add(s.noticeTTL).Sub(now)
		if left <= 0 {
			continue
		}
		if next == 0 || left < next {
			next = left
		}
	}
	return next
}
