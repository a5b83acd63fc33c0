// Package cart holds the shopping cart state machine for one session.
package cart

import (
	"go-storefront/models"

	"github.com/shopspring/decimal"
)

// Notification texts shown after cart mutations
const (
	RemovedMessage = "Item removed from cart"
	addedSuffix    = " added to cart!"
)

// Notifier receives user-visible acknowledgements of cart changes
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) {
	f(message)
}

type discard struct{}

func (discard) Notify(string) {}

// Store is the mutable cart owned by a single session. It is not safe for
// concurrent use; callers serialize access per session.
type Store struct {
	lines    []models.CartLine
	count    int
	total    decimal.Decimal
	notifier Notifier
}

// NewStore creates an empty cart that reports changes to notifier
func NewStore(notifier Notifier) *Store {
	if notifier == nil {
		notifier = discard{}
	}
	return &Store{
		total:    decimal.Zero,
		notifier: notifier,
	}
}

// AddOrIncrement adds one unit of product, creating the line on first add
func (s *Store) AddOrIncrement(product models.Product) {
	if i := s.index(product.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, models.CartLine{Product: product, Quantity: 1})
	}

	s.recompute()
	s.notifier.Notify(product.Title + addedSuffix)
}

// Increment adds one unit to an existing line. Unknown ids are ignored.
func (s *Store) Increment(productID int) {
	i := s.index(productID)
	if i < 0 {
		return
	}
	s.lines[i].Quantity++
	s.recompute()
}

// Decrement removes one unit from an existing line. A line at quantity 1 is
// removed exactly as Remove would. Unknown ids are ignored.
func (s *Store) Decrement(productID int) {
	i := s.index(productID)
	if i < 0 {
		return
	}
	if s.lines[i].Quantity <= 1 {
		s.Remove(productID)
		return
	}
	s.lines[i].Quantity--
	s.recompute()
}

// Remove deletes the line for productID if present. The removal notice is
// posted either way.
func (s *Store) Remove(productID int) {
	if i := s.index(productID); i >= 0 {
		// Keep insertion order of the remaining lines
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.recompute()
	}
	s.notifier.Notify(RemovedMessage)
}

// Lines returns a copy of the cart lines in insertion order
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the total number of units in the cart
func (s *Store) Count() int {
	return s.count
}

// Total is the sum of price times quantity over all lines
func (s *Store) Total() decimal.Decimal {
	return s.total
}

// Len is the number of distinct products in the cart
func (s *Store) Len() int {
	return len(s.lines)
}

// Quantity returns the quantity held for productID, or 0 when absent
func (s *Store) Quantity(productID int) int {
	if i := s.index(productID); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

// Snapshot returns a read-only view suitable for rendering and encoding
func (s *Store) Snapshot() models.Cart {
	return models.Cart{
		Lines: s.Lines(),
		Count: s.count,
		Total: s.total,
	}
}

func (s *Store) index(productID int) int {
	for i, line := range s.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) recompute() {
	s.count, s.total = Totals(s.lines)
}

// Totals folds lines into the unit count and the cart total
func Totals(lines []models.CartLine) (int, decimal.Decimal) {
	count := 0
	total := decimal.Zero
	for _, line := range lines {
		count += line.Quantity
		total = total.Add(line.Subtotal())
	}
	return count, total
}
