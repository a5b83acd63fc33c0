package models

import (
	"github.com/shopspring/decimal"
)

// Product represents an item in the storefront catalog
type Product struct {
	ID          int             `bson:"id" json:"id"`
	Title       string          `bson:"title" json:"title"`
	Price       decimal.Decimal `bson:"-" json:"price"`
	Image       string          `bson:"image" json:"image"`
	Description string          `bson:"description" json:"description"`
}

// FormattedPrice renders the price the way the storefront displays it, e.g. "$89.99"
func (p Product) FormattedPrice() string {
	return FormatMoney(p.Price)
}

// FormatMoney renders an amount with a dollar sign and two decimals
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
