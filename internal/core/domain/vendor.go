package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is an on-site seller bound to one event.
type Vendor struct {
	ID            uuid.UUID       `json:"id"`
	EventID       uuid.UUID       `json:"event_id"`
	Name          string          `json:"name"`
	AcceptsTokens bool            `json:"accepts_tokens"`
	ExchangeRate  int64           `json:"exchange_rate"` // cash minor units per token
	Products      []VendorProduct `json:"products,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// VendorProduct is a sellable item. Stock == nil means untracked (unlimited);
// a tracked stock counter never goes below zero.
type VendorProduct struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Name        string    `json:"name"`
	PriceTokens int64     `json:"price_tokens"` // minor units
	PriceCash   *int64    `json:"price_cash,omitempty"`
	Available   bool      `json:"available"`
	Stock       *int      `json:"stock,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasStock reports whether quantity units can currently be sold. Untracked
// stock always has capacity; the authoritative check is the conditional
// decrement at commit time.
func (p *VendorProduct) HasStock(quantity int) bool {
	if p.Stock == nil {
		return true
	}
	return *p.Stock >= quantity
}
