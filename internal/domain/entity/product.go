package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by an account. Its Tags drive recommendations.
type Product struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnerAccountID returns the owning account.
func (p *Product) OwnerAccountID() uuid.UUID {
	return p.AccountID
}
