package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	// ProviderTypeGoogle is Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// Authentication links an Account to an identity at an external provider.
// The pair (Provider, ProviderUserID) is unique.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this authentication record.
	AccountID      uuid.UUID    // Links this authentication method to the Account it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "google".
	ProviderUserID string       // The account's unique ID at the provider (Google's 'sub' claim).
	CreatedAt      time.Time    // Timestamp of when this provider was linked to the account.
}
