// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DefaultBrandColor is the accent color given to newly created accounts.
const DefaultBrandColor = "#F59E0B"

var brandColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Account is the tenant of the system. Every questionnaire and product belongs to exactly one account.
type Account struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email       string    // The account's primary contact email, taken from the identity provider.
	Name        string    // The display name of the person operating the account.
	CompanyName *string   // Optional company name shown on public questionnaires.
	LogoURL     *string   // Optional logo shown on public questionnaires.
	BrandColor  string    // Accent color in #RRGGBB form.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account's data.
}

// OwnerAccountID returns the account itself, an account only ever owns itself.
func (a *Account) OwnerAccountID() uuid.UUID {
	return a.ID
}

// IsValidBrandColor reports whether color is a #RRGGBB hex color.
func IsValidBrandColor(color string) bool {
	return brandColorPattern.MatchString(color)
}
