// Package tenant enforces that every record an account touches belongs to that account.
package tenant

import (
	"curator/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the record does not exist.
	ErrNotFound = errors.New("tenant: record not found")
	// ErrForbidden is returned when the record belongs to another account.
	ErrForbidden = errors.New("tenant: record owned by another account")
)

// Owned is implemented by records that belong to exactly one account.
type Owned interface {
	OwnerAccountID() uuid.UUID
}

// Authorize returns resource unchanged when it exists and is owned by accountID.
// A nil resource yields ErrNotFound and a foreign one ErrForbidden.
func Authorize[E any, PT interface {
	*E
	Owned
}](accountID uuid.UUID, resource PT) (PT, error) {
	if resource == nil {
		return nil, ErrNotFound
	}
	if resource.OwnerAccountID() != accountID {
		return nil, ErrForbidden
	}

	return resource, nil
}

// AuthorizeChild authorizes a record through the parent that owns it.
// A nil child yields ErrNotFound before the parent is looked at.
func AuthorizeChild[E any, PT interface {
	*E
	Owned
}, C any](accountID uuid.UUID, parent PT, child *C) (*C, error) {
	if child == nil {
		return nil, ErrNotFound
	}
	if _, err := Authorize[E, PT](accountID, parent); err != nil {
		return nil, err
	}

	return child, nil
}
