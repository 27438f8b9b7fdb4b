package service

import (
	"context"

	"curator/internal/domain/entity"
)

// VerifiedIdentity is what an identity provider vouches for after checking a sign-in token.
type VerifiedIdentity struct {
	Subject       string // provider's stable user id ("sub")
	Email         string
	Name          string
	Provider      entity.ProviderType
	PictureURL    string // seeds the account logo on first sign-in
	EmailVerified bool
}

// IdentityVerifier turns a provider ID token into a VerifiedIdentity.
type IdentityVerifier interface {
	// VerifyIDToken fails unless signature, issuer, audience and email verification all check out.
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedIdentity, error)

	GetProvider() entity.ProviderType
}
