// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/service"
	"curator/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.IdentityVerifier for Google ID tokens
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}, nil
}

// VerifyIDToken checks the token signature against Google's keys, then its issuer and audience.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := s.verifyPayload(payload); err != nil {
		s.logger.WarnContext(ctx, "Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user := &service.VerifiedIdentity{
		Subject:       payload.Subject,
		Email:         claimString(payload, "email"),
		Name:          claimString(payload, "name"),
		Provider:      entity.ProviderTypeGoogle,
		PictureURL:    claimString(payload, "picture"),
		EmailVerified: claimBool(payload, "email_verified"),
	}

	s.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", user.Subject))

	return user, nil
}

// GetProvider reports which provider issued the identities
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (s *AuthServiceImpl) verifyPayload(payload *idtoken.Payload) error {
	if _, ok := validIssuers[payload.Issuer]; !ok {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if payload.Audience != s.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", s.clientID, payload.Audience)
	}
	if payload.Subject == "" {
		return errors.New("missing subject")
	}
	if claimString(payload, "email") == "" {
		return errors.New("missing email")
	}
	if !claimBool(payload, "email_verified") {
		return errors.New("email not verified")
	}

	return nil
}

func claimString(payload *idtoken.Payload, key string) string {
	v, _ := payload.Claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true" string some issuers emit.
func claimBool(payload *idtoken.Payload, key string) bool {
	switch v := payload.Claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
