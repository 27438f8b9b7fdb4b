package google

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"curator/config"
	"curator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(t *testing.T, validate validateFunc) *AuthServiceImpl {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc, err := NewAuthService(cfg, slog.Default())
	require.NoError(t, err)

	impl := svc.(*AuthServiceImpl)
	impl.validate = validate

	return impl
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "test_user_123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://example.com/a.png",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		svc := newTestService(t, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "raw-token", token)
			assert.Equal(t, "test_client_id", audience)

			return validPayload(), nil
		})

		user, err := svc.VerifyIDToken(ctx, "raw-token")
		require.NoError(t, err)
		assert.Equal(t, "test_user_123", user.Subject)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "Test User", user.Name)
		assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
		assert.True(t, user.EmailVerified)
	})

	t.Run("signature rejected", func(t *testing.T) {
		svc := newTestService(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("idtoken: invalid token")
		})

		user, err := svc.VerifyIDToken(ctx, "bad")
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "invalid ID token")
	})

	tests := []struct {
		name   string
		mutate func(p *idtoken.Payload)
	}{
		{"wrong issuer", func(p *idtoken.Payload) { p.Issuer = "https://evil.example.com" }},
		{"wrong audience", func(p *idtoken.Payload) { p.Audience = "other" }},
		{"missing email", func(p *idtoken.Payload) { delete(p.Claims, "email") }},
		{"unverified email", func(p *idtoken.Payload) { p.Claims["email_verified"] = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(context.Context, string, string) (*idtoken.Payload, error) {
				p := validPayload()
				tt.mutate(p)

				return p, nil
			})

			_, err := svc.VerifyIDToken(ctx, "token")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "token verification failed")
		})
	}
}

func TestAuthService_StringEmailVerified(t *testing.T) {
	p := validPayload()
	p.Claims["email_verified"] = "true"
	assert.True(t, claimBool(p, "email_verified"))
}

func TestNewAuthService_RequiresClientID(t *testing.T) {
	_, err := NewAuthService(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := newTestService(t, nil)
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
