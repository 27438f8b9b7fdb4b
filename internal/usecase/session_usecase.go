package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// GoogleSignInInput carries the ID token obtained from Google Sign-In on the client.
type GoogleSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshInput carries a refresh token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionTokens is an issued access and refresh token pair.
type SessionTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // Access token lifetime in seconds.
}

// SignInOutput is the result of a successful sign-in.
type SignInOutput struct {
	Account      *entity.Account `json:"account"`
	Tokens       *SessionTokens  `json:"tokens"`
	IsNewAccount bool            `json:"is_new_account"`
}

// SessionUsecase signs accounts in and renews their tokens.
type SessionUsecase interface {
	// GoogleSignIn verifies the ID token and creates the account on first sign-in.
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*SignInOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*SessionTokens, error)
}
