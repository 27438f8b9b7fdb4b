package usecase

import (
	"context"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput patches account profile and branding. Empty CompanyName or LogoURL clear them.
type UpdateProfileInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=2048"`
	BrandColor  *string `json:"brand_color,omitempty" validate:"omitempty,hexcolor"`
}

// Branding is the public presentation of the account behind a questionnaire.
type Branding struct {
	CompanyName *string `json:"company_name,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	BrandColor  string  `json:"brand_color"`
}

// AccountUsecase manages the signed-in account's profile.
type AccountUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	// GetPublicBranding returns the branding of a published questionnaire's owner.
	GetPublicBranding(ctx context.Context, questionnaireID uuid.UUID) (*Branding, error)
}
