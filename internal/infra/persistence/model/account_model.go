// Package model holds the GORM representations of the persisted records.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100)"`
	CompanyName *string   `gorm:"type:varchar(200)"`
	LogoURL     *string   `gorm:"type:text"`
	BrandColor  string    `gorm:"type:varchar(7);not null;default:'#F59E0B'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Questionnaires  []QuestionnaireModel  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Products        []ProductModel        `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Devices         []DeviceModel         `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
