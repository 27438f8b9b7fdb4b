package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductModel mirrors the 'products' table. Tags is a text[] column.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_products_account_created,priority:1"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description *string        `gorm:"type:text"`
	ImageURL    *string        `gorm:"type:text"`
	Tags        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time      `gorm:"index:idx_products_account_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
