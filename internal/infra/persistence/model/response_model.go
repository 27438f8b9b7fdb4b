package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResponseModel mirrors the 'responses' table. Answers is stored as jsonb.
type ResponseModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	QuestionnaireID uuid.UUID         `gorm:"type:uuid;not null;index:idx_responses_questionnaire_created,priority:1"`
	CustomerEmail   *string           `gorm:"type:varchar(255)"`
	Answers         datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time         `gorm:"index:idx_responses_questionnaire_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ResponseModel) TableName() string {
	return "responses"
}
