package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QuestionnaireModel mirrors the 'questionnaires' table. Deleting a row cascades
// to its questions and responses.
type QuestionnaireModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index:idx_questionnaires_account_created,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	IsPublished bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_questionnaires_account_created,priority:2,sort:desc"`
	UpdatedAt   time.Time

	Questions []QuestionModel `gorm:"foreignKey:QuestionnaireID;constraint:OnDelete:CASCADE"`
	Responses []ResponseModel `gorm:"foreignKey:QuestionnaireID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}

// QuestionModel mirrors the 'questions' table. Options is a text[] column.
type QuestionModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	QuestionnaireID uuid.UUID      `gorm:"type:uuid;not null;index:idx_questions_questionnaire_order,priority:1"`
	Text            string         `gorm:"type:text;not null"`
	Type            string         `gorm:"type:varchar(32);not null"`
	Options         pq.StringArray `gorm:"type:text[]"`
	SortOrder       int            `gorm:"not null;default:0;index:idx_questions_questionnaire_order,priority:2"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}
