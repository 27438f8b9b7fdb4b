package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorHelpers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgCodeUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap(pgCodeForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrap(pgCodeForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isNotNullConstraintViolation(wrap(pgCodeNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("boom")))

	assert.True(t, isCheckConstraintViolation(wrap(pgCodeCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}
