package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"curator/internal/infra/persistence/model"
)

// newDryRunDB builds statements without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=curator dbname=curator"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func orderByClause(sql string) string {
	_, after, found := strings.Cut(sql, "ORDER BY ")
	if !found {
		return ""
	}

	return after
}

func TestNewestFirst_BreaksTiesByID(t *testing.T) {
	db := newDryRunDB(t)

	stmt := db.Model(&model.ProductModel{}).
		Where("account_id = ?", "a").
		Scopes(newestFirst).
		Find(&[]*model.ProductModel{}).Statement

	assert.Equal(t, "created_at DESC,id DESC", orderByClause(stmt.SQL.String()))
}

func TestByQuestionOrder_BreaksTiesByCreationThenID(t *testing.T) {
	db := newDryRunDB(t)

	stmt := db.Model(&model.QuestionModel{}).
		Where("questionnaire_id = ?", "q").
		Scopes(byQuestionOrder).
		Find(&[]*model.QuestionModel{}).Statement

	assert.Equal(t, "sort_order ASC,created_at ASC,id ASC", orderByClause(stmt.SQL.String()))
}
