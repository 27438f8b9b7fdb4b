package tenant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/domain/entity"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	questionnaire := &entity.Questionnaire{ID: uuid.New(), AccountID: owner, Title: "Cheese"}

	t.Run("owner gets the record back unchanged", func(t *testing.T) {
		got, err := Authorize(owner, questionnaire)
		require.NoError(t, err)
		assert.Same(t, questionnaire, got)
		assert.Equal(t, "Cheese", got.Title)
	})

	t.Run("other account is forbidden", func(t *testing.T) {
		got, err := Authorize(other, questionnaire)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Nil(t, got)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		var missing *entity.Questionnaire
		got, err := Authorize(owner, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("works for products", func(t *testing.T) {
		p := &entity.Product{ID: uuid.New(), AccountID: owner}

		_, err := Authorize(other, p)
		assert.ErrorIs(t, err, ErrForbidden)

		got, err := Authorize(owner, p)
		require.NoError(t, err)
		assert.Same(t, p, got)
	})
}

func TestAuthorizeChild(t *testing.T) {
	owner := uuid.New()
	parent := &entity.Questionnaire{ID: uuid.New(), AccountID: owner}
	question := &entity.Question{ID: uuid.New(), QuestionnaireID: parent.ID}

	got, err := AuthorizeChild(owner, parent, question)
	require.NoError(t, err)
	assert.Same(t, question, got)

	_, err = AuthorizeChild(uuid.New(), parent, question)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = AuthorizeChild[entity.Questionnaire, *entity.Questionnaire, entity.Question](owner, parent, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AuthorizeChild(owner, (*entity.Questionnaire)(nil), question)
	assert.ErrorIs(t, err, ErrNotFound)
}
