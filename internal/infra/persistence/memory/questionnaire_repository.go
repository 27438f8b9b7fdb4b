package memory

import (
	"cmp"
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

type questionnaireRepository struct {
	a access
}

// NewQuestionnaireRepository returns a QuestionnaireRepository backed by store.
func NewQuestionnaireRepository(store *Store) repository.QuestionnaireRepository {
	return &questionnaireRepository{a: access{store: store}}
}

func (repo *questionnaireRepository) CreateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.accounts[questionnaire.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}
		st.questionnaires[questionnaire.ID] = record[entity.Questionnaire]{
			seq:   st.nextSeq(),
			value: *copyQuestionnaire(*questionnaire),
		}

		return nil
	})
}

func (repo *questionnaireRepository) FindQuestionnaireByID(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	var out *entity.Questionnaire
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.questionnaires[id]
		if !ok {
			return repository.ErrQuestionnaireNotFound
		}
		out = copyQuestionnaire(rec.value)

		return nil
	})

	return out, err
}

// FindQuestionnaireByIDForUpdate needs no row lock: transactions already hold the store's write lock.
func (repo *questionnaireRepository) FindQuestionnaireByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	return repo.FindQuestionnaireByID(ctx, id)
}

func (repo *questionnaireRepository) FindQuestionnairesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Questionnaire, error) {
	var out []*entity.Questionnaire
	err := repo.a.read(ctx, func(st *state) error {
		recs := make([]record[entity.Questionnaire], 0)
		for _, rec := range st.questionnaires {
			if rec.value.AccountID == accountID {
				recs = append(recs, rec)
			}
		}
		out = sortedValues(recs, newestFirst(func(q entity.Questionnaire) int64 { return q.CreatedAt.UnixNano() }), copyQuestionnaire)

		return nil
	})

	return out, err
}

func (repo *questionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error {
	return repo.a.write(ctx, func(st *state) error {
		rec, ok := st.questionnaires[questionnaire.ID]
		if !ok {
			return repository.ErrQuestionnaireNotFound
		}

		updated := rec.value
		updated.Title = questionnaire.Title
		updated.Description = clonePtr(questionnaire.Description)
		updated.IsPublished = questionnaire.IsPublished
		updated.UpdatedAt = questionnaire.UpdatedAt
		st.questionnaires[questionnaire.ID] = record[entity.Questionnaire]{seq: rec.seq, value: updated}

		return nil
	})
}

// DeleteQuestionnaire removes the questionnaire and cascades to its questions and responses.
func (repo *questionnaireRepository) DeleteQuestionnaire(ctx context.Context, id uuid.UUID) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.questionnaires[id]; !ok {
			return repository.ErrQuestionnaireNotFound
		}

		delete(st.questionnaires, id)
		for qid, rec := range st.questions {
			if rec.value.QuestionnaireID == id {
				delete(st.questions, qid)
			}
		}
		for rid, rec := range st.responses {
			if rec.value.QuestionnaireID == id {
				delete(st.responses, rid)
			}
		}

		return nil
	})
}

type questionRepository struct {
	a access
}

// NewQuestionRepository returns a QuestionRepository backed by store.
func NewQuestionRepository(store *Store) repository.QuestionRepository {
	return &questionRepository{a: access{store: store}}
}

func (repo *questionRepository) CreateQuestion(ctx context.Context, question *entity.Question) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.questionnaires[question.QuestionnaireID]; !ok {
			return repository.ErrQuestionnaireNotFound
		}
		st.questions[question.ID] = record[entity.Question]{seq: st.nextSeq(), value: *copyQuestion(*question)}

		return nil
	})
}

func (repo *questionRepository) FindQuestionByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var out *entity.Question
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.questions[id]
		if !ok {
			return repository.ErrQuestionNotFound
		}
		out = copyQuestion(rec.value)

		return nil
	})

	return out, err
}

// FindQuestionsByQuestionnaire orders by Order, then insertion.
func (repo *questionRepository) FindQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) ([]*entity.Question, error) {
	var out []*entity.Question
	err := repo.a.read(ctx, func(st *state) error {
		recs := make([]record[entity.Question], 0)
		for _, rec := range st.questions {
			if rec.value.QuestionnaireID == questionnaireID {
				recs = append(recs, rec)
			}
		}
		out = sortedValues(recs, func(a, b record[entity.Question]) int {
			return cmp.Or(cmp.Compare(a.value.Order, b.value.Order), cmp.Compare(a.seq, b.seq))
		}, copyQuestion)

		return nil
	})

	return out, err
}

func (repo *questionRepository) CountQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) (int, error) {
	count := 0
	err := repo.a.read(ctx, func(st *state) error {
		for _, rec := range st.questions {
			if rec.value.QuestionnaireID == questionnaireID {
				count++
			}
		}

		return nil
	})

	return count, err
}

func (repo *questionRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.questions[id]; !ok {
			return repository.ErrQuestionNotFound
		}
		delete(st.questions, id)

		return nil
	})
}

// newestFirst orders records by descending timestamp, later insertions first on ties.
func newestFirst[T any](ts func(T) int64) func(a, b record[T]) int {
	return func(a, b record[T]) int {
		return cmp.Or(cmp.Compare(ts(b.value), ts(a.value)), cmp.Compare(b.seq, a.seq))
	}
}
