package memory

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

type responseRepository struct {
	a access
}

// NewResponseRepository returns a ResponseRepository backed by store.
func NewResponseRepository(store *Store) repository.ResponseRepository {
	return &responseRepository{a: access{store: store}}
}

func (repo *responseRepository) CreateResponse(ctx context.Context, response *entity.Response) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.questionnaires[response.QuestionnaireID]; !ok {
			return repository.ErrQuestionnaireNotFound
		}
		st.responses[response.ID] = record[entity.Response]{seq: st.nextSeq(), value: *copyResponse(*response)}

		return nil
	})
}

func (repo *responseRepository) FindResponsesByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID, page repository.PageRequest) ([]*entity.Response, int, error) {
	return repo.findPage(ctx, page, func(st *state, r entity.Response) bool {
		return r.QuestionnaireID == questionnaireID
	})
}

func (repo *responseRepository) FindResponsesByAccount(ctx context.Context, accountID uuid.UUID, page repository.PageRequest) ([]*entity.Response, int, error) {
	return repo.findPage(ctx, page, func(st *state, r entity.Response) bool {
		q, ok := st.questionnaires[r.QuestionnaireID]

		return ok && q.value.AccountID == accountID
	})
}

func (repo *responseRepository) findPage(ctx context.Context, page repository.PageRequest, match func(st *state, r entity.Response) bool) ([]*entity.Response, int, error) {
	var (
		out   []*entity.Response
		total int
	)
	err := repo.a.read(ctx, func(st *state) error {
		recs := make([]record[entity.Response], 0)
		for _, rec := range st.responses {
			if match(st, rec.value) {
				recs = append(recs, rec)
			}
		}
		all := sortedValues(recs, newestFirst(func(r entity.Response) int64 { return r.CreatedAt.UnixNano() }), copyResponse)

		total = len(all)
		start := min(page.Offset(), total)
		end := min(start+page.Limit, total)
		out = all[start:end]

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}
