package memory

import (
	"maps"
	"slices"

	"curator/internal/domain/entity"
)

func copyAccount(a entity.Account) *entity.Account {
	a.CompanyName = clonePtr(a.CompanyName)
	a.LogoURL = clonePtr(a.LogoURL)

	return &a
}

func copyQuestionnaire(q entity.Questionnaire) *entity.Questionnaire {
	q.Description = clonePtr(q.Description)

	return &q
}

func copyQuestion(q entity.Question) *entity.Question {
	q.Options = slices.Clone(q.Options)

	return &q
}

func copyProduct(p entity.Product) *entity.Product {
	p.Description = clonePtr(p.Description)
	p.ImageURL = clonePtr(p.ImageURL)
	p.Tags = slices.Clone(p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}

	return &p
}

func copyResponse(r entity.Response) *entity.Response {
	r.CustomerEmail = clonePtr(r.CustomerEmail)
	r.Answers = maps.Clone(r.Answers)
	if r.Answers == nil {
		r.Answers = map[string]string{}
	}

	return &r
}

func copyDevice(d entity.Device) *entity.Device {
	return &d
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
