// Package recommend matches customer answers against a product catalog by tag containment.
package recommend

import (
	"maps"
	"slices"
	"strings"

	"curator/internal/domain/entity"
)

const (
	// MaxRecommendations is the longest shortlist Recommend returns.
	MaxRecommendations = 6
	// FallbackSize is how many catalog entries are returned when nothing matches.
	FallbackSize = 3
)

// answerSeparator joins answer values in the blob. Tags are single-line,
// so no tag can match across two answers.
const answerSeparator = "\n"

type scored struct {
	product *entity.Product
	score   int
}

// Recommend ranks catalog by how many of each product's tags occur in the answers.
//
// Products without any matching tag are dropped, the rest are ordered by descending
// score with ties kept in catalog order, and at most MaxRecommendations are returned.
// When no product matches, the first FallbackSize catalog entries are returned as-is.
// The result is never nil.
func Recommend(answers map[string]string, catalog []*entity.Product) []*entity.Product {
	if len(catalog) == 0 {
		return []*entity.Product{}
	}

	blob := AnswerBlob(answers)

	matches := make([]scored, 0, len(catalog))
	for _, product := range catalog {
		if s := Score(blob, product); s > 0 {
			matches = append(matches, scored{product: product, score: s})
		}
	}

	if len(matches) == 0 {
		return slices.Clone(catalog[:min(FallbackSize, len(catalog))])
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.score - a.score
	})

	result := make([]*entity.Product, 0, min(MaxRecommendations, len(matches)))
	for _, m := range matches[:min(MaxRecommendations, len(matches))] {
		result = append(result, m.product)
	}

	return result
}

// AnswerBlob lower-cases and joins every answer value. Values are joined in
// question ID order so the blob does not depend on map iteration order.
func AnswerBlob(answers map[string]string) string {
	keys := slices.Sorted(maps.Keys(answers))

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, answers[k])
	}

	return strings.ToLower(strings.Join(values, answerSeparator))
}

// Score counts the distinct tags of product that occur in blob. Blank tags never match
// and tags that differ only by case or surrounding whitespace count once.
func Score(blob string, product *entity.Product) int {
	if product == nil || blob == "" {
		return 0
	}

	seen := make(map[string]struct{}, len(product.Tags))
	score := 0

	for _, tag := range product.Tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}

		if strings.Contains(blob, t) {
			score++
		}
	}

	return score
}
