package recommend

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/domain/entity"
)

func product(name string, tags ...string) *entity.Product {
	return &entity.Product{ID: uuid.New(), Name: name, Tags: tags}
}

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}

	return out
}

func cheeseCatalog() []*entity.Product {
	return []*entity.Product{
		product("Cheddar", "sharp", "aged"),
		product("Brie", "creamy", "mild"),
		product("Gouda", "mild", "nutty"),
	}
}

func TestRecommend_CheeseScenarios(t *testing.T) {
	t.Run("matching answer keeps only scored products", func(t *testing.T) {
		got := Recommend(map[string]string{"q1": "I like something sharp and aged"}, cheeseCatalog())

		assert.Equal(t, []string{"Cheddar"}, names(got))
	})

	t.Run("no match falls back to catalog head", func(t *testing.T) {
		got := Recommend(map[string]string{"q1": "no strong opinion"}, cheeseCatalog())

		assert.Equal(t, []string{"Cheddar", "Brie", "Gouda"}, names(got))
	})

	t.Run("shared tag ranks by score then catalog order", func(t *testing.T) {
		got := Recommend(map[string]string{"q1": "Mild and NUTTY please"}, cheeseCatalog())

		assert.Equal(t, []string{"Gouda", "Brie"}, names(got))
	})
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	got := Recommend(map[string]string{"q1": "sharp"}, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Recommend(nil, []*entity.Product{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommend_FallbackDeterminism(t *testing.T) {
	catalog := []*entity.Product{
		product("A", "x"), product("B", "y"), product("C", "z"), product("D", "w"), product("E"),
	}

	assert.Equal(t, []string{"A", "B", "C"}, names(Recommend(map[string]string{}, catalog)))
	assert.Equal(t, []string{"A", "B", "C"}, names(Recommend(nil, catalog)))
	assert.Equal(t, []string{"A", "B"}, names(Recommend(nil, catalog[:2])))
}

func TestRecommend_FallbackDoesNotAliasCatalog(t *testing.T) {
	catalog := cheeseCatalog()
	got := Recommend(nil, catalog)
	got[0] = product("Other")

	assert.Equal(t, "Cheddar", catalog[0].Name)
}

func TestRecommend_BoundedAndNonIncreasing(t *testing.T) {
	catalog := make([]*entity.Product, 0, 10)
	for i := range 10 {
		tags := make([]string, 0, i+1)
		for j := 0; j <= i; j++ {
			tags = append(tags, fmt.Sprintf("tag%02d", j))
		}
		catalog = append(catalog, product(fmt.Sprintf("P%d", i), tags...))
	}
	answers := map[string]string{"q1": "tag00 tag01 tag02", "q2": "tag03 tag04"}
	blob := AnswerBlob(answers)

	got := Recommend(answers, catalog)

	require.Len(t, got, MaxRecommendations)
	for i, p := range got {
		assert.Positive(t, Score(blob, p))
		if i > 0 {
			assert.GreaterOrEqual(t, Score(blob, got[i-1]), Score(blob, p))
		}
	}
	// P4..P9 all score 5; the stable sort keeps them in catalog order.
	assert.Equal(t, []string{"P4", "P5", "P6", "P7", "P8", "P9"}, names(got))
}

func TestRecommend_StableTies(t *testing.T) {
	catalog := []*entity.Product{
		product("First", "cheese"),
		product("Second", "wine", "cheese"),
		product("Third", "cheese"),
	}

	got := Recommend(map[string]string{"q1": "cheese and wine"}, catalog)

	assert.Equal(t, []string{"Second", "First", "Third"}, names(got))
}

func TestRecommend_AnswerOrderIndependence(t *testing.T) {
	catalog := []*entity.Product{
		product("Mild Cheddar", "mild cheddar"),
		product("Cheddar", "cheddar"),
		product("Mild", "mild"),
	}
	a := map[string]string{"q1": "mild", "q2": "cheddar"}
	b := map[string]string{"q2": "cheddar", "q1": "mild"}

	first := names(Recommend(a, catalog))
	for range 20 {
		assert.Equal(t, first, names(Recommend(a, catalog)))
		assert.Equal(t, first, names(Recommend(b, catalog)))
	}
	assert.Equal(t, []string{"Cheddar", "Mild"}, first)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		blob string
		tags []string
		want int
	}{
		{name: "case insensitive tag", blob: "i want something sharp", tags: []string{"Sharp"}, want: 1},
		{name: "upper case answer", blob: AnswerBlob(map[string]string{"q": "SHARP"}), tags: []string{"sharp"}, want: 1},
		{name: "duplicate tags count once", blob: "aged aged aged", tags: []string{"aged", "aged"}, want: 1},
		{name: "duplicate tags differing by case count once", blob: "aged", tags: []string{"Aged", "AGED ", "aged"}, want: 1},
		{name: "empty tag never matches", blob: "anything at all", tags: []string{""}, want: 0},
		{name: "whitespace tag never matches", blob: "anything at all", tags: []string{"   ", "\t"}, want: 0},
		{name: "empty tag alongside real tag", blob: "nutty", tags: []string{"", "nutty"}, want: 1},
		{name: "substring containment", blob: "extra-creamy texture", tags: []string{"creamy"}, want: 1},
		{name: "empty blob", blob: "", tags: []string{"sharp"}, want: 0},
		{name: "no tags", blob: "sharp", tags: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.blob, product("p", tt.tags...)))
		})
	}
}

func TestScore_NilProduct(t *testing.T) {
	assert.Zero(t, Score("sharp", nil))
}

func TestAnswerBlob(t *testing.T) {
	assert.Equal(t, "", AnswerBlob(nil))
	assert.Equal(t, "mild\nsharp", AnswerBlob(map[string]string{"b": "Sharp", "a": "MILD"}))
}
