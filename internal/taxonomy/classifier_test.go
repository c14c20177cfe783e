package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manoharask/msme/internal/store"
)

func fixedRepository(categories []store.Category) CategoryRepository {
	return NewRepository(func(ctx context.Context) ([]store.Category, error) {
		return categories, nil
	})
}

func TestClassify_MaxDistinctHitsWins(t *testing.T) {
	repo := fixedRepository([]store.Category{
		{Code: "TX001", Name: "Textiles", Keywords: []string{"cotton"}},
		{Code: "LE001", Name: "Leather Goods", Keywords: []string{"leather", "belt"}},
	})
	c := NewClassifier(repo, nil)

	code, name := c.Classify(context.Background(), []string{"leather belt"})
	assert.Equal(t, "LE001", code)
	assert.Equal(t, "Leather Goods", name)
}

func TestClassify_DistinctKeywordsNotOccurrences(t *testing.T) {
	// "cotton cotton cotton" is one distinct hit; two distinct keywords beat it.
	repo := fixedRepository([]store.Category{
		{Code: "TX001", Name: "Textiles", Keywords: []string{"cotton"}},
		{Code: "FD001", Name: "Food Products", Keywords: []string{"spice", "masala"}},
	})
	c := NewClassifier(repo, nil)

	code, _ := c.Classify(context.Background(), []string{"cotton cotton cotton spice masala"})
	assert.Equal(t, "FD001", code)
}

func TestClassify_WholeTokenMatching(t *testing.T) {
	repo := fixedRepository([]store.Category{
		{Code: "HW001", Name: "Headwear", Keywords: []string{"cap"}},
	})
	c := NewClassifier(repo, nil)

	// "cap" inside "capacity" must not count.
	code, _ := c.Classify(context.Background(), []string{"high capacity spindle"})
	assert.Equal(t, DefaultCategoryCode, code)

	code, _ = c.Classify(context.Background(), []string{"cap gun"})
	assert.Equal(t, "HW001", code)
}

func TestClassify_TieResolvesToDefault(t *testing.T) {
	repo := fixedRepository([]store.Category{
		{Code: "AG001", Name: "Agriculture", Keywords: []string{"seed"}},
		{Code: "FD001", Name: "Food Products", Keywords: []string{"oil"}},
	})
	c := NewClassifier(repo, nil)

	code, name := c.Classify(context.Background(), []string{"seed oil press"})
	assert.Equal(t, DefaultCategoryCode, code)
	assert.Equal(t, DefaultCategoryName, name)
}

func TestClassify_ZeroHitsAndEmptyRepository(t *testing.T) {
	c := NewClassifier(fixedRepository(nil), nil)
	code, name := c.Classify(context.Background(), []string{"anything at all"})
	assert.Equal(t, DefaultCategoryCode, code)
	assert.Equal(t, DefaultCategoryName, name)

	repo := fixedRepository([]store.Category{
		{Code: "LE001", Name: "Leather Goods", Keywords: []string{"leather"}},
	})
	code, _ = NewClassifier(repo, nil).Classify(context.Background(), []string{"ceramic tiles"})
	assert.Equal(t, DefaultCategoryCode, code)
}

func TestClassify_LoadFailureFallsBackToDefault(t *testing.T) {
	repo := NewRepository(func(ctx context.Context) ([]store.Category, error) {
		return nil, errors.New("store unreachable")
	})
	c := NewClassifier(repo, nil)

	code, name := c.Classify(context.Background(), []string{"leather belt"})
	assert.Equal(t, DefaultCategoryCode, code)
	assert.Equal(t, DefaultCategoryName, name)
}

func TestClassify_ContextStringsCount(t *testing.T) {
	repo := fixedRepository([]store.Category{
		{Code: "TX001", Name: "Textiles", Keywords: []string{"saree"}},
		{Code: "LE001", Name: "Leather Goods", Keywords: []string{"leather", "wallet"}},
	})
	c := NewClassifier(repo, nil)

	// Keywords found only in the business name and transcript still count.
	code, _ := c.Classify(context.Background(),
		[]string{"handmade goods"},
		"Sharma Leather Works", "we make wallet and belts")
	assert.Equal(t, "LE001", code)
}

func TestClassify_HindiKeywords(t *testing.T) {
	repo := fixedRepository([]store.Category{
		{Code: "TX001", Name: "Textiles", Keywords: []string{"कपड़ा", "saree"}},
	})
	c := NewClassifier(repo, nil)

	code, _ := c.Classify(context.Background(), []string{"हम कपड़ा बनाते हैं"})
	assert.Equal(t, "TX001", code)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Leather-Belt!", "leather belt"},
		{"  Cotton   Sarees  ", "cotton sarees"},
		{"कपड़ा, saree", "कपड़ा saree"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in))
	}
}

func TestRepository_CachesAndInvalidates(t *testing.T) {
	loads := 0
	repo := NewRepository(func(ctx context.Context) ([]store.Category, error) {
		loads++
		return []store.Category{{Code: "TX001", Name: "Textiles"}}, nil
	})
	ctx := context.Background()

	_, err := repo.Categories(ctx)
	require.NoError(t, err)
	_, err = repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "second call should hit the cache")

	repo.Invalidate()
	_, err = repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "invalidate should force a reload")
}
