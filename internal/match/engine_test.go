package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manoharask/msme/internal/graph"
)

func candidateRecord(id, name, city string, rating float64, capacity int, export bool, certs []string, totalCats int) map[string]any {
	certList := make([]any, len(certs))
	for i, c := range certs {
		certList[i] = c
	}
	return map[string]any{
		"id":               id,
		"name":             name,
		"city":             city,
		"rating":           rating,
		"capacity":         int64(capacity),
		"export_capable":   export,
		"certifications":   certList,
		"languages":        []any{"en", "hi"},
		"payment_terms":    "Net 30",
		"specialization":   "",
		"total_categories": int64(totalCats),
	}
}

func engineWith(records ...map[string]any) *Engine {
	mock := graph.NewMockGraphClient()
	mock.AddQueryResult(graph.QueryResult{Records: records})
	return NewEngine(mock, nil)
}

func TestMatch_SameCityOutranksHigherRating(t *testing.T) {
	// Both providers serve the enterprise's category. The same-city one has
	// the lower raw rating but the geography weight dominates.
	e := engineWith(
		candidateRecord("SNP001", "TextileHub Bengaluru", "Bengaluru", 0.90, 100, true, nil, 1),
		candidateRecord("SNP002", "WeaveMart Chennai", "Chennai", 0.95, 200, false, nil, 1),
	)

	matches, err := e.Match(context.Background(), "MSE001", "Bengaluru")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "SNP001", matches[0].ProviderID)
	assert.Equal(t, "SNP002", matches[1].ProviderID)

	// geo 1.0, quality 0.90+0.05, capacity 0.5, focus 1.0:
	// 0.60 + 0.1425 + 0.05 + 0.10 = 0.8925 -> 89
	assert.Equal(t, 89, matches[0].Score)
	assert.Equal(t, 100, matches[0].GeoPct)
	assert.Equal(t, 95, matches[0].QualityPct)
	assert.Equal(t, 50, matches[0].CapacityPct)

	// geo 0.1, quality 0.95, capacity 0.9, focus 1.0:
	// 0.06 + 0.1425 + 0.09 + 0.10 = 0.3925 -> 39
	assert.Equal(t, 39, matches[1].Score)
	assert.Equal(t, 10, matches[1].GeoPct)
}

func TestMatch_EmptyCandidateSetIsNotAnError(t *testing.T) {
	e := engineWith()

	matches, err := e.Match(context.Background(), "MSE001", "Bengaluru")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatch_AtMostThreeResults(t *testing.T) {
	e := engineWith(
		candidateRecord("SNP001", "A", "Pune", 0.80, 200, false, nil, 1),
		candidateRecord("SNP002", "B", "Pune", 0.85, 200, false, nil, 1),
		candidateRecord("SNP003", "C", "Pune", 0.90, 200, false, nil, 1),
		candidateRecord("SNP004", "D", "Pune", 0.95, 200, false, nil, 1),
	)

	matches, err := e.Match(context.Background(), "MSE001", "Pune")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "SNP004", matches[0].ProviderID)
}

func TestMatch_TieBreaksByProviderID(t *testing.T) {
	e := engineWith(
		candidateRecord("SNP009", "Later", "Pune", 0.90, 200, false, nil, 1),
		candidateRecord("SNP002", "Earlier", "Pune", 0.90, 200, false, nil, 1),
	)

	matches, err := e.Match(context.Background(), "MSE001", "Pune")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, "SNP002", matches[0].ProviderID)
}

func TestScore_RatingMonotonic(t *testing.T) {
	base := candidate{id: "SNP001", city: "Pune", rating: 0.50, capacity: 100, totalCategories: 2}
	raised := base
	raised.rating = 0.80

	low := score(base, "Pune")
	high := score(raised, "Pune")
	assert.GreaterOrEqual(t, high.Score, low.Score)
	assert.Greater(t, high.QualityPct, low.QualityPct)
}

func TestScore_ExportBonusNeverLowersQuality(t *testing.T) {
	plain := candidate{id: "SNP001", city: "Pune", rating: 0.90, capacity: 100, totalCategories: 1}
	exporting := plain
	exporting.exportCapable = true

	assert.GreaterOrEqual(t, score(exporting, "Pune").QualityPct, score(plain, "Pune").QualityPct)

	// Quality clamps at 1.0 even with the bonus.
	maxed := candidate{id: "SNP002", city: "Pune", rating: 0.99, exportCapable: true, totalCategories: 1}
	assert.Equal(t, 100, score(maxed, "Pune").QualityPct)
}

func TestScore_CapacityStepFunction(t *testing.T) {
	at := candidate{id: "SNP001", city: "Pune", capacity: 150, totalCategories: 1}
	above := candidate{id: "SNP002", city: "Pune", capacity: 151, totalCategories: 1}

	// The step requires strictly more than the threshold.
	assert.Equal(t, 50, score(at, "Pune").CapacityPct)
	assert.Equal(t, 90, score(above, "Pune").CapacityPct)
}

func TestScore_FocusRewardsSpecialists(t *testing.T) {
	specialist := candidate{id: "SNP001", city: "Pune", rating: 0.80, capacity: 200, totalCategories: 1}
	generalist := specialist
	generalist.id = "SNP002"
	generalist.totalCategories = 4

	assert.Greater(t, score(specialist, "Pune").Score, score(generalist, "Pune").Score)
}

func TestScore_GeographyCaseInsensitive(t *testing.T) {
	c := candidate{id: "SNP001", city: "BENGALURU", rating: 0.5, totalCategories: 1}
	assert.Equal(t, 100, score(c, "bengaluru").GeoPct)

	c.city = "Mysuru"
	assert.Equal(t, 10, score(c, "bengaluru").GeoPct)
}

func TestScore_CertificationBonus(t *testing.T) {
	none := candidate{id: "SNP001", city: "Pune", rating: 0.80, capacity: 200, totalCategories: 1}
	certified := none
	certified.certifications = []string{"ISO9001", "BIS"}

	withBonus := score(certified, "Pune")
	assert.Greater(t, withBonus.Score, score(none, "Pune").Score)
	assert.Equal(t, 2, withBonus.CertCount)
}

func TestMatch_FallsBackToEnterpriseCity(t *testing.T) {
	record := candidateRecord("SNP001", "TextileHub Bengaluru", "Bengaluru", 0.90, 100, false, nil, 1)
	record["mse_city"] = "Bengaluru"
	e := engineWith(record)

	matches, err := e.Match(context.Background(), "MSE001", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].GeoPct)
}

func TestMatch_QueryFailurePropagates(t *testing.T) {
	mock := graph.NewMockGraphClient()
	mock.AddQueryError(assert.AnError)
	e := NewEngine(mock, nil)

	_, err := e.Match(context.Background(), "MSE001", "Pune")
	assert.Error(t, err)
}
