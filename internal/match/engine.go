package match

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/types"
)

// Match error codes
const (
	ErrCodeMatchQueryFailed types.ErrorCode = "MATCH_QUERY_FAILED"
)

// Scoring constants. The weight vector is a reproducible contract shared
// with downstream consumers; do not re-derive it per call site.
const (
	weightGeography = 0.60
	weightQuality   = 0.15
	weightCapacity  = 0.10
	weightFocus     = 0.10
	weightCertBonus = 0.05

	geographyFloor    = 0.1
	exportBonus       = 0.05
	capacityThreshold = 150
	capacityHigh      = 0.9
	capacityLow       = 0.5
	certBonusPerCert  = 0.02

	maxResults = 3
)

// ProviderMatch is one ranked candidate with its composite score, the
// sub-scores needed by presentation, and pass-through attributes for
// explanation text.
type ProviderMatch struct {
	ProviderID string `json:"snp_id"`
	Name       string `json:"snp"`
	City       string `json:"location"`

	// Score is the composite as an integer percentage.
	Score       int `json:"score"`
	GeoPct      int `json:"geo_pct"`
	QualityPct  int `json:"sla_pct"`
	CapacityPct int `json:"cap_pct"`
	CertCount   int `json:"cert_count"`

	Certifications []string `json:"certifications,omitempty"`
	ExportCapable  bool     `json:"export_capable"`
	Specialization string   `json:"specialization,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	PaymentTerms   string   `json:"payment_terms,omitempty"`
}

// candidate holds the raw factors fetched for one provider.
type candidate struct {
	id              string
	name            string
	city            string
	rating          float64
	capacity        int
	exportCapable   bool
	certifications  []string
	languages       []string
	paymentTerms    string
	specialization  string
	totalCategories int
}

// Engine ranks providers for an enterprise. It issues one graph read and
// computes every score in process; it has no side effects.
type Engine struct {
	client graph.GraphClient
	logger *slog.Logger
}

// NewEngine creates a ranking engine over the given graph client.
func NewEngine(client graph.GraphClient, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		client: client,
		logger: logger,
	}
}

// Match returns up to three providers serving the enterprise's offered
// category, descending by composite score. Equal scores order by ascending
// provider ID. Geography compares against the enterprise's registered city
// unless cityHint is non-empty. An enterprise with no category, or a
// category nobody serves, yields an empty list and no error.
func (e *Engine) Match(ctx context.Context, enterpriseID, cityHint string) ([]ProviderMatch, error) {
	result, err := e.client.Query(ctx, `
		MATCH (m:MSE {id: $mse})-[:OFFERS]->(c:Category)
		MATCH (s:SNP)-[:SERVES]->(c)
		WITH DISTINCT m, s
		RETURN m.city AS mse_city,
		       s.id AS id, s.name AS name, s.city AS city,
		       s.rating AS rating, s.capacity AS capacity,
		       s.export_capable AS export_capable,
		       s.certifications AS certifications,
		       s.languages AS languages,
		       s.payment_terms AS payment_terms,
		       s.specialization AS specialization,
		       COUNT { (s)-[:SERVES]->(:Category) } AS total_categories
		`, map[string]any{"mse": enterpriseID})
	if err != nil {
		return nil, types.WrapError(ErrCodeMatchQueryFailed,
			fmt.Sprintf("candidate query failed for enterprise %s", enterpriseID), err)
	}

	matches := make([]ProviderMatch, 0, len(result.Records))
	for _, record := range result.Records {
		// The enterprise's own city anchors geography unless the caller
		// supplied an override.
		city := cityHint
		if city == "" {
			city = asString(record["mse_city"])
		}
		matches = append(matches, score(decodeCandidate(record), city))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ProviderID < matches[j].ProviderID
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	e.logger.Debug("match computed",
		"enterprise", enterpriseID, "city", cityHint, "candidates", len(result.Records), "returned", len(matches))
	return matches, nil
}

// score computes the composite for one candidate. Every factor is
// normalized to [0,1] before weighting.
func score(c candidate, cityHint string) ProviderMatch {
	geo := geographyFloor
	if strings.EqualFold(c.city, cityHint) {
		geo = 1.0
	}

	quality := c.rating
	if c.exportCapable {
		quality += exportBonus
		if quality > 1.0 {
			quality = 1.0
		}
	}

	capacity := capacityLow
	if c.capacity > capacityThreshold {
		capacity = capacityHigh
	}

	focus := 1.0
	if c.totalCategories > 0 {
		focus = 1.0 / float64(c.totalCategories)
	}

	certBonus := certBonusPerCert * float64(len(c.certifications))
	if certBonus > 1.0 {
		certBonus = 1.0
	}

	composite := weightGeography*geo +
		weightQuality*quality +
		weightCapacity*capacity +
		weightFocus*focus +
		weightCertBonus*certBonus

	return ProviderMatch{
		ProviderID:     c.id,
		Name:           c.name,
		City:           c.city,
		Score:          int(math.Round(composite * 100)),
		GeoPct:         int(math.Round(geo * 100)),
		QualityPct:     int(math.Round(quality * 100)),
		CapacityPct:    int(math.Round(capacity * 100)),
		CertCount:      len(c.certifications),
		Certifications: c.certifications,
		ExportCapable:  c.exportCapable,
		Specialization: c.specialization,
		Languages:      c.languages,
		PaymentTerms:   c.paymentTerms,
	}
}

func decodeCandidate(record map[string]any) candidate {
	return candidate{
		id:              asString(record["id"]),
		name:            asString(record["name"]),
		city:            asString(record["city"]),
		rating:          asFloat(record["rating"]),
		capacity:        asInt(record["capacity"]),
		exportCapable:   asBool(record["export_capable"]),
		certifications:  asStringList(record["certifications"]),
		languages:       asStringList(record["languages"]),
		paymentTerms:    asString(record["payment_terms"]),
		specialization:  asString(record["specialization"]),
		totalCategories: asInt(record["total_categories"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func asStringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
