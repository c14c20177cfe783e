package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/types"
)

// GraphStore is the typed domain layer over the property graph. All reads
// and writes go through parameterized Cypher; callers never see the query
// language.
type GraphStore struct {
	client graph.GraphClient
	logger *slog.Logger
}

// New creates a GraphStore backed by the given graph client.
func New(client graph.GraphClient, logger *slog.Logger) *GraphStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphStore{
		client: client,
		logger: logger,
	}
}

// SaveEnterprise upserts an MSE node keyed by ID and points its single
// OFFERS relation at the given category. Any previous OFFERS relation is
// removed first, so repeated saves overwrite rather than accumulate.
func (s *GraphStore) SaveEnterprise(ctx context.Context, e Enterprise) error {
	if e.ID == "" {
		return types.NewError(types.STORE_INVALID_ARGUMENT, "enterprise id is required")
	}
	if e.CategoryCode == "" {
		return types.NewError(types.STORE_INVALID_ARGUMENT, "enterprise category code is required")
	}

	props := map[string]any{
		"name":               e.Name,
		"city":               e.City,
		"products":           e.Products,
		"urn":                e.URN,
		"mobile":             e.Mobile,
		"email":              e.Email,
		"type":               e.EnterpriseType,
		"activity":           e.Activity,
		"social_category":    e.SocialCategory,
		"incorporation_date": e.IncorporationDate,
		"commencement_date":  e.CommencementDate,
		"registration_date":  e.RegistrationDate,
		"address":            resolveAddress(e.Address),
		"state":              e.State,
		"pin":                e.Pin,
		"unit_names":         e.UnitNames,
		"nic_5_digit_codes":  e.NICCodes,
		"nic_activity":       e.NICActivity,
		"source":             e.Source,
	}

	_, err := s.client.Write(ctx, `
		MERGE (m:MSE {id: $id})
		ON CREATE SET m.created_at = timestamp()
		SET m += $props
		WITH m
		OPTIONAL MATCH (m)-[old:OFFERS]->(:Category)
		DELETE old
		WITH DISTINCT m
		MERGE (c:Category {code: $cat})
		SET c.name = coalesce(c.name, $cat_name)
		MERGE (m)-[:OFFERS]->(c)
		`, map[string]any{
		"id":       e.ID,
		"props":    props,
		"cat":      e.CategoryCode,
		"cat_name": e.CategoryName,
	})
	if err != nil {
		return types.WrapError(types.STORE_SAVE_FAILED,
			fmt.Sprintf("failed to save enterprise %s", e.ID), err)
	}

	s.logger.Debug("enterprise saved", "id", e.ID, "category", e.CategoryCode)
	return nil
}

// FetchEnterprise returns a single MSE by ID with its offered category.
func (s *GraphStore) FetchEnterprise(ctx context.Context, id string) (*Enterprise, error) {
	result, err := s.client.Query(ctx, `
		MATCH (m:MSE {id: $id})
		OPTIONAL MATCH (m)-[:OFFERS]->(c:Category)
		RETURN properties(m) AS props, c.code AS category_code, c.name AS category_name
		`, map[string]any{"id": id})
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			fmt.Sprintf("failed to fetch enterprise %s", id), err)
	}

	record := result.Single()
	if record == nil {
		return nil, types.NewError(types.STORE_NOT_FOUND,
			fmt.Sprintf("enterprise not found: %s", id))
	}

	e := decodeEnterprise(id, record)
	return &e, nil
}

// FetchRecentEnterprises returns MSEs ordered newest-first. A limit of zero
// returns all.
func (s *GraphStore) FetchRecentEnterprises(ctx context.Context, limit int) ([]Enterprise, error) {
	cypher := `
		MATCH (m:MSE)
		OPTIONAL MATCH (m)-[:OFFERS]->(c:Category)
		RETURN m.id AS id, properties(m) AS props,
		       c.code AS category_code, c.name AS category_name
		ORDER BY coalesce(m.created_at, 0) DESC
		`
	params := map[string]any{}
	if limit > 0 {
		cypher += " LIMIT $limit"
		params["limit"] = limit
	}

	result, err := s.client.Query(ctx, cypher, params)
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			"failed to fetch enterprises", err)
	}

	enterprises := make([]Enterprise, 0, len(result.Records))
	for _, record := range result.Records {
		enterprises = append(enterprises, decodeEnterprise(asString(record["id"]), record))
	}
	return enterprises, nil
}

// SaveProvider upserts an SNP node and rebuilds its SERVES relationships
// wholesale in a single write transaction. Relations are never partially
// patched.
func (s *GraphStore) SaveProvider(ctx context.Context, p Provider) error {
	if p.ID == "" {
		return types.NewError(types.STORE_INVALID_ARGUMENT, "provider id is required")
	}

	_, err := s.client.Write(ctx, `
		MERGE (s:SNP {id: $id})
		SET s.name           = $name,
		    s.city           = $city,
		    s.rating         = $rating,
		    s.capacity       = $capacity,
		    s.lat            = $lat,
		    s.lon            = $lon,
		    s.certifications = $certifications,
		    s.export_capable = $export_capable,
		    s.languages      = $languages,
		    s.payment_terms  = $payment_terms,
		    s.specialization = $specialization
		WITH s
		OPTIONAL MATCH (s)-[old:SERVES]->(:Category)
		DELETE old
		WITH DISTINCT s
		UNWIND $codes AS code
		MATCH (c:Category {code: code})
		MERGE (s)-[:SERVES]->(c)
		`, map[string]any{
		"id":             p.ID,
		"name":           p.Name,
		"city":           p.City,
		"rating":         p.Rating,
		"capacity":       p.Capacity,
		"lat":            p.Lat,
		"lon":            p.Lon,
		"certifications": stringListParam(p.Certifications),
		"export_capable": p.ExportCapable,
		"languages":      stringListParam(p.Languages),
		"payment_terms":  p.PaymentTerms,
		"specialization": p.Specialization,
		"codes":          stringListParam(p.CategoryCodes),
	})
	if err != nil {
		return types.WrapError(types.STORE_SAVE_FAILED,
			fmt.Sprintf("failed to save provider %s", p.ID), err)
	}

	s.logger.Debug("provider saved", "id", p.ID, "categories", len(p.CategoryCodes))
	return nil
}

// DeleteProvider removes an SNP and all its relationships.
func (s *GraphStore) DeleteProvider(ctx context.Context, id string) error {
	_, err := s.client.Write(ctx,
		"MATCH (s:SNP {id: $id}) DETACH DELETE s",
		map[string]any{"id": id})
	if err != nil {
		return types.WrapError(types.STORE_DELETE_FAILED,
			fmt.Sprintf("failed to delete provider %s", id), err)
	}
	return nil
}

// FetchProvider returns a single SNP with metadata and served categories.
func (s *GraphStore) FetchProvider(ctx context.Context, id string) (*Provider, error) {
	result, err := s.client.Query(ctx, `
		MATCH (s:SNP {id: $id})
		OPTIONAL MATCH (s)-[:SERVES]->(c:Category)
		WITH s, collect(c.code) AS category_codes
		RETURN properties(s) AS props, category_codes
		`, map[string]any{"id": id})
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			fmt.Sprintf("failed to fetch provider %s", id), err)
	}

	record := result.Single()
	if record == nil {
		return nil, types.NewError(types.STORE_NOT_FOUND,
			fmt.Sprintf("provider not found: %s", id))
	}

	p := decodeProvider(id, record)
	return &p, nil
}

// FetchProviders returns SNPs with full metadata ordered by rating. A limit
// of zero returns all.
func (s *GraphStore) FetchProviders(ctx context.Context, limit int) ([]Provider, error) {
	cypher := `
		MATCH (s:SNP)
		OPTIONAL MATCH (s)-[:SERVES]->(c:Category)
		WITH s, collect(c.code) AS category_codes
		RETURN s.id AS id, properties(s) AS props, category_codes
		ORDER BY s.rating DESC
		`
	params := map[string]any{}
	if limit > 0 {
		cypher += " LIMIT $limit"
		params["limit"] = limit
	}

	result, err := s.client.Query(ctx, cypher, params)
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			"failed to fetch providers", err)
	}

	providers := make([]Provider, 0, len(result.Records))
	for _, record := range result.Records {
		providers = append(providers, decodeProvider(asString(record["id"]), record))
	}
	return providers, nil
}

// SaveCategory upserts a Category node keyed by code.
func (s *GraphStore) SaveCategory(ctx context.Context, c Category) error {
	if c.Code == "" {
		return types.NewError(types.STORE_INVALID_ARGUMENT, "category code is required")
	}

	_, err := s.client.Write(ctx, `
		MERGE (c:Category {code: $code})
		SET c.name     = $name,
		    c.sector   = $sector,
		    c.keywords = $keywords,
		    c.ondc_l1  = $ondc_l1,
		    c.ondc_l2  = $ondc_l2,
		    c.ondc_l3  = $ondc_l3
		`, map[string]any{
		"code":     c.Code,
		"name":     c.Name,
		"sector":   c.Sector,
		"keywords": stringListParam(c.Keywords),
		"ondc_l1":  c.OndcL1,
		"ondc_l2":  c.OndcL2,
		"ondc_l3":  c.OndcL3,
	})
	if err != nil {
		return types.WrapError(types.STORE_SAVE_FAILED,
			fmt.Sprintf("failed to save category %s", c.Code), err)
	}
	return nil
}

// FetchCategory returns a single Category by code.
func (s *GraphStore) FetchCategory(ctx context.Context, code string) (*Category, error) {
	result, err := s.client.Query(ctx,
		"MATCH (c:Category {code: $code}) RETURN properties(c) AS props",
		map[string]any{"code": code})
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			fmt.Sprintf("failed to fetch category %s", code), err)
	}

	record := result.Single()
	if record == nil {
		return nil, types.NewError(types.STORE_NOT_FOUND,
			fmt.Sprintf("category not found: %s", code))
	}

	c := decodeCategory(record)
	return &c, nil
}

// FetchCategories returns all categories ordered by code.
func (s *GraphStore) FetchCategories(ctx context.Context) ([]Category, error) {
	result, err := s.client.Query(ctx, `
		MATCH (c:Category)
		RETURN properties(c) AS props
		ORDER BY c.code ASC
		`, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			"failed to fetch categories", err)
	}

	categories := make([]Category, 0, len(result.Records))
	for _, record := range result.Records {
		categories = append(categories, decodeCategory(record))
	}
	return categories, nil
}

// DeleteCategory removes a category only if no enterprise still offers it.
// The referential check lives here because the store itself does not
// enforce it.
func (s *GraphStore) DeleteCategory(ctx context.Context, code string) error {
	result, err := s.client.Query(ctx, `
		MATCH (m:MSE)-[:OFFERS]->(c:Category {code: $code})
		RETURN count(m) AS mse_count
		`, map[string]any{"code": code})
	if err != nil {
		return types.WrapError(types.STORE_FETCH_FAILED,
			fmt.Sprintf("failed to check references for category %s", code), err)
	}

	if record := result.Single(); record != nil {
		if refs := asInt(record["mse_count"]); refs > 0 {
			return types.NewError(types.STORE_DELETE_REFUSED,
				fmt.Sprintf("cannot delete category %s: %d enterprise(s) still offer it", code, refs))
		}
	}

	_, err = s.client.Write(ctx,
		"MATCH (c:Category {code: $code}) DETACH DELETE c",
		map[string]any{"code": code})
	if err != nil {
		return types.WrapError(types.STORE_DELETE_FAILED,
			fmt.Sprintf("failed to delete category %s", code), err)
	}
	return nil
}

// FetchCities returns all distinct cities across MSE and SNP nodes.
func (s *GraphStore) FetchCities(ctx context.Context) ([]string, error) {
	result, err := s.client.Query(ctx, `
		MATCH (n)
		WHERE n.city IS NOT NULL
		RETURN DISTINCT n.city AS city
		ORDER BY city ASC
		`, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_FETCH_FAILED,
			"failed to fetch cities", err)
	}

	cities := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		cities = append(cities, asString(record["city"]))
	}
	return cities, nil
}

// FetchAnalytics returns the dashboard summary in one round trip.
func (s *GraphStore) FetchAnalytics(ctx context.Context) (Analytics, error) {
	result, err := s.client.Query(ctx, `
		CALL () {
		    MATCH (c:Category)
		    RETURN count(c) AS total_categories
		}
		CALL () {
		    MATCH (s:SNP)
		    RETURN count(s) AS total_snps,
		           coalesce(sum(s.capacity), 0) AS total_capacity,
		           coalesce(avg(s.rating), 0) AS avg_rating
		}
		CALL () {
		    MATCH (m:MSE)
		    RETURN count(m) AS total_mses
		}
		CALL () {
		    MATCH (s:SNP)
		    WHERE s.export_capable = true
		    RETURN count(s) AS export_capable_snps
		}
		CALL () {
		    MATCH (s:SNP)
		    RETURN count(DISTINCT s.city) AS unique_cities
		}
		CALL () {
		    MATCH ()-[r:SERVES]->()
		    RETURN count(r) AS total_relationships
		}
		RETURN total_categories, total_snps, total_mses,
		       total_capacity, avg_rating, export_capable_snps,
		       unique_cities, total_relationships
		`, nil)
	if err != nil {
		return Analytics{}, types.WrapError(types.STORE_FETCH_FAILED,
			"failed to fetch analytics", err)
	}

	record := result.Single()
	if record == nil {
		return Analytics{}, types.NewError(types.STORE_RESULT_MALFORMED,
			"analytics query returned no rows")
	}

	return Analytics{
		TotalEnterprises:   asInt(record["total_mses"]),
		TotalProviders:     asInt(record["total_snps"]),
		TotalCategories:    asInt(record["total_categories"]),
		TotalCapacity:      asInt(record["total_capacity"]),
		AvgRating:          asFloat(record["avg_rating"]),
		ExportProviders:    asInt(record["export_capable_snps"]),
		UniqueCities:       asInt(record["unique_cities"]),
		TotalRelationships: asInt(record["total_relationships"]),
	}, nil
}

// stringListParam keeps list parameters non-nil so the driver writes an
// empty list rather than removing the property.
func stringListParam(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func decodeEnterprise(id string, record map[string]any) Enterprise {
	props, _ := record["props"].(map[string]any)

	e := Enterprise{
		ID:                id,
		Name:              asString(props["name"]),
		City:              asString(props["city"]),
		Products:          asStringList(props["products"]),
		URN:               asString(props["urn"]),
		Mobile:            asString(props["mobile"]),
		Email:             asString(props["email"]),
		EnterpriseType:    asString(props["type"]),
		Activity:          asString(props["activity"]),
		SocialCategory:    asString(props["social_category"]),
		State:             asString(props["state"]),
		Pin:               asString(props["pin"]),
		UnitNames:         asStringList(props["unit_names"]),
		NICCodes:          asStringList(props["nic_5_digit_codes"]),
		NICActivity:       asString(props["nic_activity"]),
		Source:            asString(props["source"]),
		IncorporationDate: asString(props["incorporation_date"]),
		CommencementDate:  asString(props["commencement_date"]),
		RegistrationDate:  asString(props["registration_date"]),
		CategoryCode:      asString(record["category_code"]),
		CategoryName:      asString(record["category_name"]),
	}

	if raw := asString(props["address"]); raw != "" {
		e.Address = RawAddress(raw)
	}

	return e
}

func decodeProvider(id string, record map[string]any) Provider {
	props, _ := record["props"].(map[string]any)

	return Provider{
		ID:             id,
		Name:           asString(props["name"]),
		City:           asString(props["city"]),
		Rating:         asFloat(props["rating"]),
		Capacity:       asInt(props["capacity"]),
		ExportCapable:  asBool(props["export_capable"]),
		Certifications: asStringList(props["certifications"]),
		Languages:      asStringList(props["languages"]),
		PaymentTerms:   asString(props["payment_terms"]),
		Specialization: asString(props["specialization"]),
		Lat:            asFloat(props["lat"]),
		Lon:            asFloat(props["lon"]),
		CategoryCodes:  asStringList(record["category_codes"]),
	}
}

func decodeCategory(record map[string]any) Category {
	props, _ := record["props"].(map[string]any)

	return Category{
		Code:     asString(props["code"]),
		Name:     asString(props["name"]),
		Sector:   asString(props["sector"]),
		Keywords: asStringList(props["keywords"]),
		OndcL1:   asString(props["ondc_l1"]),
		OndcL2:   asString(props["ondc_l2"]),
		OndcL3:   asString(props["ondc_l3"]),
	}
}
