package store

// Enterprise is a registered Micro/Small Enterprise (MSE) node.
// Identity is the caller-assigned ID; saves are idempotent upserts keyed by it.
type Enterprise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Products []string `json:"products"`

	// Registration metadata captured during onboarding. All optional.
	URN            string   `json:"urn,omitempty"`
	Mobile         string   `json:"mobile,omitempty"`
	Email          string   `json:"email,omitempty"`
	EnterpriseType string   `json:"type,omitempty"`
	Activity       string   `json:"activity,omitempty"`
	SocialCategory string   `json:"social_category,omitempty"`
	State          string   `json:"state,omitempty"`
	Pin            string   `json:"pin,omitempty"`
	Address        Address  `json:"address,omitempty"`
	UnitNames      []string `json:"unit_names,omitempty"`
	NICCodes       []string `json:"nic_5_digit_codes,omitempty"`
	NICActivity    string   `json:"nic_activity,omitempty"`
	Source         string   `json:"source,omitempty"`

	IncorporationDate string `json:"incorporation_date,omitempty"`
	CommencementDate  string `json:"commencement_date,omitempty"`
	RegistrationDate  string `json:"registration_date,omitempty"`

	// CategoryCode and CategoryName describe the single OFFERS relation.
	// An enterprise holds at most one category at any time.
	CategoryCode string `json:"category_code,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// Provider is a Seller Network Participant (SNP) node.
type Provider struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Rating         float64  `json:"rating"`
	Capacity       int      `json:"capacity"`
	ExportCapable  bool     `json:"export_capable"`
	Certifications []string `json:"certifications,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	PaymentTerms   string   `json:"payment_terms,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	Lat            float64  `json:"lat,omitempty"`
	Lon            float64  `json:"lon,omitempty"`

	// CategoryCodes lists the SERVES relations. Rebuilt wholesale on save.
	CategoryCodes []string `json:"category_codes,omitempty"`
}

// Category is an ONDC taxonomy node. Keywords drive the classifier and may
// span scripts (English and Hindi terms).
type Category struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Sector   string   `json:"sector"`
	Keywords []string `json:"keywords,omitempty"`

	// Optional three-level ONDC taxonomy path.
	OndcL1 string `json:"ondc_l1,omitempty"`
	OndcL2 string `json:"ondc_l2,omitempty"`
	OndcL3 string `json:"ondc_l3,omitempty"`
}

// Analytics summarizes the graph for dashboard consumers.
type Analytics struct {
	TotalEnterprises   int     `json:"total_mses"`
	TotalProviders     int     `json:"total_snps"`
	TotalCategories    int     `json:"total_categories"`
	TotalCapacity      int     `json:"total_capacity"`
	AvgRating          float64 `json:"avg_rating"`
	ExportProviders    int     `json:"export_capable_snps"`
	UniqueCities       int     `json:"unique_cities"`
	TotalRelationships int     `json:"total_relationships"`
}
