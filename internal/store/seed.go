package store

import "context"

// DefaultCategories returns the built-in ONDC taxonomy used to bootstrap an
// empty graph. Pharmaceutical keywords include Hindi terms because northern
// onboarding flows submit Devanagari product lists.
func DefaultCategories() []Category {
	return []Category{
		{Code: "TX001", Name: "Textiles", Sector: "Manufacturing", Keywords: []string{"textile", "fabric", "cotton", "shirt", "uniform"}},
		{Code: "LE001", Name: "Leather Goods", Sector: "Manufacturing", Keywords: []string{"leather", "belt", "wallet", "bag", "footwear"}},
		{Code: "FD001", Name: "Food Processing", Sector: "Processing", Keywords: []string{"food", "snack", "spice", "masala", "dry fruit"}},
		{Code: "AG001", Name: "Agri Products", Sector: "Agriculture", Keywords: []string{"agri", "seed", "grain", "fertilizer", "pulses"}},
		{Code: "HM001", Name: "Handicrafts", Sector: "Crafts", Keywords: []string{"handicraft", "craft", "art", "decor"}},
		{Code: "EL001", Name: "Electronics Components", Sector: "Electronics", Keywords: []string{"electronics", "circuit", "pcb", "component"}},
		{Code: "PH001", Name: "Pharmaceuticals", Sector: "Healthcare", Keywords: []string{"pharma", "pharmaceutical", "pharmaceuticals", "tablet", "tablets", "capsule", "medicine", "drug", "दवा", "दवाई", "टैबलेट", "कैप्सूल", "फार्मा", "फार्मास्यूटिकल", "औषधि"}},
		{Code: "CH001", Name: "Chemicals", Sector: "Manufacturing", Keywords: []string{"chemical", "chemicals", "solvent"}},
		{Code: "PL001", Name: "Plastics", Sector: "Manufacturing", Keywords: []string{"plastic", "polymer", "moulding"}},
		{Code: "MT001", Name: "Metal Works", Sector: "Manufacturing", Keywords: []string{"metal", "steel", "iron", "forging"}},
		{Code: "WO001", Name: "Wood Products", Sector: "Manufacturing", Keywords: []string{"wood", "timber", "plywood"}},
		{Code: "PA001", Name: "Packaging", Sector: "Manufacturing", Keywords: []string{"packaging", "box", "carton", "label"}},
		{Code: "AU001", Name: "Auto Parts", Sector: "Automotive", Keywords: []string{"auto", "automotive", "spare", "parts"}},
		{Code: "RE001", Name: "Renewable Energy", Sector: "Energy", Keywords: []string{"solar", "renewable", "wind", "inverter"}},
		{Code: "CO001", Name: "Construction Materials", Sector: "Construction", Keywords: []string{"construction", "cement", "brick", "tiles"}},
		{Code: "PC001", Name: "Personal Care", Sector: "FMCG", Keywords: []string{"personal care", "cosmetic", "soap", "shampoo"}},
		{Code: "SP001", Name: "Sports Goods", Sector: "Manufacturing", Keywords: []string{"sports", "ball", "bat", "equipment"}},
		{Code: "FU001", Name: "Furniture", Sector: "Manufacturing", Keywords: []string{"furniture", "chair", "table", "sofa"}},
		{Code: "ST001", Name: "Stationery", Sector: "FMCG", Keywords: []string{"stationery", "paper", "notebook", "pen", "pencil", "file"}},
		{Code: "JE001", Name: "Jewelry", Sector: "Manufacturing", Keywords: []string{"jewelry", "gold", "silver", "ornament"}},
	}
}

// DefaultProviders returns the built-in SNP roster used to bootstrap an
// empty graph.
func DefaultProviders() []Provider {
	return []Provider{
		{ID: "SNP001", Name: "TextileHub Bengaluru", City: "Bengaluru", Rating: 0.92, Capacity: 200, Lat: 12.97, Lon: 77.59, CategoryCodes: []string{"TX001", "ST001"}},
		{ID: "SNP002", Name: "LeatherWorks Chennai", City: "Chennai", Rating: 0.95, Capacity: 250, Lat: 13.08, Lon: 80.27, CategoryCodes: []string{"LE001"}},
		{ID: "SNP003", Name: "AgriConnect Pune", City: "Pune", Rating: 0.88, Capacity: 180, Lat: 18.52, Lon: 73.86, CategoryCodes: []string{"AG001", "FD001"}},
		{ID: "SNP004", Name: "CraftLine Jaipur", City: "Jaipur", Rating: 0.86, Capacity: 140, Lat: 26.91, Lon: 75.79, CategoryCodes: []string{"HM001", "JE001"}},
		{ID: "SNP005", Name: "ElectroServe Noida", City: "Noida", Rating: 0.91, Capacity: 220, Lat: 28.53, Lon: 77.39, CategoryCodes: []string{"EL001"}},
		{ID: "SNP006", Name: "PharmaLink Hyderabad", City: "Hyderabad", Rating: 0.93, Capacity: 210, Lat: 17.39, Lon: 78.49, CategoryCodes: []string{"PH001"}},
		{ID: "SNP007", Name: "ChemEdge Ankleshwar", City: "Ankleshwar", Rating: 0.84, Capacity: 160, Lat: 21.62, Lon: 73.00, CategoryCodes: []string{"CH001"}},
		{ID: "SNP008", Name: "PlastoFlex Rajkot", City: "Rajkot", Rating: 0.82, Capacity: 150, Lat: 22.30, Lon: 70.80, CategoryCodes: []string{"PL001"}},
		{ID: "SNP009", Name: "MetalForge Jamshedpur", City: "Jamshedpur", Rating: 0.90, Capacity: 240, Lat: 22.80, Lon: 86.20, CategoryCodes: []string{"MT001", "AU001"}},
		{ID: "SNP010", Name: "WoodCraft Mysuru", City: "Mysuru", Rating: 0.85, Capacity: 130, Lat: 12.30, Lon: 76.65, CategoryCodes: []string{"WO001", "FU001"}},
		{ID: "SNP011", Name: "PackPro Surat", City: "Surat", Rating: 0.87, Capacity: 170, Lat: 21.17, Lon: 72.83, CategoryCodes: []string{"PA001"}},
		{ID: "SNP012", Name: "AutoPart Hub Gurugram", City: "Gurugram", Rating: 0.89, Capacity: 200, Lat: 28.46, Lon: 77.03, CategoryCodes: []string{"AU001"}},
		{ID: "SNP013", Name: "SolarEdge Jaipur", City: "Jaipur", Rating: 0.83, Capacity: 160, Lat: 26.91, Lon: 75.79, CategoryCodes: []string{"RE001"}},
		{ID: "SNP014", Name: "BuildMate Indore", City: "Indore", Rating: 0.86, Capacity: 190, Lat: 22.72, Lon: 75.86, CategoryCodes: []string{"CO001"}},
		{ID: "SNP015", Name: "CarePlus Lucknow", City: "Lucknow", Rating: 0.88, Capacity: 150, Lat: 26.85, Lon: 80.95, CategoryCodes: []string{"PC001"}},
		{ID: "SNP016", Name: "Sportify Meerut", City: "Meerut", Rating: 0.84, Capacity: 140, Lat: 28.98, Lon: 77.70, CategoryCodes: []string{"SP001"}},
		{ID: "SNP017", Name: "FurniCore Kochi", City: "Kochi", Rating: 0.85, Capacity: 165, Lat: 9.93, Lon: 76.26, CategoryCodes: []string{"FU001"}},
		{ID: "SNP018", Name: "StationeryMart Kolkata", City: "Kolkata", Rating: 0.86, Capacity: 155, Lat: 22.57, Lon: 88.36, CategoryCodes: []string{"ST001"}},
		{ID: "SNP019", Name: "JewelCraft Mumbai", City: "Mumbai", Rating: 0.90, Capacity: 175, Lat: 19.07, Lon: 72.88, CategoryCodes: []string{"JE001"}},
		{ID: "SNP020", Name: "FreshFoods Nashik", City: "Nashik", Rating: 0.87, Capacity: 160, Lat: 19.99, Lon: 73.79, CategoryCodes: []string{"FD001"}},
	}
}

// Seed upserts the built-in taxonomy and provider roster. Categories are
// written before providers so SERVES relations find their targets. Safe to
// run repeatedly.
func (s *GraphStore) Seed(ctx context.Context) error {
	categories := DefaultCategories()
	for i := range categories {
		if err := s.SaveCategory(ctx, categories[i]); err != nil {
			return err
		}
	}

	providers := DefaultProviders()
	for i := range providers {
		if err := s.SaveProvider(ctx, providers[i]); err != nil {
			return err
		}
	}

	s.logger.Info("seeded graph", "categories", len(categories), "providers", len(providers))
	return nil
}
