package documents

// CatalogItem is one slot in the fixed intake document list. The catalog is
// ordered and item ids are stable across sessions.
type CatalogItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

var Catalog = []CatalogItem{
	{
		ID:          "app_form",
		Title:       "Completed Application Form",
		Description: "PDF/JPG - Download template if needed",
		Required:    true,
	},
	{
		ID:          "passport",
		Title:       "Passport & Residence Copy",
		Description: "Front + visa page",
		Required:    true,
	},
	{
		ID:          "emirates_id",
		Title:       "Emirates ID Copy",
		Description: "Front & back (Valid)",
		Required:    true,
	},
	{
		ID:          "medical_report",
		Title:       "Medical Report",
		Description: "Hospital/ENT report (≤6 months)",
		Required:    true,
	},
	{
		ID:          "insurance_card",
		Title:       "Insurance Card Copy",
		Description: "If available",
		Required:    false,
	},
	{
		ID:          "no_insurance",
		Title:       "Proof of No Insurance Coverage",
		Description: "Optional if not insured",
		Required:    false,
	},
	{
		ID:          "salary_cert",
		Title:       "Salary Certificate",
		Description: "Employer stamped",
		Required:    true,
	},
	{
		ID:          "bank_statement",
		Title:       "Bank Statement",
		Description: "6 months history",
		Required:    true,
	},
	{
		ID:          "tenancy_contract",
		Title:       "Tenancy Contract",
		Description: "EJARI / standard lease",
		Required:    true,
	},
}

// CatalogItemByID looks a slot up by its stable id.
func CatalogItemByID(id string) (CatalogItem, bool) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, true
		}
	}
	return CatalogItem{}, false
}
