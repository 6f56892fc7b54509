package domain

// Product represents a single catalog entry loaded from a price list upload.
// Products are immutable after creation; an upload replaces the whole catalog.
type Product struct {
	ID                    string `json:"id"`
	Brand                 string `json:"brand"`
	Code                  string `json:"code"`
	Description           string `json:"description"`
	Price                 string `json:"price"` // opaque, never parsed
	NormalizedDescription string `json:"normalizedDescription"`
	UploadedAt            string `json:"uploadedAt"`
}

// Row is a raw spreadsheet row before it becomes a Product.
type Row struct {
	Brand       string
	Code        string
	Description string
	Price       string
}

// Complete reports whether the row carries all four required fields.
func (r Row) Complete() bool {
	return r.Brand != "" && r.Code != "" && r.Description != "" && r.Price != ""
}

// ScoredProduct pairs a product with its relevance score for one query.
type ScoredProduct struct {
	Product        Product `json:"product"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// SearchResponse is the full result set for a search query.
type SearchResponse struct {
	Results    []ScoredProduct `json:"results"`
	TotalCount int             `json:"totalCount"`
	Query      string          `json:"query"` // echoed back verbatim
}

// UploadResult summarizes a catalog replacement.
type UploadResult struct {
	Message      string `json:"message"`
	ProductCount int    `json:"productsCount"`
	UploadedAt   string `json:"uploadDate"`
}
