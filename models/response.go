package models

// ExtractionResponse holds the vendor fields read out of unstructured text.
// It is never persisted.
type ExtractionResponse struct {
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	PriceRange  PriceRange `json:"priceRange"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Tags        []string   `json:"tags"`
}

// FileExtractionResponse is returned for uploaded documents; Details is the text read from the file.
type FileExtractionResponse struct {
	ExtractionResponse
	Details string `json:"details"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

type CategoryCountsResponse struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
}

type VendorListResponse struct {
	Count   int      `json:"count"`
	Vendors []Vendor `json:"vendors"`
}
