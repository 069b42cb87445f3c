package models

type ExtractRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Query string `json:"query"`
	// Vendors stays nil when the field is absent, which the handler rejects.
	Vendors []ChatVendor `json:"vendors"`
}

// NewChatRequest wraps saved vendors for the chat endpoint.
func NewChatRequest(query string, vendors []Vendor) ChatRequest {
	chatVendors := make([]ChatVendor, len(vendors))
	for i, v := range vendors {
		chatVendors[i] = ChatVendor{
			ID:          v.ID,
			Name:        v.Name,
			Category:    string(v.Category),
			Description: v.Description,
			PriceRange:  string(v.PriceRange),
			Location:    v.Location,
			Contact:     v.Contact,
			Details:     v.Details,
			Website:     v.Website,
			Tags:        v.Tags,
			CreatedAt:   v.CreatedAt,
		}
	}
	return ChatRequest{Query: query, Vendors: chatVendors}
}

// VendorList returns the chat vendors as Vendor values. Known category and price
// labels are normalized, anything else is passed through unchanged.
func (r ChatRequest) VendorList() []Vendor {
	if r.Vendors == nil {
		return nil
	}
	vendors := make([]Vendor, len(r.Vendors))
	for i, v := range r.Vendors {
		vendors[i] = v.Vendor()
	}
	return vendors
}

// ChatVendor is a vendor as sent for chat context. Unlike Vendor it decodes
// any category and price text, since the list only grounds the prompt.
type ChatVendor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PriceRange  string   `json:"priceRange"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	Details     string   `json:"details"`
	Website     string   `json:"website,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"createdAt"`
}

func (v ChatVendor) Vendor() Vendor {
	category := Category(v.Category)
	if parsed, err := ParseCategory(v.Category); err == nil {
		category = parsed
	}
	price := PriceRange(v.PriceRange)
	if parsed, err := ParsePriceRange(v.PriceRange); err == nil {
		price = parsed
	}
	return Vendor{
		ID:          v.ID,
		Name:        v.Name,
		Category:    category,
		Description: v.Description,
		PriceRange:  price,
		Location:    v.Location,
		Contact:     v.Contact,
		Details:     v.Details,
		Website:     v.Website,
		Tags:        v.Tags,
		CreatedAt:   v.CreatedAt,
	}
}
