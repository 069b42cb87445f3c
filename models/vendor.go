package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every error returned from Vendor.Validate.
var ErrValidation = errors.New("validation error")

// Vendor is a saved supplier record.
type Vendor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	PriceRange  PriceRange `json:"priceRange"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Details     string     `json:"details"`
	Website     string     `json:"website,omitempty"`
	Tags        []string   `json:"tags"`
	// CreatedAt is a Unix timestamp in milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// VendorInput carries the editable fields of a vendor.
type VendorInput struct {
	Name        string     `json:"name" binding:"required"`
	Category    Category   `json:"category" binding:"required"`
	Description string     `json:"description"`
	PriceRange  PriceRange `json:"priceRange" binding:"required"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Details     string     `json:"details"`
	Website     string     `json:"website,omitempty"`
	Tags        []string   `json:"tags"`
}

// Validate runs the required-field and enum checks.
func (in VendorInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if !in.PriceRange.Valid() {
		return fmt.Errorf("%w: unknown price range %q", ErrValidation, in.PriceRange)
	}
	return nil
}

// Apply returns v with every editable field replaced by in. ID and CreatedAt are kept.
func (v Vendor) Apply(in VendorInput) Vendor {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Vendor{
		ID:          v.ID,
		CreatedAt:   v.CreatedAt,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		PriceRange:  in.PriceRange,
		Location:    in.Location,
		Contact:     in.Contact,
		Details:     in.Details,
		Website:     in.Website,
		Tags:        tags,
	}
}

// Input extracts the editable fields of v.
func (v Vendor) Input() VendorInput {
	return VendorInput{
		Name:        v.Name,
		Category:    v.Category,
		Description: v.Description,
		PriceRange:  v.PriceRange,
		Location:    v.Location,
		Contact:     v.Contact,
		Details:     v.Details,
		Website:     v.Website,
		Tags:        v.Tags,
	}
}
