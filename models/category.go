package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the fixed classification of a vendor.
type Category string

const (
	CategoryPhotographer Category = "Photographer"
	CategoryFlorist      Category = "Florist"
	CategoryVenue        Category = "Venue"
	CategoryMakeup       Category = "Makeup"
	CategoryCatering     Category = "Catering"
	CategoryMusic        Category = "Music"
	CategoryOther        Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPhotographer,
	CategoryFlorist,
	CategoryVenue,
	CategoryMakeup,
	CategoryCatering,
	CategoryMusic,
	CategoryOther,
}

// legacyCategories maps the labels stored by the first browser version of the app.
var legacyCategories = map[string]Category{
	"Fotografi":        CategoryPhotographer,
	"Fiorai":           CategoryFlorist,
	"Ville e Castelli": CategoryVenue,
	"Make-up Artists":  CategoryMakeup,
	"Catering & Torte": CategoryCatering,
	"Musica & DJ":      CategoryMusic,
	"Altro":            CategoryOther,
}

// ParseCategory accepts a wire value (case-insensitive) or a legacy label.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	if c, ok := legacyCategories[s]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryValues returns the wire values, used for the model's output schema.
func CategoryValues() []string {
	values := make([]string, len(Categories))
	for i, c := range Categories {
		values[i] = string(c)
	}
	return values
}
