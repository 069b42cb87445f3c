package models

import (
	"encoding/json"
	"fmt"
)

// PriceRange is one of four ordered price tiers.
type PriceRange string

const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PriceLuxury    PriceRange = "$$$$"
)

// PriceRanges lists the tiers from cheapest to most expensive.
var PriceRanges = []PriceRange{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

// DefaultPriceRange is preselected in the vendor form.
const DefaultPriceRange = PriceModerate

func ParsePriceRange(s string) (PriceRange, error) {
	for _, p := range PriceRanges {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown price range %q", s)
}

// Level returns 1 for the cheapest tier up to 4, or 0 for an invalid value.
func (p PriceRange) Level() int {
	for i, known := range PriceRanges {
		if p == known {
			return i + 1
		}
	}
	return 0
}

func (p PriceRange) Valid() bool { return p.Level() > 0 }

func (p *PriceRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriceRange(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func PriceRangeValues() []string {
	values := make([]string, len(PriceRanges))
	for i, p := range PriceRanges {
		values[i] = string(p)
	}
	return values
}
