package services

import (
	"github/itish2003/eventvendors/models"

	"google.golang.org/genai"
)

// GetExtractionSchema declares the JSON object the model must return for vendor extraction.
func GetExtractionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {Type: genai.TypeString},
			"category": {
				Type: genai.TypeString,
				Enum: models.CategoryValues(),
			},
			"description": {
				Type:        genai.TypeString,
				Description: "Short summary of the vendor.",
			},
			"priceRange": {
				Type: genai.TypeString,
				Enum: models.PriceRangeValues(),
			},
			"location": {
				Type:        genai.TypeString,
				Description: "City or address.",
			},
			"contact": {
				Type:        genai.TypeString,
				Description: "Email or phone.",
			},
			"tags": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"name", "category", "description", "priceRange", "location"},
	}
}
