package web

import (
	"strings"

	"github/itish2003/eventvendors/models"
)

// categoryDisplay is how a category is presented on the dashboard and in forms.
type categoryDisplay struct {
	Label string
	Icon  string
	Color string
}

// displayFor maps every category to its label, icon and card color.
func displayFor(c models.Category) categoryDisplay {
	switch c {
	case models.CategoryPhotographer:
		return categoryDisplay{Label: "Photographers", Icon: "📷", Color: "blue"}
	case models.CategoryFlorist:
		return categoryDisplay{Label: "Florists", Icon: "💐", Color: "pink"}
	case models.CategoryVenue:
		return categoryDisplay{Label: "Villas & Castles", Icon: "🏰", Color: "amber"}
	case models.CategoryMakeup:
		return categoryDisplay{Label: "Make-up Artists", Icon: "🎨", Color: "purple"}
	case models.CategoryCatering:
		return categoryDisplay{Label: "Catering & Cakes", Icon: "🍽️", Color: "orange"}
	case models.CategoryMusic:
		return categoryDisplay{Label: "Music & DJ", Icon: "🎵", Color: "indigo"}
	case models.CategoryOther:
		return categoryDisplay{Label: "Other", Icon: "📁", Color: "slate"}
	default:
		return categoryDisplay{Label: string(c), Icon: "📁", Color: "slate"}
	}
}

// parseTags splits a comma separated list, dropping blanks.
func parseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
