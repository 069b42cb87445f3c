package services

import (
	"strings"

	"github/itish2003/eventvendors/models"
)

// CategoryCounts counts vendors per category. Categories without vendors are absent.
func CategoryCounts(vendors []models.Vendor) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, v := range vendors {
		counts[v.Category]++
	}
	return counts
}

// DisplayedVendors filters by the selected category (when set) and then by a case-insensitive
// query over name, location and tags (when non-empty). The query is used as given, whitespace
// included. Source order is kept.
func DisplayedVendors(vendors []models.Vendor, selected *models.Category, query string) []models.Vendor {
	q := strings.ToLower(query)

	filtered := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if selected != nil && v.Category != *selected {
			continue
		}
		if q != "" && !matchesQuery(v, q) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

func matchesQuery(v models.Vendor, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) || strings.Contains(strings.ToLower(v.Location), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
