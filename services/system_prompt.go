package services

import (
	"fmt"
	"strings"

	"github/itish2003/eventvendors/models"

	"github.com/tmc/langchaingo/prompts"
)

// GetExtractionSystemPrompt defines the instructions for turning raw vendor text into structured fields.
func GetExtractionSystemPrompt() string {
	return fmt.Sprintf(`You are an expert event planner assistant. Extract structured data from the provided text (which might be raw notes, email copy, or PDF content).
Return ONLY a valid JSON object with the following fields:
- name: string
- category: one of [%s]
- description: string (short summary)
- priceRange: one of [%s]
- location: string (city or address)
- contact: string (email or phone)
- tags: string[] (keywords like "luxury", "boho", "vegan", etc.)

If a field is missing, make a reasonable guess or leave it as "N/A" string.`,
		quoteList(models.CategoryValues()), quoteList(models.PriceRangeValues()))
}

const extractionPromptPrefix = "Extract vendor information from this text: \n\n"

// chatPrompt grounds the user's question in the saved vendor list.
var chatPrompt = prompts.NewPromptTemplate(`You are a helpful event planning assistant. The user asks a question about their saved vendors.

Here is the list of vendors the user has saved:
---
{{.vendors}}
---

User Question: "{{.query}}"

Answer in {{.language}}. Be helpful, specific, and concise. Compare vendors if asked.`,
	[]string{"vendors", "query", "language"})

// VendorContext renders one line per vendor for the chat prompt.
func VendorContext(vendors []models.Vendor) string {
	lines := make([]string, len(vendors))
	for i, v := range vendors {
		lines[i] = fmt.Sprintf("ID: %s, Name: %s, Category: %s, Price: %s, Location: %s, Details: %s",
			v.ID, v.Name, v.Category, v.PriceRange, v.Location, v.Description)
	}
	return strings.Join(lines, "\n")
}

// BuildChatPrompt fills the chat template.
func BuildChatPrompt(query string, vendors []models.Vendor, language string) (string, error) {
	return chatPrompt.Format(map[string]any{
		"vendors":  VendorContext(vendors),
		"query":    query,
		"language": language,
	})
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
