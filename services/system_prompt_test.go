package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/eventvendors/models"
)

func TestGetExtractionSystemPrompt_ListsEnums(t *testing.T) {
	prompt := GetExtractionSystemPrompt()

	for _, c := range models.CategoryValues() {
		assert.Contains(t, prompt, `"`+c+`"`)
	}
	assert.Contains(t, prompt, `"$$$$"`)
}

func TestVendorContext_Empty(t *testing.T) {
	assert.Equal(t, "", VendorContext(nil))
}

func TestBuildChatPrompt_NoVendors(t *testing.T) {
	prompt, err := BuildChatPrompt("Which venue is cheapest", nil, "English")
	require.NoError(t, err)
	assert.Contains(t, prompt, "---\n\n---")
	assert.Contains(t, prompt, `User Question: "Which venue is cheapest"`)
	assert.Contains(t, prompt, "Answer in English.")
}
