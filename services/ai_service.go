package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github/itish2003/eventvendors/models"

	"github.com/tmc/langchaingo/textsplitter"
)

var (
	// ErrMissingCredential means no API key is configured for the language model.
	ErrMissingCredential = errors.New("missing API key")
	// ErrNoContent means the model answered without any text.
	ErrNoContent = errors.New("no content generated")
	// ErrMalformedOutput means the model's answer is not the expected JSON object.
	ErrMalformedOutput = errors.New("malformed model output")
)

// ChatFallbackAnswer is returned when the model produces no text for a chat question.
const ChatFallbackAnswer = "I couldn't find a specific answer."

// AIService talks to the hosted language model on behalf of the HTTP endpoints.
type AIService interface {
	ExtractVendor(c context.Context, text string) (*models.ExtractionResponse, error)
	ChatWithVendors(c context.Context, query string, vendors []models.Vendor) (string, error)
}

// aiServiceImpl holds the dependencies it needs to do its job
type aiServiceImpl struct {
	model        LanguageModel
	chatLanguage string
	maxChars     int
}

// NewAIService creates a new AI service. A nil model makes every call fail with ErrMissingCredential.
func NewAIService(model LanguageModel, chatLanguage string, maxExtractChars int) AIService {
	if chatLanguage == "" {
		chatLanguage = "English"
	}
	return &aiServiceImpl{
		model:        model,
		chatLanguage: chatLanguage,
		maxChars:     maxExtractChars,
	}
}

// rawExtraction is the model's answer before the enums are checked.
type rawExtraction struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PriceRange  string   `json:"priceRange"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	Tags        []string `json:"tags"`
}

// ExtractVendor implements AIService
func (s *aiServiceImpl) ExtractVendor(c context.Context, text string) (*models.ExtractionResponse, error) {
	if s.model == nil {
		return nil, ErrMissingCredential
	}

	text = s.trimForExtraction(text)
	log.Printf("SERVICE: Extracting vendor from %d characters of text", len(text))

	output, err := s.model.GenerateJSON(c, GetExtractionSystemPrompt(), extractionPromptPrefix+text, GetExtractionSchema())
	if err != nil {
		return nil, fmt.Errorf("could not generate extraction: %w", err)
	}
	if strings.TrimSpace(output) == "" {
		return nil, ErrNoContent
	}

	trimmed := strings.TrimSpace(output)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedOutput)
	}
	var raw rawExtraction
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	return normalizeExtraction(raw), nil
}

// normalizeExtraction maps values outside the enums to Other and the default price tier.
func normalizeExtraction(raw rawExtraction) *models.ExtractionResponse {
	category, err := models.ParseCategory(raw.Category)
	if err != nil {
		log.Printf("SERVICE: Model returned %v, using '%s'", err, models.CategoryOther)
		category = models.CategoryOther
	}
	price, err := models.ParsePriceRange(strings.TrimSpace(raw.PriceRange))
	if err != nil {
		log.Printf("SERVICE: Model returned %v, using '%s'", err, models.DefaultPriceRange)
		price = models.DefaultPriceRange
	}
	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.ExtractionResponse{
		Name:        raw.Name,
		Category:    category,
		Description: raw.Description,
		PriceRange:  price,
		Location:    raw.Location,
		Contact:     raw.Contact,
		Tags:        tags,
	}
}

// ChatWithVendors implements AIService
func (s *aiServiceImpl) ChatWithVendors(c context.Context, query string, vendors []models.Vendor) (string, error) {
	if s.model == nil {
		return "", ErrMissingCredential
	}
	log.Printf("SERVICE: Answering '%s' over %d vendors", query, len(vendors))

	prompt, err := BuildChatPrompt(query, vendors, s.chatLanguage)
	if err != nil {
		return "", fmt.Errorf("could not build chat prompt: %w", err)
	}

	answer, err := s.model.GenerateText(c, prompt)
	if err != nil {
		return "", fmt.Errorf("could not generate chat answer: %w", err)
	}
	if strings.TrimSpace(answer) == "" {
		return ChatFallbackAnswer, nil
	}
	return answer, nil
}

// trimForExtraction keeps the leading chunks of a long document up to maxChars.
func (s *aiServiceImpl) trimForExtraction(text string) string {
	if s.maxChars <= 0 || len(text) <= s.maxChars {
		return text
	}

	chunkSize := min(1000, s.maxChars)
	splitter := textsplitter.NewRecursiveCharacter(textsplitter.WithChunkSize(chunkSize), textsplitter.WithChunkOverlap(0))
	chunks, err := splitter.SplitText(text)
	if err != nil {
		log.Printf("SERVICE WARN: Could not split long text, cutting it: %v", err)
		return truncate(text, s.maxChars)
	}

	var kept []string
	size := 0
	for _, chunk := range chunks {
		if size+len(chunk)+2 > s.maxChars {
			break
		}
		kept = append(kept, chunk)
		size += len(chunk) + 2
	}
	if len(kept) == 0 {
		return truncate(text, s.maxChars)
	}
	log.Printf("SERVICE: Text too long, kept %d of %d chunks", len(kept), len(chunks))
	return strings.Join(kept, "\n\n")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
