package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github/itish2003/eventvendors/config"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"
)

// LanguageModel is a hosted model able to answer free text and schema-constrained JSON prompts.
type LanguageModel interface {
	// GenerateJSON returns the raw JSON text produced for prompt under schema.
	GenerateJSON(ctx context.Context, systemPrompt, prompt string, schema *genai.Schema) (string, error)
	// GenerateText returns the model's text reply, which may be empty.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewLanguageModel builds the configured provider. It returns (nil, nil) when the
// provider's API key is missing, so the server can still start and report the
// configuration error per request.
func NewLanguageModel(ctx context.Context, cfg config.LLMConfig) (LanguageModel, error) {
	if cfg.APIKey() == "" {
		log.Printf("WARN: No API key configured for provider '%s'; AI requests will fail.", cfg.Provider)
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
		log.Printf("Using Anthropic model '%s'.", cfg.AnthropicModel)
		return &anthropicModel{client: client, model: cfg.AnthropicModel, maxTokens: cfg.AnthropicMaxTokens}, nil
	default:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		log.Printf("Using Google Gemini model '%s'.", cfg.GeminiModel)
		return &geminiModel{client: client, model: cfg.GeminiModel}, nil
	}
}

type geminiModel struct {
	client *genai.Client
	model  string
}

func (m *geminiModel) GenerateJSON(ctx context.Context, systemPrompt, prompt string, schema *genai.Schema) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.Text(systemPrompt)[0],
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini api call failed: %w", err)
	}
	return result.Text(), nil
}

func (m *geminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini api call failed: %w", err)
	}
	return result.Text(), nil
}

// anthropicModel has no response schema support in this client, so the schema
// is described in the system prompt and the JSON object is cut out of the reply.
type anthropicModel struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func (m *anthropicModel) GenerateJSON(ctx context.Context, systemPrompt, prompt string, schema *genai.Schema) (string, error) {
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode response schema: %w", err)
	}
	system := systemPrompt + "\n\nThe JSON object must match this schema:\n" + string(schemaJSON) +
		"\nOutput ONLY the JSON, no markdown, no explanations."

	text, err := m.send(ctx, system, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	return extractJSON(text)
}

func (m *anthropicModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	return m.send(ctx, "", prompt)
}

func (m *anthropicModel) send(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: m.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}

var errNoJSONObject = errors.New("no JSON object found in response")

// extractJSON finds the outermost JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSONObject
	}
	return s[start : end+1], nil
}
