package config

import (
	"fmt"
	"time"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Store   StoreConfig   `yaml:"store"`
	Client  ClientConfig  `yaml:"client"`
	Extract ExtractConfig `yaml:"extract"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LLMConfig selects and configures the hosted language model.
// An empty key for the selected provider is not a startup error: AI requests fail instead.
type LLMConfig struct {
	Provider           string `yaml:"provider"             env:"LLM_PROVIDER"         env-default:"gemini"`
	GeminiAPIKey       string `yaml:"gemini_api_key"       env:"GEMINI_API_KEY"`
	GeminiModel        string `yaml:"gemini_model"         env:"GEMINI_MODEL"         env-default:"gemini-2.5-flash"`
	AnthropicAPIKey    string `yaml:"anthropic_api_key"    env:"ANTHROPIC_API_KEY"`
	AnthropicModel     string `yaml:"anthropic_model"      env:"ANTHROPIC_MODEL"      env-default:"claude-sonnet-4-5"`
	AnthropicMaxTokens int64  `yaml:"anthropic_max_tokens" env:"ANTHROPIC_MAX_TOKENS" env-default:"2048"`
	ChatLanguage       string `yaml:"chat_language"        env:"CHAT_LANGUAGE"        env-default:"English"`
}

// StoreConfig locates the local key-value storage holding the vendor collection.
type StoreConfig struct {
	Dir   string `yaml:"dir"   env:"STORE_DIR"   env-default:"./data"`
	Key   string `yaml:"key"   env:"STORE_KEY"   env-default:"event_vendors"`
	Watch bool   `yaml:"watch" env:"STORE_WATCH" env-default:"true"`
}

// ClientConfig configures the UI's client for the AI endpoints.
// An empty BackendURL means the server's own address.
type ClientConfig struct {
	BackendURL string `yaml:"backend_url" env:"AI_BACKEND_URL"`
}

// ExtractConfig limits the text sent for extraction and configures document import.
type ExtractConfig struct {
	MaxChars         int    `yaml:"max_chars"          env:"EXTRACT_MAX_CHARS"   env-default:"20000"`
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"   env:"MAX_UPLOAD_BYTES"    env-default:"10485760"`
	UnidocLicenseKey string `yaml:"unidoc_license_key" env:"UNIDOC_LICENSE_KEY"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIKey returns the credential of the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}

// ResolveBackendURL returns BackendURL, or the loopback address of the server when unset.
func (c Config) ResolveBackendURL() string {
	if c.Client.BackendURL != "" {
		return c.Client.BackendURL
	}
	return fmt.Sprintf("http://127.0.0.1:%d", c.Server.Port)
}
