package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded configuration for values the application cannot run with.
func (c *Config) Validate() error {
	var errs []error

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("llm.provider: unsupported provider %q", c.LLM.Provider))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: must be in 1..65535, got %d", c.Server.Port))
	}
	if c.LLM.AnthropicMaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.anthropic_max_tokens: must be positive"))
	}
	if c.Extract.MaxChars <= 0 {
		errs = append(errs, fmt.Errorf("extract.max_chars: must be positive"))
	}
	if c.Extract.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("extract.max_upload_bytes: must be positive"))
	}
	if strings.TrimSpace(c.Store.Dir) == "" {
		errs = append(errs, fmt.Errorf("store.dir: required"))
	}
	if strings.TrimSpace(c.Store.Key) == "" || strings.ContainsAny(c.Store.Key, `/\`) {
		errs = append(errs, fmt.Errorf("store.key: must be a plain name, got %q", c.Store.Key))
	}

	return errors.Join(errs...)
}
