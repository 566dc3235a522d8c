package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	if !strings.Contains(c.Paths.APIBind, ":") {
		return fmt.Errorf("paths.api_bind %q must be host:port", c.Paths.APIBind)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTLHours < 0 {
		return errors.New("cache.ttl_hours must be zero or positive")
	}
	return nil
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case ProviderNone:
		return nil
	case ProviderOpenRouter, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider: unsupported value %q (want none, openrouter or gemini)", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPathTemplate
		}
		env := "OPENROUTER_API_KEY"
		if c.LLM.Provider == ProviderGemini {
			env = "GEMINI_API_KEY"
		}
		return fmt.Errorf("llm.api_key is required for provider %s. Set %s env var or edit %s (create with 'recipechat config init')", c.LLM.Provider, env, defaultPath)
	}
	if c.LLM.Provider == ProviderOpenRouter {
		parsed, err := url.Parse(c.LLM.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("llm.base_url %q is not an absolute URL", c.LLM.BaseURL)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
