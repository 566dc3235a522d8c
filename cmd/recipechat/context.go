package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"recipechat/internal/api"
	"recipechat/internal/config"
	"recipechat/internal/logging"
	"recipechat/internal/recipecache"
	"recipechat/internal/scrape"
	"recipechat/internal/services"
	"recipechat/internal/services/gemini"
	"recipechat/internal/services/llm"
	"recipechat/internal/session"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = level
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the process logger from config.
func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// runtime bundles the collaborators a command needs to answer questions.
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	cache   *recipecache.Store
	service *api.Service
}

func (r *runtime) Close() error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Close()
}

// openRuntime wires parser, annotator, cache and sessions from config. The
// cache is skipped when disabled.
func (c *commandContext) openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.newLogger()
	if err != nil {
		return nil, err
	}

	annotator, err := newAnnotator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	parser := scrape.New(scrape.Options{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        cfg.FetchTimeout(),
		MaxBodySize:    cfg.FetchMaxBodyBytes(),
		AllowedDomains: cfg.Fetch.AllowedDomains,
		Annotator:      annotator,
		Logger:         logger,
	})

	rt := &runtime{cfg: cfg, logger: logger}
	var cache api.RecipeCache
	store, err := recipecache.Open(cfg)
	switch {
	case err == nil:
		rt.cache = store
		cache = store
	case errors.Is(err, services.ErrConfiguration):
		logger.Debug("recipe cache disabled")
	default:
		return nil, fmt.Errorf("open recipe cache: %w", err)
	}

	sessions := session.NewManager(session.Options{
		MaxSessions: cfg.Sessions.MaxSessions,
		IdleTimeout: cfg.SessionIdleTimeout(),
		Logger:      logger,
	})
	rt.service = api.NewService(parser, cache, sessions, logger)
	return rt, nil
}

// newAnnotator returns the model-backed step annotator selected by
// [llm] provider, or nil when none is configured.
func newAnnotator(ctx context.Context, cfg *config.Config) (scrape.Annotator, error) {
	if !cfg.LLMEnabled() {
		return nil, nil
	}
	settings := cfg.GetLLM()
	switch settings.Provider {
	case config.ProviderOpenRouter:
		return llm.NewClient(llm.Config{
			APIKey:         settings.APIKey,
			BaseURL:        settings.BaseURL,
			Model:          settings.Model,
			Referer:        settings.Referer,
			Title:          settings.Title,
			TimeoutSeconds: settings.TimeoutSeconds,
		}), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:         settings.APIKey,
			Model:          settings.Model,
			BaseURL:        settings.BaseURL,
			TimeoutSeconds: settings.TimeoutSeconds,
		})
		if err != nil {
			return nil, fmt.Errorf("init gemini annotator: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", settings.Provider)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
