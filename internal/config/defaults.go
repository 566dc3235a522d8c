package config

const (
	defaultStateDir            = "~/.local/share/recipechat"
	defaultLogDir              = "~/.local/share/recipechat/logs"
	defaultAPIBind             = "127.0.0.1:5000"
	defaultFetchUserAgent      = "recipechat/dev (+https://schema.org/Recipe)"
	defaultFetchTimeoutSeconds = 20
	defaultFetchMaxBodyKiB     = 4096
	defaultCacheEnabled        = true
	defaultCacheTTLHours       = 24 * 7
	defaultLLMProvider         = ProviderNone
	defaultOpenRouterBaseURL   = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel     = "google/gemini-3-flash-preview"
	defaultGeminiModel         = "gemini-2.5-flash"
	defaultLLMReferer          = "https://github.com/recipechat/recipechat"
	defaultLLMTitle            = "recipechat step annotator"
	defaultLLMTimeoutSeconds   = 60
	defaultMaxSessions         = 256
	defaultSessionIdleMinutes  = 60
	defaultSessionSweepSeconds = 60
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	cacheFileName              = "recipes.db"
	lockFileName               = "recipechat.lock"
	logFileName                = "recipechat.log"
	defaultConfigPathTemplate  = "~/.config/recipechat/config.toml"
	projectConfigFileName      = "recipechat.toml"
)

// LLM providers accepted in [llm] provider.
const (
	ProviderNone       = "none"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
			APIBind:  defaultAPIBind,
		},
		Fetch: Fetch{
			UserAgent:      defaultFetchUserAgent,
			TimeoutSeconds: defaultFetchTimeoutSeconds,
			MaxBodyKiB:     defaultFetchMaxBodyKiB,
		},
		Cache: Cache{
			Enabled:  defaultCacheEnabled,
			TTLHours: defaultCacheTTLHours,
		},
		LLM: LLM{
			Provider:       defaultLLMProvider,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Sessions: Sessions{
			MaxSessions:          defaultMaxSessions,
			IdleTimeoutMinutes:   defaultSessionIdleMinutes,
			SweepIntervalSeconds: defaultSessionSweepSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
