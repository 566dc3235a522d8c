package preflight

import (
	"context"

	"recipechat/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	if cfg.Cache.Enabled {
		results = append(results, CheckCache(ctx, cfg))
	}

	if cfg.LLMEnabled() {
		settings := cfg.GetLLM()
		switch settings.Provider {
		case config.ProviderOpenRouter:
			results = append(results, CheckLLM(ctx, "Step annotation LLM", settings))
		case config.ProviderGemini:
			results = append(results, CheckGemini(settings))
		}
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
