// Package llm provides an OpenRouter chat client used to annotate recipe steps.
//
// The parser asks the model which listed ingredients and which cooking
// techniques each step references, so "how much do I need?" and "how?" can be
// answered for the current step. The request carries the ingredient names and
// numbered step descriptions; the model answers with JSON that ApplyAnnotations
// validates against the recipe before anything is trusted.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.CompleteJSON: send system/user prompts, receive JSON response.
// Client.AnnotateSteps: step annotation for the recipe parser.
// Client.HealthCheck: verify API key and model availability.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors, empty completions and
// network timeouts with exponential backoff (base 1s, max 10s, up to 5
// attempts by default). Context cancellation aborts retries immediately.
//
// # Fallback
//
// Callers fall back to keyword annotation when the model is unavailable or
// answers with something that does not fit the recipe.
package llm
