// Package preflight provides readiness checks for the directories, recipe
// cache and optional model endpoint recipechat depends on.
//
// `recipechat config validate` prints every result; `recipechat serve` logs
// failures as warnings and keeps serving, since the deterministic engine
// works without the cache or a model.
//
// Each check is gated by its config toggle -- disabled features are skipped.
package preflight
