// Package gemini annotates recipe steps with the Gemini API.
//
// It shares the prompt and the validation of model output with package llm,
// so both providers produce identical step annotations. The response is
// constrained with a JSON schema instead of a free-form JSON mode.
package gemini
