package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"recipechat/internal/recipe"
)

// StepAnnotationPrompt is the system prompt for step annotation.
const StepAnnotationPrompt = `You annotate cooking instructions.
You receive JSON with "ingredients" (names) and "steps" (step_number, description).
For every step, list the ingredient names from "ingredients" that the step uses, spelled exactly as given,
and the cooking techniques the step asks for as short lowercase verbs (for example "whisk", "fold", "simmer").
Respond with JSON only, in the form:
{"steps":[{"step_number":1,"ingredients":["flour"],"methods":["whisk"]}]}
Return exactly one entry per input step, in order. Use empty arrays when nothing applies.`

type annotationStep struct {
	Number      int      `json:"step_number"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Methods     []string `json:"methods,omitempty"`
}

type annotationPayload struct {
	Ingredients []string         `json:"ingredients,omitempty"`
	Steps       []annotationStep `json:"steps"`
}

// BuildAnnotationInput renders the user prompt for step annotation.
func BuildAnnotationInput(ingredients []recipe.Ingredient, steps []recipe.Step) (string, error) {
	payload := annotationPayload{
		Ingredients: make([]string, 0, len(ingredients)),
		Steps:       make([]annotationStep, 0, len(steps)),
	}
	for _, ing := range ingredients {
		payload.Ingredients = append(payload.Ingredients, ing.Name)
	}
	for i, step := range steps {
		payload.Steps = append(payload.Steps, annotationStep{Number: i + 1, Description: step.Description})
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode annotation input: %w", err)
	}
	return string(encoded), nil
}

// ApplyAnnotations merges a model annotation payload into a copy of steps.
// Ingredient names the model invents are dropped; the remaining ones are
// replaced by the recipe's own spelling.
func ApplyAnnotations(ingredients []recipe.Ingredient, steps []recipe.Step, content string) ([]recipe.Step, error) {
	var payload annotationPayload
	if err := DecodeLLMJSON(content, &payload); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}
	if len(payload.Steps) != len(steps) {
		return nil, fmt.Errorf("annotations cover %d steps, recipe has %d", len(payload.Steps), len(steps))
	}
	out := make([]recipe.Step, len(steps))
	for i, step := range steps {
		ann := payload.Steps[i]
		if ann.Number != 0 && ann.Number != i+1 {
			return nil, fmt.Errorf("annotation %d is numbered %d", i+1, ann.Number)
		}
		step.Ingredients = canonicalIngredients(ingredients, ann.Ingredients)
		step.Methods = normalizeMethods(ann.Methods)
		out[i] = step
	}
	return out, nil
}

// AnnotateSteps asks the model which ingredients and techniques each step uses.
func (c *Client) AnnotateSteps(ctx context.Context, ingredients []recipe.Ingredient, steps []recipe.Step) ([]recipe.Step, error) {
	if len(steps) == 0 {
		return steps, nil
	}
	input, err := BuildAnnotationInput(ingredients, steps)
	if err != nil {
		return nil, err
	}
	content, err := c.CompleteJSON(ctx, StepAnnotationPrompt, input)
	if err != nil {
		return nil, err
	}
	return ApplyAnnotations(ingredients, steps, content)
}

func canonicalIngredients(ingredients []recipe.Ingredient, names []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		ing, ok := recipe.FindIngredient(ingredients, strings.TrimSpace(name))
		if !ok {
			continue
		}
		if _, dup := seen[ing.Name]; dup {
			continue
		}
		seen[ing.Name] = struct{}{}
		out = append(out, ing.Name)
	}
	return out
}

func normalizeMethods(methods []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
