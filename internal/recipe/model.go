package recipe

import (
	"fmt"
	"strings"
)

// Ingredient is one line of the recipe's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"measurement_unit,omitempty"`
}

// Step is a single numbered instruction.
type Step struct {
	Number      int      `json:"step_number"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients,omitempty"`
	Methods     []string `json:"methods,omitempty"`
}

// Recipe is the loaded recipe. Callers must treat it as read-only; a new
// parse produces a new Recipe instead of mutating an existing one.
type Recipe struct {
	Title       string       `json:"title,omitempty"`
	SourceURL   string       `json:"source_url,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}

// Option customizes a recipe during Load.
type Option func(*Recipe)

// WithTitle records the human-readable recipe title.
func WithTitle(title string) Option {
	return func(r *Recipe) {
		r.Title = strings.TrimSpace(title)
	}
}

// WithSourceURL records the page the recipe was parsed from.
func WithSourceURL(url string) Option {
	return func(r *Recipe) {
		r.SourceURL = strings.TrimSpace(url)
	}
}

// Load builds a Recipe from parsed ingredients and steps. Both slices are
// copied. Steps without a number are numbered by position; explicit numbers
// must already be contiguous from 1.
func Load(ingredients []Ingredient, steps []Step, opts ...Option) (*Recipe, error) {
	r := &Recipe{
		Ingredients: make([]Ingredient, 0, len(ingredients)),
		Steps:       make([]Step, 0, len(steps)),
	}
	for i, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: ingredient %d has no name", ErrInvalidRecipe, i+1)
		}
		r.Ingredients = append(r.Ingredients, Ingredient{
			Name:     name,
			Quantity: strings.TrimSpace(ing.Quantity),
			Unit:     strings.TrimSpace(ing.Unit),
		})
	}
	for i, step := range steps {
		number := step.Number
		if number == 0 {
			number = i + 1
		}
		if number != i+1 {
			return nil, fmt.Errorf("%w: step at position %d is numbered %d", ErrInvalidRecipe, i+1, step.Number)
		}
		r.Steps = append(r.Steps, Step{
			Number:      number,
			Description: strings.TrimSpace(step.Description),
			Ingredients: cloneStrings(step.Ingredients),
			Methods:     cloneStrings(step.Methods),
		})
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// StepCount returns the number of steps.
func (r *Recipe) StepCount() int {
	if r == nil {
		return 0
	}
	return len(r.Steps)
}

// IngredientCount returns the number of ingredients.
func (r *Recipe) IngredientCount() int {
	if r == nil {
		return 0
	}
	return len(r.Ingredients)
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
