package recipe

import (
	"fmt"
	"strings"
)

// Display joins the present quantity, unit, and name with single spaces.
func (i Ingredient) Display() string {
	parts := make([]string, 0, 3)
	if i.Quantity != "" {
		parts = append(parts, i.Quantity)
	}
	if i.Unit != "" {
		parts = append(parts, i.Unit)
	}
	if i.Name != "" {
		parts = append(parts, i.Name)
	}
	return strings.Join(parts, " ")
}

// String renders the step as "Step N: description".
func (s Step) String() string {
	return fmt.Sprintf("Step %d: %s", s.Number, s.Description)
}

// FormatIngredients renders the ingredient list for chat replies.
func FormatIngredients(ingredients []Ingredient) string {
	if len(ingredients) == 0 {
		return "No ingredients found."
	}
	lines := make([]string, 0, len(ingredients)+1)
	lines = append(lines, "Here are the ingredients:")
	for _, ing := range ingredients {
		lines = append(lines, "- "+ing.Display())
	}
	return strings.Join(lines, "\n")
}

// FormatSteps renders every step, one per line.
func FormatSteps(steps []Step) string {
	if len(steps) == 0 {
		return "No steps found."
	}
	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, "Here are all the steps:")
	lines = append(lines, StepLines(steps)...)
	return strings.Join(lines, "\n")
}

// StepLines renders each step with String.
func StepLines(steps []Step) []string {
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		lines = append(lines, step.String())
	}
	return lines
}
