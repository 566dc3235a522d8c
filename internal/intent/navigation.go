package intent

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	ingredientsPatterns = compileAll(
		`show\s+ingredients`,
		`list\s+ingredients`,
		`show\s+me\s+the\s+ingredients`,
		`ingredients`,
	)

	recipePatterns = compileAll(
		`show\s+recipe`,
		`show\s+all\s+steps`,
		`display\s+the\s+recipe`,
		`full\s+recipe`,
		`show\s+me\s+the\s+recipe`,
		`display\s+all\s+steps`,
		`display\s+recipe`,
		`whole recipe`,
		`entire recipe`,
		`complete recipe`,
	)

	beginPatterns = compileAll(
		`\bstart recipe\b`,
		`start cooking`,
		`begin recipe`,
		`start the recipe`,
		`start`,
		`walkthrough`,
		`beginning`,
	)

	advancePatterns = compileAll(
		`next step`,
		`next`,
		`\bn\b`,
		`advance`,
		`continue`,
		`what's next`,
		`forward`,
		`move ahead`,
		`proceed`,
		`go forward`,
		`resume`,
	)

	retreatPatterns = compileAll(
		`last step`,
		`go back a step`,
		`^b$`,
		`go back`,
		`back`,
		`previous`,
	)

	repeatPatterns = compileAll(
		`\brepeat\b`,
		`\bsay that again\b`,
		`\bwhat was that\b`,
		`again`,
		`repeat`,
		`say again`,
		`tell me again`,
		`what did you say`,
	)

	stepNumberPattern = regexp.MustCompile(`step\s+(\d+)`)
)

// IsShowIngredients matches requests for the ingredient list.
func IsShowIngredients(q string) bool { return matchAny(ingredientsPatterns, q) }

// IsShowRecipe matches requests for every step at once.
func IsShowRecipe(q string) bool { return matchAny(recipePatterns, q) }

// IsBegin matches requests to start the walkthrough from step 1.
func IsBegin(q string) bool { return matchAny(beginPatterns, q) }

// IsAdvance matches requests for the next step.
func IsAdvance(q string) bool { return matchAny(advancePatterns, q) }

// IsRetreat matches requests for the previous step.
func IsRetreat(q string) bool { return matchAny(retreatPatterns, q) }

// IsRepeat matches requests to hear the current step again.
func IsRepeat(q string) bool { return matchAny(repeatPatterns, q) }

// StepNumber extracts N from "step N" anywhere in the query. Values too large
// for an int saturate so the cursor can clamp them.
func StepNumber(q string) (int, bool) {
	m := stepNumberPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return int(n), true
}
