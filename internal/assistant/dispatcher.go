package assistant

import (
	"errors"
	"fmt"

	"recipechat/internal/intent"
	"recipechat/internal/navigation"
	"recipechat/internal/recipe"
)

// ErrEmptyQuery is returned for blank queries.
var ErrEmptyQuery = errors.New("query is empty")

// Reply is the answer to one query.
type Reply struct {
	Intent intent.Kind `json:"intent"`
	Text   string      `json:"response"`
}

// turn carries one query through the rule chain.
type turn struct {
	recipe *recipe.Recipe
	cursor *navigation.Cursor
	query  string
}

// handler returns ok=false to decline the query.
type handler func(t *turn) (text string, ok bool, err error)

type rule struct {
	kind   intent.Kind
	match  func(q string) bool
	handle handler
}

var rules = []rule{
	{intent.KindShowIngredients, intent.IsShowIngredients, showIngredients},
	{intent.KindShowRecipe, intent.IsShowRecipe, showRecipe},
	{intent.KindBegin, intent.IsBegin, begin},
	{intent.KindAdvance, intent.IsAdvance, advance},
	{intent.KindRetreat, intent.IsRetreat, retreat},
	{intent.KindJumpToStep, hasStepNumber, jumpToStep},
	{intent.KindRepeat, intent.IsRepeat, repeatStep},
	{intent.KindHowMuch, intent.IsHowMuch, howMuch},
	{intent.KindWhatIs, intent.IsWhatIs, whatIs},
	{intent.KindHowDoI, intent.IsHow, howDoI},
	{intent.KindTemperature, intent.MentionsTemperature, cookingTemperature},
	{intent.KindTime, intent.MentionsTime, cookingTime},
	{intent.KindSubstitution, isSubstitution, substitution},
}

// Respond classifies query against r and c and returns the reply of the first
// rule that accepts it, moving c when the query navigates. A nil recipe is
// treated as one with no ingredients and no steps.
//
// The only errors are ErrEmptyQuery and recipe.ErrEmptyRecipe, the latter when
// the chosen rule needs the current step and the recipe has none.
func Respond(r *recipe.Recipe, c *navigation.Cursor, query string) (Reply, error) {
	q := intent.Normalize(query)
	if q == "" {
		return Reply{}, ErrEmptyQuery
	}
	if r == nil {
		r = &recipe.Recipe{}
	}
	if c == nil {
		c = navigation.New(r)
	}
	t := &turn{recipe: r, cursor: c, query: q}
	for _, rl := range rules {
		if !rl.match(q) {
			continue
		}
		text, ok, err := rl.handle(t)
		if err != nil {
			return Reply{Intent: rl.kind}, fmt.Errorf("%s: %w", rl.kind, err)
		}
		if ok {
			return Reply{Intent: rl.kind, Text: text}, nil
		}
	}
	return Reply{Intent: intent.KindFallback, Text: FallbackText}, nil
}

func hasStepNumber(q string) bool {
	_, ok := intent.StepNumber(q)
	return ok
}

func isSubstitution(q string) bool {
	_, ok := intent.SubstitutionTarget(q)
	return ok
}
