package scrape

import (
	"context"
	"slices"
	"strings"
	"unicode"

	"recipechat/internal/intent"
	"recipechat/internal/recipe"
)

// preparationMethods extends the heat-based cooking verbs with common
// preparation techniques.
var preparationMethods = []string{
	"preheat", "whisk", "stir", "fold", "beat", "mix", "combine", "knead", "chop",
	"dice", "mince", "slice", "grate", "peel", "zest", "season", "marinate",
	"drain", "rinse", "strain", "melt", "cream", "sift", "blend", "puree",
	"toss", "brush", "spread", "roll", "flip", "baste", "chill", "freeze",
	"rest", "cool", "garnish", "serve", "pour", "shred", "crush", "mash",
}

var methodLexicon = buildLexicon()

func buildLexicon() map[string]struct{} {
	lex := make(map[string]struct{}, len(intent.CookingActions)+len(preparationMethods))
	for _, m := range intent.CookingActions {
		lex[m] = struct{}{}
	}
	for _, m := range preparationMethods {
		lex[m] = struct{}{}
	}
	return lex
}

// KeywordAnnotator annotates steps by matching ingredient names and a
// lexicon of cooking verbs against each step description.
type KeywordAnnotator struct{}

// AnnotateSteps never fails. Steps that already carry annotations keep them.
func (KeywordAnnotator) AnnotateSteps(_ context.Context, ingredients []recipe.Ingredient, steps []recipe.Step) ([]recipe.Step, error) {
	out := make([]recipe.Step, len(steps))
	for i, step := range steps {
		if len(step.Ingredients) == 0 {
			step.Ingredients = stepIngredients(ingredients, step.Description)
		}
		if len(step.Methods) == 0 {
			step.Methods = stepMethods(step.Description)
		}
		out[i] = step
	}
	return out, nil
}

// stepIngredients returns, in ingredient-list order, the names whose full
// text or head noun appears in the description.
func stepIngredients(ingredients []recipe.Ingredient, description string) []string {
	words := tokenize(description)
	if len(words) == 0 {
		return nil
	}
	text := " " + strings.Join(words, " ") + " "
	var out []string
	for _, ing := range ingredients {
		nameWords := tokenize(ing.Name)
		if len(nameWords) == 0 {
			continue
		}
		full := " " + strings.Join(nameWords, " ") + " "
		head := nameWords[len(nameWords)-1]
		if strings.Contains(text, full) || containsNoun(words, head) {
			if !slices.Contains(out, ing.Name) {
				out = append(out, ing.Name)
			}
		}
	}
	return out
}

func containsNoun(words []string, noun string) bool {
	if len(noun) < 3 {
		return false
	}
	stem := singular(noun)
	for _, w := range words {
		if singular(w) == stem {
			return true
		}
	}
	return false
}

// stepMethods returns lexicon verbs in order of first appearance.
func stepMethods(description string) []string {
	var out []string
	for _, w := range tokenize(description) {
		base, ok := verbBase(w)
		if ok && !slices.Contains(out, base) {
			out = append(out, base)
		}
	}
	return out
}

// verbBase maps an inflected word ("whisking", "baked", "stirred") to its
// lexicon entry.
func verbBase(word string) (string, bool) {
	if _, ok := methodLexicon[word]; ok {
		return word, true
	}
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		stem, ok := strings.CutSuffix(word, suffix)
		if !ok || len(stem) < 2 {
			continue
		}
		candidates := []string{stem, stem + "e"}
		if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
			candidates = append(candidates, stem[:n-1])
		}
		for _, c := range candidates {
			if _, ok := methodLexicon[c]; ok {
				return c, true
			}
		}
	}
	return "", false
}

func singular(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "oes") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}

// tokenize lowercases text and splits it on anything that is not a letter,
// digit or hyphen.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}
