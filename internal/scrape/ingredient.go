package scrape

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"recipechat/internal/recipe"
)

var (
	quantityPattern = regexp.MustCompile(`^((?:\d+\s+)?\d+(?:[./]\d+)?(?:\s*(?:-|–|to)\s*\d+(?:[./]\d+)?)?)\s*(.*)$`)
	parenPattern    = regexp.MustCompile(`\s*\([^)]*\)`)
)

// units maps the spellings recognised after a quantity. Two-word units are
// looked up before single words.
var units = map[string]struct{}{
	"cup": {}, "cups": {}, "c": {},
	"tablespoon": {}, "tablespoons": {}, "tbsp": {}, "tbs": {}, "tbl": {},
	"teaspoon": {}, "teaspoons": {}, "tsp": {},
	"ounce": {}, "ounces": {}, "oz": {}, "fl oz": {}, "fluid ounce": {}, "fluid ounces": {},
	"pound": {}, "pounds": {}, "lb": {}, "lbs": {},
	"gram": {}, "grams": {}, "g": {}, "kilogram": {}, "kilograms": {}, "kg": {},
	"milliliter": {}, "milliliters": {}, "millilitre": {}, "millilitres": {}, "ml": {},
	"liter": {}, "liters": {}, "litre": {}, "litres": {}, "l": {},
	"pint": {}, "pints": {}, "pt": {}, "quart": {}, "quarts": {}, "qt": {}, "gallon": {}, "gallons": {},
	"pinch": {}, "pinches": {}, "dash": {}, "dashes": {}, "handful": {}, "handfuls": {},
	"clove": {}, "cloves": {}, "can": {}, "cans": {}, "package": {}, "packages": {}, "pkg": {},
	"stick": {}, "sticks": {}, "slice": {}, "slices": {}, "sprig": {}, "sprigs": {},
	"bunch": {}, "bunches": {}, "head": {}, "heads": {}, "jar": {}, "jars": {},
}

// ParseIngredientLine splits a free-text ingredient line such as
// "1½ cups all-purpose flour, sifted" into quantity "1 1/2", unit "cups" and
// name "all-purpose flour". ok is false for blank lines.
func ParseIngredientLine(line string) (recipe.Ingredient, bool) {
	text := normalizeFractions(cleanText(line))
	if text == "" {
		return recipe.Ingredient{}, false
	}

	var ing recipe.Ingredient
	rest := text
	if m := quantityPattern.FindStringSubmatch(text); m != nil {
		ing.Quantity = m[1]
		rest = m[2]
	}

	words := strings.Fields(parenPattern.ReplaceAllString(rest, ""))
	if unit, n := leadingUnit(words); n > 0 {
		// A bare unit word only counts when a quantity precedes it or it
		// introduces "of", as in "pinch of salt".
		if ing.Quantity != "" || (len(words) > n && strings.EqualFold(words[n], "of")) {
			ing.Unit = unit
			rest = strings.Join(words[n:], " ")
		}
	}

	ing.Name = ingredientName(rest)
	if ing.Name == "" {
		ing.Name = ingredientName(text)
	}
	if ing.Name == "" {
		ing.Name = text
	}
	return ing, true
}

func leadingUnit(words []string) (string, int) {
	if len(words) >= 2 {
		two := trimUnit(words[0]) + " " + trimUnit(words[1])
		if _, ok := units[strings.ToLower(two)]; ok {
			return two, 2
		}
	}
	if len(words) >= 1 {
		one := trimUnit(words[0])
		if _, ok := units[strings.ToLower(one)]; ok {
			return one, 1
		}
	}
	return "", 0
}

func trimUnit(word string) string {
	return strings.TrimRight(word, ".,")
}

func ingredientName(text string) string {
	name := parenPattern.ReplaceAllString(text, "")
	if before, _, found := strings.Cut(name, ","); found && strings.TrimSpace(before) != "" {
		name = before
	}
	name = strings.TrimSpace(name)
	if rest, ok := cutPrefixFold(name, "of "); ok {
		name = rest
	}
	return strings.TrimFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '-'
	})
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// normalizeFractions rewrites vulgar fractions as ASCII: "1½" becomes
// "1 1/2".
func normalizeFractions(text string) string {
	var b strings.Builder
	var prev rune
	for _, r := range text {
		if isVulgarFraction(r) && unicode.IsDigit(prev) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	out := norm.NFKC.String(b.String())
	return strings.ReplaceAll(out, "⁄", "/")
}

func isVulgarFraction(r rune) bool {
	return (r >= '¼' && r <= '¾') || (r >= '⅐' && r <= '⅞')
}
