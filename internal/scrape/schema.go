package scrape

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// schemaRecipe is the subset of a schema.org Recipe the parser uses.
type schemaRecipe struct {
	Name         string
	Ingredients  []string
	Instructions []string
	source       string
}

// extractLDJSON returns every Recipe object in one ld+json block. The block
// may hold a single object, an array, or an @graph container.
func extractLDJSON(raw string) []schemaRecipe {
	var doc any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &doc); err != nil {
		return nil
	}
	var out []schemaRecipe
	collectRecipes(doc, &out)
	return out
}

func collectRecipes(node any, out *[]schemaRecipe) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			collectRecipes(item, out)
		}
	case map[string]any:
		if isType(v["@type"], "Recipe") {
			*out = append(*out, recipeFromObject(v))
			return
		}
		for _, key := range []string{"@graph", "mainEntity", "mainEntityOfPage"} {
			if child, ok := v[key]; ok {
				collectRecipes(child, out)
			}
		}
	}
}

func isType(node any, want string) bool {
	switch v := node.(type) {
	case string:
		return strings.EqualFold(v, want) || strings.HasSuffix(v, "/"+want)
	case []any:
		for _, item := range v {
			if isType(item, want) {
				return true
			}
		}
	}
	return false
}

func recipeFromObject(obj map[string]any) schemaRecipe {
	out := schemaRecipe{source: "ld+json", Name: cleanText(stringValue(obj["name"]))}
	ingredients := obj["recipeIngredient"]
	if ingredients == nil {
		ingredients = obj["ingredients"]
	}
	for _, line := range stringList(ingredients) {
		if text := cleanText(line); text != "" {
			out.Ingredients = append(out.Ingredients, text)
		}
	}
	out.Instructions = instructionList(obj["recipeInstructions"])
	return out
}

// instructionList flattens strings, HowToStep objects and HowToSection
// objects into step texts in document order.
func instructionList(node any) []string {
	switch v := node.(type) {
	case string:
		return splitLines(v)
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, instructionList(item)...)
		}
		return out
	case map[string]any:
		if items, ok := v["itemListElement"]; ok {
			return instructionList(items)
		}
		text := stringValue(v["text"])
		if strings.TrimSpace(text) == "" {
			text = stringValue(v["name"])
		}
		if cleaned := cleanText(text); cleaned != "" {
			return []string{cleaned}
		}
	}
	return nil
}

func stringValue(node any) string {
	switch v := node.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			return stringValue(v[0])
		}
	case map[string]any:
		return stringValue(v["@value"])
	}
	return ""
}

func stringList(node any) []string {
	switch v := node.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// splitLines breaks a block of instruction text into one entry per
// non-empty line.
func splitLines(text string) []string {
	text = htmlText(text)
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		if cleaned := collapseSpace(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// cleanText strips markup and entities and collapses whitespace.
func cleanText(text string) string {
	return collapseSpace(htmlText(text))
}

func htmlText(text string) string {
	if strings.Contains(text, "<") {
		// Block elements become line breaks so splitLines keeps them apart.
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
		if err == nil {
			doc.Find("br, p, li, div").Each(func(_ int, s *goquery.Selection) {
				s.AppendHtml("\n")
			})
			text = doc.Text()
		}
	}
	return html.UnescapeString(text)
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
