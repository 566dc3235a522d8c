package scrape

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"recipechat/internal/recipe"
)

func TestKeywordAnnotator(t *testing.T) {
	ingredients := []recipe.Ingredient{
		{Name: "unsalted butter"},
		{Name: "yellow onions"},
		{Name: "chicken stock"},
		{Name: "kosher salt"},
	}
	steps := []recipe.Step{
		{Number: 1, Description: "Melt the butter, then add the onion and stir until softened."},
		{Number: 2, Description: "Pour in the chicken stock and bring to a boil; simmer for 20 minutes."},
		{Number: 3, Description: "Season to taste.", Methods: []string{"adjust"}},
	}

	got, err := KeywordAnnotator{}.AnnotateSteps(context.Background(), ingredients, steps)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	want := []recipe.Step{
		{Number: 1, Description: steps[0].Description, Ingredients: []string{"unsalted butter", "yellow onions"}, Methods: []string{"melt", "stir"}},
		{Number: 2, Description: steps[1].Description, Ingredients: []string{"chicken stock"}, Methods: []string{"pour", "boil", "simmer"}},
		{Number: 3, Description: steps[2].Description, Methods: []string{"adjust"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("annotations mismatch (-want +got):\n%s", diff)
	}
	if steps[0].Ingredients != nil {
		t.Fatal("input steps were mutated")
	}
}

func TestVerbBase(t *testing.T) {
	for word, want := range map[string]string{
		"whisking":  "whisk",
		"baked":     "bake",
		"stirred":   "stir",
		"simmers":   "simmer",
		"preheated": "preheat",
		"mixes":     "mix",
	} {
		got, ok := verbBase(word)
		if !ok || got != want {
			t.Errorf("verbBase(%q) = %q, %v; want %q", word, got, ok, want)
		}
	}
	if _, ok := verbBase("eggs"); ok {
		t.Error("expected eggs not to be a method")
	}
}
