package scrape

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"recipechat/internal/recipe"
)

func TestParseIngredientLine(t *testing.T) {
	cases := []struct {
		line string
		want recipe.Ingredient
	}{
		{"2 cups all-purpose flour", recipe.Ingredient{Name: "all-purpose flour", Quantity: "2", Unit: "cups"}},
		{"1½ cups sugar", recipe.Ingredient{Name: "sugar", Quantity: "1 1/2", Unit: "cups"}},
		{"½ tsp. baking soda", recipe.Ingredient{Name: "baking soda", Quantity: "1/2", Unit: "tsp"}},
		{"3 large eggs, at room temperature", recipe.Ingredient{Name: "large eggs", Quantity: "3"}},
		{"2-3 cloves garlic, minced", recipe.Ingredient{Name: "garlic", Quantity: "2-3", Unit: "cloves"}},
		{"8 fl oz heavy cream", recipe.Ingredient{Name: "heavy cream", Quantity: "8", Unit: "fl oz"}},
		{"pinch of salt", recipe.Ingredient{Name: "salt", Unit: "pinch"}},
		{"1 (14 ounce) can coconut milk", recipe.Ingredient{Name: "coconut milk", Quantity: "1", Unit: "can"}},
		{"Salt and pepper to taste", recipe.Ingredient{Name: "Salt and pepper to taste"}},
		{"<b>250 g</b> butter", recipe.Ingredient{Name: "butter", Quantity: "250", Unit: "g"}},
	}
	for _, tc := range cases {
		got, ok := ParseIngredientLine(tc.line)
		if !ok {
			t.Fatalf("ParseIngredientLine(%q) rejected line", tc.line)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseIngredientLine(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
	}
	if _, ok := ParseIngredientLine("   "); ok {
		t.Fatal("expected blank line to be rejected")
	}
}
