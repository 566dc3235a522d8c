package recipe

import "strings"

// FindIngredient returns the first ingredient whose name matches search
// case-insensitively, where either string may be a substring of the other.
func (r *Recipe) FindIngredient(search string) (Ingredient, bool) {
	if r == nil {
		return Ingredient{}, false
	}
	return FindIngredient(r.Ingredients, search)
}

// FindIngredient applies the recipe lookup rule to an arbitrary list.
func FindIngredient(ingredients []Ingredient, search string) (Ingredient, bool) {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return Ingredient{}, false
	}
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return ing, true
		}
	}
	return Ingredient{}, false
}
