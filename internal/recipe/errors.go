package recipe

import "errors"

var (
	// ErrEmptyRecipe reports that a recipe has no steps to navigate.
	ErrEmptyRecipe = errors.New("recipe has no steps")
	// ErrInvalidRecipe marks structural problems detected by Load.
	ErrInvalidRecipe = errors.New("invalid recipe")
)
