// Package navigation tracks the current step of a recipe walkthrough.
//
// The cursor is the only mutable state of a loaded recipe. Out-of-range
// targets are clamped into [1, step count] rather than rejected, so "step 99"
// lands on the last step and "back" on step 1 stays put. A Cursor is not safe
// for concurrent use; session owners serialize access.
package navigation

import "recipechat/internal/recipe"

// Cursor points at the current 1-based step of a recipe.
type Cursor struct {
	steps   []recipe.Step
	current int
}

// New returns a cursor positioned at step 1 of r.
func New(r *recipe.Recipe) *Cursor {
	var steps []recipe.Step
	if r != nil {
		steps = r.Steps
	}
	return &Cursor{steps: steps, current: 1}
}

// Load builds a recipe and its cursor together.
func Load(ingredients []recipe.Ingredient, steps []recipe.Step, opts ...recipe.Option) (*recipe.Recipe, *Cursor, error) {
	r, err := recipe.Load(ingredients, steps, opts...)
	if err != nil {
		return nil, nil, err
	}
	return r, New(r), nil
}

// JumpToStep moves to step n, clamped to the valid range.
func (c *Cursor) JumpToStep(n int) {
	c.current = c.clamp(n)
}

// MoveStepsForward moves delta steps (negative moves back), clamped to the
// valid range. There is no wraparound.
func (c *Cursor) MoveStepsForward(delta int) {
	c.current = c.clamp(c.current + delta)
}

// CurrentStep returns the step under the cursor.
func (c *Cursor) CurrentStep() (recipe.Step, error) {
	if len(c.steps) == 0 {
		return recipe.Step{}, recipe.ErrEmptyRecipe
	}
	return c.steps[c.current-1], nil
}

// Position returns the 1-based current step number.
func (c *Cursor) Position() int {
	return c.current
}

// Len returns the number of steps the cursor ranges over.
func (c *Cursor) Len() int {
	return len(c.steps)
}

func (c *Cursor) clamp(n int) int {
	if len(c.steps) == 0 {
		return 1
	}
	if n < 1 {
		return 1
	}
	if n > len(c.steps) {
		return len(c.steps)
	}
	return n
}
