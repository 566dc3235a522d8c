package navigation_test

import (
	"errors"
	"testing"

	"recipechat/internal/navigation"
	"recipechat/internal/recipe"
)

func threeSteps(t *testing.T) (*recipe.Recipe, *navigation.Cursor) {
	t.Helper()
	r, c, err := navigation.Load(nil, []recipe.Step{
		{Description: "one"},
		{Description: "two"},
		{Description: "three"},
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return r, c
}

func TestJumpToStepClamps(t *testing.T) {
	_, c := threeSteps(t)
	for _, n := range []int{-5, 0, 1, 2, 3, 4, 100} {
		c.JumpToStep(n)
		if pos := c.Position(); pos < 1 || pos > 3 {
			t.Fatalf("JumpToStep(%d) left cursor at %d", n, pos)
		}
	}
	c.JumpToStep(100)
	if c.Position() != 3 {
		t.Fatalf("expected clamp to last step, got %d", c.Position())
	}
	c.JumpToStep(-1)
	if c.Position() != 1 {
		t.Fatalf("expected clamp to first step, got %d", c.Position())
	}
}

func TestJumpThenCurrentRoundTrip(t *testing.T) {
	_, c := threeSteps(t)
	c.JumpToStep(3)
	step, err := c.CurrentStep()
	if err != nil {
		t.Fatalf("CurrentStep returned error: %v", err)
	}
	if step.Number != 3 || step.Description != "three" {
		t.Fatalf("unexpected step %+v", step)
	}
}

func TestMoveStepsForwardDoesNotWrap(t *testing.T) {
	_, c := threeSteps(t)
	c.MoveStepsForward(-1)
	if c.Position() != 1 {
		t.Fatalf("back at step 1 should stay, got %d", c.Position())
	}
	for i := 0; i < 5; i++ {
		c.MoveStepsForward(1)
	}
	if c.Position() != 3 {
		t.Fatalf("expected last step, got %d", c.Position())
	}
	c.MoveStepsForward(1)
	if c.Position() != 3 {
		t.Fatalf("forward at last step should be idempotent, got %d", c.Position())
	}
	c.MoveStepsForward(-1)
	if c.Position() != 2 {
		t.Fatalf("expected step 2 after back, got %d", c.Position())
	}
}

func TestEmptyRecipeCurrentStepFails(t *testing.T) {
	r, err := recipe.Load(nil, nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	c := navigation.New(r)
	c.JumpToStep(4)
	c.MoveStepsForward(2)
	if _, err := c.CurrentStep(); !errors.Is(err, recipe.ErrEmptyRecipe) {
		t.Fatalf("expected ErrEmptyRecipe, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected zero length, got %d", c.Len())
	}
}
