package assistant

import (
	"strings"

	"recipechat/internal/intent"
	"recipechat/internal/recipe"
)

func showIngredients(t *turn) (string, bool, error) {
	return recipe.FormatIngredients(t.recipe.Ingredients), true, nil
}

func showRecipe(t *turn) (string, bool, error) {
	return recipe.FormatSteps(t.recipe.Steps), true, nil
}

func begin(t *turn) (string, bool, error) {
	t.cursor.JumpToStep(1)
	return currentStep(t, true)
}

func advance(t *turn) (string, bool, error) {
	t.cursor.MoveStepsForward(1)
	return currentStep(t, true)
}

func retreat(t *turn) (string, bool, error) {
	t.cursor.MoveStepsForward(-1)
	return currentStep(t, true)
}

func jumpToStep(t *turn) (string, bool, error) {
	n, ok := intent.StepNumber(t.query)
	if !ok {
		return "", false, nil
	}
	t.cursor.JumpToStep(n)
	return currentStep(t, false)
}

func repeatStep(t *turn) (string, bool, error) {
	return currentStep(t, false)
}

func currentStep(t *turn, hint bool) (string, bool, error) {
	step, err := t.cursor.CurrentStep()
	if err != nil {
		return "", false, err
	}
	text := step.String()
	if hint {
		text += navigationHint
	}
	return text, true, nil
}

func howMuch(t *turn) (string, bool, error) {
	if intent.IsVagueHowMuch(t.query) {
		step, err := t.cursor.CurrentStep()
		if err != nil {
			return "", false, err
		}
		if len(step.Ingredients) == 0 {
			return msgNoStepIngredients, true, nil
		}
		lines := make([]string, 0, len(step.Ingredients))
		for _, name := range step.Ingredients {
			if ing, found := t.recipe.FindIngredient(name); found {
				lines = append(lines, quantitySentence(ing))
				continue
			}
			lines = append(lines, "You need some "+name+".")
		}
		return strings.Join(lines, "\n"), true, nil
	}

	name, ok := intent.HowMuchIngredient(t.query)
	if !ok {
		return "", false, nil
	}
	ing, found := t.recipe.FindIngredient(name)
	if !found {
		return msgIngredientNotFound, true, nil
	}
	return quantitySentence(ing), true, nil
}

// quantitySentence renders "You need 2 cups of flour." and degrades to
// "You need some flour." when neither quantity nor unit is known.
func quantitySentence(ing recipe.Ingredient) string {
	parts := make([]string, 0, 3)
	if ing.Quantity != "" {
		parts = append(parts, ing.Quantity)
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	if len(parts) == 0 {
		return "You need some " + ing.Name + "."
	}
	parts = append(parts, "of "+ing.Name)
	return "You need " + strings.Join(parts, " ") + "."
}

func whatIs(t *turn) (string, bool, error) {
	// A bare "what's that?" on a step without ingredients is looked up
	// literally, like any other term.
	if intent.IsWhatsThat(t.query) {
		step, err := t.cursor.CurrentStep()
		if err != nil {
			return "", false, err
		}
		if len(step.Ingredients) > 0 {
			lines := make([]string, 0, len(step.Ingredients))
			for _, name := range step.Ingredients {
				lines = append(lines, referencePrefix+SearchURL(name))
			}
			return strings.Join(lines, "\n"), true, nil
		}
	}

	term, ok := intent.WhatIsTerm(t.query)
	if !ok {
		return "", false, nil
	}
	return referencePrefix + SearchURL(term), true, nil
}

func howDoI(t *turn) (string, bool, error) {
	if intent.IsHowDoIThat(t.query) {
		step, err := t.cursor.CurrentStep()
		if err != nil {
			return "", false, err
		}
		if len(step.Methods) == 0 {
			return msgNoStepMethods, true, nil
		}
		lines := make([]string, 0, len(step.Methods))
		for _, method := range step.Methods {
			lines = append(lines, videoPrefix+VideoSearchURL(method))
		}
		return strings.Join(lines, "\n"), true, nil
	}

	task, ok := intent.HowDoITask(t.query)
	if !ok {
		return "", false, nil
	}
	return videoPrefix + VideoSearchURL(task), true, nil
}

func cookingTemperature(t *turn) (string, bool, error) {
	var lines []string
	for _, step := range t.recipe.Steps {
		if intent.StepMentionsTemperature(step.Description) {
			lines = append(lines, step.String())
		}
	}
	if len(lines) == 0 {
		return msgNoTemperature, true, nil
	}
	return strings.Join(lines, "\n"), true, nil
}

func cookingTime(t *turn) (string, bool, error) {
	var lines []string
	if action, ok := intent.CookingAction(t.query); ok {
		for _, step := range t.recipe.Steps {
			if strings.Contains(strings.ToLower(step.Description), action) {
				lines = append(lines, step.String())
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n"), true, nil
		}
	}
	for _, step := range t.recipe.Steps {
		if intent.StepMentionsTime(step.Description) {
			lines = append(lines, step.String())
		}
	}
	if len(lines) == 0 {
		return msgNoTime, true, nil
	}
	return strings.Join(lines, "\n"), true, nil
}

func substitution(t *turn) (string, bool, error) {
	target, ok := intent.SubstitutionTarget(t.query)
	if !ok {
		return "", false, nil
	}
	if target == "" {
		return msgNoSubstitute, true, nil
	}
	return "Here are some substitution options for '" + target + "':\n" + SubstituteURL(target), true, nil
}
