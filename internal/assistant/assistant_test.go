package assistant_test

import (
	"errors"
	"strings"
	"testing"

	"recipechat/internal/assistant"
	"recipechat/internal/intent"
	"recipechat/internal/navigation"
	"recipechat/internal/recipe"
)

const hint = "\n\nType 'next' or 'n' for the next step, or ask a question."

func loadCake(t *testing.T) (*recipe.Recipe, *navigation.Cursor) {
	t.Helper()
	r, c, err := navigation.Load(
		[]recipe.Ingredient{
			{Name: "flour", Quantity: "2", Unit: "cups"},
			{Name: "sugar", Quantity: "1", Unit: "cup"},
			{Name: "eggs", Quantity: "3"},
			{Name: "salt"},
		},
		[]recipe.Step{
			{Description: "Preheat the oven to 350 degrees.", Methods: []string{"preheat"}},
			{Description: "Whisk the flour and sugar together.", Ingredients: []string{"flour", "sugar"}, Methods: []string{"whisk"}},
			{Description: "Bake for 25 minutes until golden.", Ingredients: []string{"salt", "vanilla"}, Methods: []string{"bake"}},
		},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return r, c
}

func ask(t *testing.T, r *recipe.Recipe, c *navigation.Cursor, query string) assistant.Reply {
	t.Helper()
	reply, err := assistant.Respond(r, c, query)
	if err != nil {
		t.Fatalf("Respond(%q): %v", query, err)
	}
	return reply
}

func TestWalkthroughScenario(t *testing.T) {
	r, c := loadCake(t)

	steps := []struct {
		query string
		kind  intent.Kind
		text  string
		pos   int
	}{
		{"start", intent.KindBegin, "Step 1: Preheat the oven to 350 degrees." + hint, 1},
		{"next", intent.KindAdvance, "Step 2: Whisk the flour and sugar together." + hint, 2},
		{"how much flour do I need?", intent.KindHowMuch, "You need 2 cups of flour.", 2},
		{"back", intent.KindRetreat, "Step 1: Preheat the oven to 350 degrees." + hint, 1},
		{"step 2", intent.KindJumpToStep, "Step 2: Whisk the flour and sugar together.", 2},
		{"asdkjh", intent.KindFallback, assistant.FallbackText, 2},
	}
	for _, s := range steps {
		reply := ask(t, r, c, s.query)
		if reply.Intent != s.kind {
			t.Fatalf("%q: intent %s, want %s", s.query, reply.Intent, s.kind)
		}
		if reply.Text != s.text {
			t.Fatalf("%q: got %q want %q", s.query, reply.Text, s.text)
		}
		if c.Position() != s.pos {
			t.Fatalf("%q: cursor at %d, want %d", s.query, c.Position(), s.pos)
		}
	}
}

func TestIngredientsOutrankStepNumber(t *testing.T) {
	r, c := loadCake(t)
	reply := ask(t, r, c, "show ingredients step 3")
	if reply.Intent != intent.KindShowIngredients {
		t.Fatalf("intent %s, want %s", reply.Intent, intent.KindShowIngredients)
	}
	want := "Here are the ingredients:\n- 2 cups flour\n- 1 cup sugar\n- 3 eggs\n- salt"
	if reply.Text != want {
		t.Fatalf("got %q want %q", reply.Text, want)
	}
	if c.Position() != 1 {
		t.Fatalf("cursor moved to %d", c.Position())
	}
}

func TestShowRecipeListsEveryStep(t *testing.T) {
	r, c := loadCake(t)
	reply := ask(t, r, c, "Show me the recipe")
	if !strings.HasPrefix(reply.Text, "Here are all the steps:\nStep 1: ") || !strings.HasSuffix(reply.Text, "Step 3: Bake for 25 minutes until golden.") {
		t.Fatalf("unexpected recipe listing %q", reply.Text)
	}
}

func TestStepJumpClamps(t *testing.T) {
	r, c := loadCake(t)
	if reply := ask(t, r, c, "step 99"); reply.Text != "Step 3: Bake for 25 minutes until golden." {
		t.Fatalf("step 99: %q", reply.Text)
	}
	if reply := ask(t, r, c, "step 0"); reply.Text != "Step 1: Preheat the oven to 350 degrees." {
		t.Fatalf("step 0: %q", reply.Text)
	}
	ask(t, r, c, "back")
	if c.Position() != 1 {
		t.Fatalf("back at first step moved cursor to %d", c.Position())
	}
}

func TestRepeatDoesNotMove(t *testing.T) {
	r, c := loadCake(t)
	c.JumpToStep(3)
	reply := ask(t, r, c, "say that again")
	if reply.Intent != intent.KindRepeat || reply.Text != "Step 3: Bake for 25 minutes until golden." {
		t.Fatalf("unexpected repeat reply %+v", reply)
	}
	ask(t, r, c, "next")
	if c.Position() != 3 {
		t.Fatalf("next at last step moved cursor to %d", c.Position())
	}
}

func TestHowMuchVariants(t *testing.T) {
	r, c := loadCake(t)
	c.JumpToStep(2)
	if got := ask(t, r, c, "how much do i need?").Text; got != "You need 2 cups of flour.\nYou need 1 cup of sugar." {
		t.Fatalf("vague at step 2: %q", got)
	}
	c.JumpToStep(3)
	if got := ask(t, r, c, "how much of that").Text; got != "You need some salt.\nYou need some vanilla." {
		t.Fatalf("vague at step 3: %q", got)
	}
	c.JumpToStep(1)
	if got := ask(t, r, c, "how many?").Text; got != "I couldn't find any ingredients in this recipe step." {
		t.Fatalf("vague at step 1: %q", got)
	}
	if got := ask(t, r, c, "how many eggs do we need").Text; got != "You need 3 of eggs." {
		t.Fatalf("eggs: %q", got)
	}
	if got := ask(t, r, c, "how much saffron is needed?").Text; got != "I couldn't find that ingredient in this recipe." {
		t.Fatalf("saffron: %q", got)
	}
}

func TestHowMuchTimeFallsThroughToCookingTime(t *testing.T) {
	r, c := loadCake(t)
	reply := ask(t, r, c, "how much time does it take?")
	if reply.Intent != intent.KindTime {
		t.Fatalf("intent %s, want %s", reply.Intent, intent.KindTime)
	}
	if reply.Text != "Step 3: Bake for 25 minutes until golden." {
		t.Fatalf("got %q", reply.Text)
	}
}

func TestReferenceLinks(t *testing.T) {
	r, c := loadCake(t)
	if got := ask(t, r, c, "what's that?").Text; got != "I found a reference for you: https://www.google.com/search?q=that" {
		t.Fatalf("what's that at step 1 without ingredients: %q", got)
	}
	c.JumpToStep(2)
	want := "I found a reference for you: https://www.google.com/search?q=flour\n" +
		"I found a reference for you: https://www.google.com/search?q=sugar"
	if got := ask(t, r, c, "What’s that?").Text; got != want {
		t.Fatalf("what's that at step 2: %q", got)
	}
	if got := ask(t, r, c, "what is a roux?").Text; got != "I found a reference for you: https://www.google.com/search?q=a+roux" {
		t.Fatalf("what is: %q", got)
	}
}

func TestVideoLinks(t *testing.T) {
	r, c := loadCake(t)
	c.JumpToStep(2)
	if got := ask(t, r, c, "how?").Text; got != "Here's a video search that might help: https://www.youtube.com/results?search_query=how+to+whisk" {
		t.Fatalf("how at step 2: %q", got)
	}
	if got := ask(t, r, c, "How do I fold egg whites?").Text; got != "Here's a video search that might help: https://www.youtube.com/results?search_query=how+to+fold+egg+whites" {
		t.Fatalf("how do i: %q", got)
	}

	bare, bareCursor, err := navigation.Load(nil, []recipe.Step{{Description: "Serve."}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := ask(t, bare, bareCursor, "how do i do that").Text; got != "I couldn't find any methods in this recipe step." {
		t.Fatalf("no methods: %q", got)
	}
}

func TestCookingTemperatureAndTime(t *testing.T) {
	r, c := loadCake(t)
	reply := ask(t, r, c, "What temperature do I bake at?")
	if reply.Intent != intent.KindTemperature || reply.Text != "Step 1: Preheat the oven to 350 degrees." {
		t.Fatalf("temperature reply %+v", reply)
	}
	reply = ask(t, r, c, "how long do i bake it?")
	if reply.Intent != intent.KindTime || reply.Text != "Step 3: Bake for 25 minutes until golden." {
		t.Fatalf("time reply %+v", reply)
	}
	reply = ask(t, r, c, "when will it be ready")
	if reply.Text != "Step 3: Bake for 25 minutes until golden." {
		t.Fatalf("ready reply %+v", reply)
	}

	plain, plainCursor, err := navigation.Load(nil, []recipe.Step{{Description: "Mix everything."}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := ask(t, plain, plainCursor, "what temp?").Text; got != "Couldn't find any relevant cooking temperature information." {
		t.Fatalf("no temperature: %q", got)
	}
	if got := ask(t, plain, plainCursor, "how long will this take").Text; got != "Couldn't find any relevant cooking time information." {
		t.Fatalf("no time: %q", got)
	}
}

func TestSubstitution(t *testing.T) {
	r, c := loadCake(t)
	reply := ask(t, r, c, "I don't have flour")
	want := "Here are some substitution options for 'flour':\nhttps://www.google.com/search?q=flour+cooking+substitute"
	if reply.Intent != intent.KindSubstitution || reply.Text != want {
		t.Fatalf("got %+v want %q", reply, want)
	}
	if got := ask(t, r, c, "i'm out of ?").Text; got != "Ingredient not found, sorry!" {
		t.Fatalf("empty target: %q", got)
	}
}

func TestEmptyRecipe(t *testing.T) {
	r, c, err := navigation.Load(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := assistant.Respond(r, c, "start"); !errors.Is(err, recipe.ErrEmptyRecipe) {
		t.Fatalf("expected ErrEmptyRecipe, got %v", err)
	}
	if got := ask(t, r, c, "ingredients").Text; got != "No ingredients found." {
		t.Fatalf("ingredients: %q", got)
	}
	if got := ask(t, r, c, "show recipe").Text; got != "No steps found." {
		t.Fatalf("recipe: %q", got)
	}
	if got := ask(t, r, c, "how much butter?").Text; got != "I couldn't find that ingredient in this recipe." {
		t.Fatalf("how much: %q", got)
	}
}

func TestBlankQuery(t *testing.T) {
	r, c := loadCake(t)
	if _, err := assistant.Respond(r, c, "   "); !errors.Is(err, assistant.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchURLEscaping(t *testing.T) {
	cases := map[string]string{
		"chef's knife":  "https://www.google.com/search?q=chef%27s+knife",
		"crème fraîche": "https://www.google.com/search?q=cr%C3%A8me+fra%C3%AEche",
		"salt & pepper": "https://www.google.com/search?q=salt+%26+pepper",
	}
	for phrase, want := range cases {
		if got := assistant.SearchURL(phrase); got != want {
			t.Errorf("SearchURL(%q) = %q, want %q", phrase, got, want)
		}
	}
}
