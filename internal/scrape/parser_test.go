package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"recipechat/internal/recipe"
	"recipechat/internal/services"
)

const graphPage = `<!doctype html>
<html><head><title>Weeknight Pancakes | Example Kitchen</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[
  {"@type":"WebSite","name":"Example Kitchen"},
  {"@type":["Recipe"],"name":"Weeknight Pancakes",
   "recipeIngredient":["1½ cups all-purpose flour","2 large eggs","1 cup milk","pinch of salt"],
   "recipeInstructions":[
     {"@type":"HowToSection","name":"Batter","itemListElement":[
       {"@type":"HowToStep","text":"Whisk the flour and salt in a bowl."},
       {"@type":"HowToStep","text":"Beat in the eggs &amp; milk."}
     ]},
     {"@type":"HowToStep","text":"Cook on a hot griddle for 2 minutes per side."}
   ]}
]}
</script></head><body></body></html>`

const microdataPage = `<!doctype html>
<html><head><title>Toast</title></head><body>
<div itemscope itemtype="http://schema.org/Recipe">
  <h1 itemprop="name">Buttered Toast</h1>
  <ul>
    <li itemprop="recipeIngredient">2 slices bread</li>
    <li itemprop="recipeIngredient">1 tbsp butter</li>
  </ul>
  <ol itemprop="recipeInstructions">
    <li>Toast the bread.</li>
    <li>Spread with butter.</li>
  </ol>
</div>
</body></html>`

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestParseLDJSONGraph(t *testing.T) {
	server := serve(t, graphPage)
	parser := New(Options{Timeout: 5 * time.Second})

	got, err := parser.Parse(context.Background(), server.URL+"/pancakes")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Title != "Weeknight Pancakes" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.SourceURL != server.URL+"/pancakes" {
		t.Fatalf("source url = %q", got.SourceURL)
	}
	wantIngredients := []recipe.Ingredient{
		{Name: "all-purpose flour", Quantity: "1 1/2", Unit: "cups"},
		{Name: "large eggs", Quantity: "2"},
		{Name: "milk", Quantity: "1", Unit: "cup"},
		{Name: "salt", Unit: "pinch"},
	}
	if diff := cmp.Diff(wantIngredients, got.Ingredients); diff != "" {
		t.Fatalf("ingredients mismatch (-want +got):\n%s", diff)
	}
	wantSteps := []recipe.Step{
		{Number: 1, Description: "Whisk the flour and salt in a bowl.", Ingredients: []string{"all-purpose flour", "salt"}, Methods: []string{"whisk"}},
		{Number: 2, Description: "Beat in the eggs & milk.", Ingredients: []string{"large eggs", "milk"}, Methods: []string{"beat"}},
		{Number: 3, Description: "Cook on a hot griddle for 2 minutes per side.", Methods: []string{"cook"}},
	}
	if diff := cmp.Diff(wantSteps, got.Steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMicrodataFallback(t *testing.T) {
	server := serve(t, microdataPage)
	got, err := New(Options{}).Parse(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Title != "Buttered Toast" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.IngredientCount() != 2 || got.StepCount() != 2 {
		t.Fatalf("counts = %d/%d", got.IngredientCount(), got.StepCount())
	}
	if got.Steps[1].Description != "Spread with butter." {
		t.Fatalf("step 2 = %q", got.Steps[1].Description)
	}
	if diff := cmp.Diff([]string{"butter"}, got.Steps[1].Ingredients); diff != "" {
		t.Fatalf("step 2 ingredients (-want +got):\n%s", diff)
	}
}

func TestParseNoRecipe(t *testing.T) {
	server := serve(t, `<html><head><title>Blog</title></head><body><p>Nothing here.</p></body></html>`)
	_, err := New(Options{}).Parse(context.Background(), server.URL)
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestParseHTTPError(t *testing.T) {
	server := serve(t, graphPage)
	_, err := New(Options{}).Parse(context.Background(), server.URL+"/missing")
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status in message, got %v", err)
	}
}

func TestParseRejectsBadURL(t *testing.T) {
	parser := New(Options{})
	for _, raw := range []string{"", "ftp://example.com/recipe", "not a url", "https://"} {
		if _, err := parser.Parse(context.Background(), raw); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("Parse(%q): expected validation error, got %v", raw, err)
		}
	}
}

type stubAnnotator struct {
	err   error
	calls int
}

func (s *stubAnnotator) AnnotateSteps(_ context.Context, _ []recipe.Ingredient, steps []recipe.Step) ([]recipe.Step, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]recipe.Step, len(steps))
	for i, step := range steps {
		step.Methods = []string{"model"}
		out[i] = step
	}
	return out, nil
}

func TestParseUsesModelAnnotator(t *testing.T) {
	server := serve(t, microdataPage)
	stub := &stubAnnotator{}
	got, err := New(Options{Annotator: stub}).Parse(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("annotator calls = %d", stub.calls)
	}
	if diff := cmp.Diff([]string{"model"}, got.Steps[0].Methods); diff != "" {
		t.Fatalf("methods (-want +got):\n%s", diff)
	}
}

func TestParseFallsBackWhenAnnotatorFails(t *testing.T) {
	server := serve(t, microdataPage)
	stub := &stubAnnotator{err: errors.New("quota exceeded")}
	got, err := New(Options{Annotator: stub}).Parse(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"toast"}, got.Steps[0].Methods); diff != "" {
		t.Fatalf("methods (-want +got):\n%s", diff)
	}
}
