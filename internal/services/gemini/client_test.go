package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"recipechat/internal/recipe"
	"recipechat/internal/services"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestAnnotateSteps(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		text := `{"steps":[{"step_number":1,"ingredients":["butter"],"methods":["melt"]}]}`
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
			}},
		})
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", Model: "gemini-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ingredients := []recipe.Ingredient{{Name: "unsalted butter", Quantity: "4", Unit: "tbsp"}}
	steps := []recipe.Step{{Number: 1, Description: "Melt the butter."}}

	got, err := client.AnnotateSteps(context.Background(), ingredients, steps)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	want := []recipe.Step{{Number: 1, Description: "Melt the butter.", Ingredients: []string{"unsalted butter"}, Methods: []string{"melt"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("annotations mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(path, "gemini-test:generateContent") {
		t.Fatalf("unexpected request path %q", path)
	}
}

func TestAnnotateStepsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.AnnotateSteps(context.Background(), nil, []recipe.Step{{Number: 1, Description: "Rest."}})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}
