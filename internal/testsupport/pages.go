package testsupport

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// PancakePage is a recipe page carrying schema.org ld+json with four
// ingredients and three steps.
const PancakePage = `<!doctype html>
<html><head><title>Pancakes</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"Recipe","name":"Pancakes",
 "recipeIngredient":["2 cups flour","1 cup milk","2 eggs","1 tbsp sugar"],
 "recipeInstructions":[
   {"@type":"HowToStep","text":"Whisk the flour and sugar."},
   {"@type":"HowToStep","text":"Add the milk and eggs and stir until smooth."},
   {"@type":"HowToStep","text":"Cook on a griddle over medium heat for 3 minutes per side."}
 ]}
</script></head><body><h1>Pancakes</h1></body></html>`

// RecipeServer serves fixed pages and counts requests.
type RecipeServer struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served.
func (s *RecipeServer) Hits() int64 {
	return s.hits.Load()
}

// ServeRecipePage serves body for every path except /missing, which
// answers 404. The server is closed when the test ends.
func ServeRecipePage(t testing.TB, body string) *RecipeServer {
	t.Helper()

	rs := &RecipeServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}
