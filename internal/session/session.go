package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"recipechat/internal/assistant"
	"recipechat/internal/navigation"
	"recipechat/internal/recipe"
)

// ErrNoRecipe is returned when a session is asked about a recipe it does not have.
var ErrNoRecipe = errors.New("no recipe loaded")

// Answer is a reply together with the cursor position after answering.
type Answer struct {
	assistant.Reply
	CurrentStep int `json:"current_step"`
}

// Snapshot is a read-only view of a session for status reporting.
type Snapshot struct {
	ID               string    `json:"session_id"`
	HasRecipe        bool      `json:"has_recipe"`
	URL              string    `json:"url,omitempty"`
	Title            string    `json:"title,omitempty"`
	IngredientsCount int       `json:"ingredients_count"`
	StepsCount       int       `json:"steps_count"`
	CurrentStep      int       `json:"current_step"`
	CreatedAt        time.Time `json:"created_at"`
	LastUsed         time.Time `json:"last_used"`
}

// Session is one conversation about one recipe.
type Session struct {
	id      string
	created time.Time
	clock   func() time.Time

	lastUsed atomic.Int64

	mu     sync.Mutex
	recipe *recipe.Recipe
	cursor *navigation.Cursor
}

// New returns an empty session.
func New(id string) *Session {
	return newSession(id, time.Now)
}

func newSession(id string, clock func() time.Time) *Session {
	now := clock()
	s := &Session{id: id, created: now, clock: clock}
	s.lastUsed.Store(now.UnixNano())
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Load replaces the session recipe and starts a new cursor at step 1.
func (s *Session) Load(r *recipe.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.recipe = r
	s.cursor = navigation.New(r)
}

// Ask answers query against the loaded recipe.
func (s *Session) Ask(query string) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.recipe == nil {
		return Answer{}, ErrNoRecipe
	}
	reply, err := assistant.Respond(s.recipe, s.cursor, query)
	return Answer{Reply: reply, CurrentStep: s.cursor.Position()}, err
}

// Ready reports whether the session holds a recipe with at least one
// ingredient and one step, the minimum the chat endpoint answers for.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipe.IngredientCount() > 0 && s.recipe.StepCount() > 0
}

// Recipe returns the loaded recipe, or nil.
func (s *Session) Recipe() *recipe.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipe
}

// Reset discards the recipe and cursor.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.recipe = nil
	s.cursor = nil
}

// Snapshot reports the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:        s.id,
		CreatedAt: s.created,
		LastUsed:  s.LastUsed(),
	}
	if s.recipe == nil {
		return snap
	}
	snap.HasRecipe = s.recipe.IngredientCount() > 0 && s.recipe.StepCount() > 0
	snap.URL = s.recipe.SourceURL
	snap.Title = s.recipe.Title
	snap.IngredientsCount = s.recipe.IngredientCount()
	snap.StepsCount = s.recipe.StepCount()
	snap.CurrentStep = s.cursor.Position()
	return snap
}

// LastUsed returns when the session was last loaded, asked or reset.
func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *Session) touch() {
	s.lastUsed.Store(s.clock().UnixNano())
}
