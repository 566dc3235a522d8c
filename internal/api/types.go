package api

// ParseRequest asks the service to load a recipe page into a session.
type ParseRequest struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id,omitempty"`
	// Refresh bypasses the cache.
	Refresh bool `json:"refresh,omitempty"`
}

// ParseResponse reports a successful parse.
type ParseResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	SessionID        string `json:"session_id"`
	Title            string `json:"title,omitempty"`
	IngredientsCount int    `json:"ingredients_count"`
	StepsCount       int    `json:"steps_count"`
	Cached           bool   `json:"cached"`
}

// QueryRequest asks a session a question.
type QueryRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// QueryResponse carries the reply text, the matched intent and the cursor
// position after answering.
type QueryResponse struct {
	Success     bool   `json:"success"`
	Response    string `json:"response"`
	Intent      string `json:"intent"`
	CurrentStep int    `json:"current_step"`
}

// StatusResponse describes a session.
type StatusResponse struct {
	SessionID        string `json:"session_id,omitempty"`
	HasRecipe        bool   `json:"has_recipe"`
	URL              string `json:"url"`
	Title            string `json:"title,omitempty"`
	IngredientsCount int    `json:"ingredients_count"`
	StepsCount       int    `json:"steps_count"`
	CurrentStep      int    `json:"current_step"`
}

// ResetResponse reports whether a session was discarded.
type ResetResponse struct {
	Success bool `json:"success"`
	Removed bool `json:"removed"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
