package api

import "errors"

// Client-facing messages.
const (
	MsgNoURL    = "No URL provided"
	MsgNoQuery  = "No query provided"
	MsgNoRecipe = "No recipe loaded. Please parse a recipe first."
	parsePrefix = "Error parsing recipe: "
)

// Error pairs the message shown to API clients with the marked cause used
// for status mapping.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the client-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
