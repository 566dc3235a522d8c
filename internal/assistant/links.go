package assistant

import "net/url"

const (
	searchBase = "https://www.google.com/search?q="
	videoBase  = "https://www.youtube.com/results?search_query="
)

// SearchURL returns a web search link for phrase.
func SearchURL(phrase string) string {
	return searchBase + url.QueryEscape(phrase)
}

// VideoSearchURL returns a video search link for "how to <task>".
func VideoSearchURL(task string) string {
	return videoBase + url.QueryEscape("how to "+task)
}

// SubstituteURL returns a web search link for substitutes of ingredient.
func SubstituteURL(ingredient string) string {
	return SearchURL(ingredient + " cooking substitute")
}
