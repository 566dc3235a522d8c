// Command recipechat chats with a single recipe page: it loads the recipe,
// answers navigation and cooking questions about it, and can serve the same
// conversation over an HTTP API.
package main
