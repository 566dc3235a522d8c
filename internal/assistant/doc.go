// Package assistant answers chat queries about a loaded recipe.
//
// Respond normalizes the query and walks an ordered list of rules. Each rule
// pairs an intent matcher with a handler; the first handler that accepts the
// query produces the reply. Content handlers (quantities, references, how-to
// videos, temperatures, times, substitutions) may decline when they cannot
// extract what they need, in which case the next rule is tried. Navigation
// handlers move the cursor they are given. Replies are plain text and any
// links are search URLs built locally; nothing here touches the network.
package assistant
