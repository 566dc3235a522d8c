// Package intent recognizes what a chat query is asking for.
//
// Recognition is deterministic: each category is a table of case-insensitive
// patterns matched against the normalized query (see Normalize). Navigation
// categories are plain predicates; content categories also extract a
// parameter such as an ingredient phrase or a step number and report whether
// extraction succeeded, so the dispatcher can fall through to the next
// category when it did not. Category priority is owned by the assistant
// package, which evaluates these matchers in a fixed order.
package intent
