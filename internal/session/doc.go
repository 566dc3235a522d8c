// Package session keeps the per-conversation state of the chat engine.
//
// A Session owns one recipe and the navigation cursor over it; a fresh parse
// replaces both and Reset discards them. Every operation on a Session is
// serialized, so concurrent requests for the same conversation never race
// the cursor. The Manager indexes sessions by ID, caps how many are kept
// (evicting the least recently used) and collects idle ones in the
// background.
package session
