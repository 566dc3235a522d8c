// Package recipecache persists parsed recipes in SQLite so repeated parses of
// the same page skip the network.
//
// Entries are keyed by source URL and stamped with the time they were fetched.
// Get ignores entries older than the configured TTL; they stay on disk until
// overwritten, removed, or cleared. Schema changes ship as numbered files in
// migrations/ and are applied in order on Open.
package recipecache
