// Package recipe holds the in-memory recipe model shared by the navigation
// cursor, the intent handlers, and the parsing collaborators.
//
// A Recipe is built once by Load and treated as read-only afterwards: the
// ingredient list and the step list keep the order of the source page, and a
// reload replaces both wholesale. The package also owns the plain-text
// renderings used in chat replies and the substring-based ingredient lookup
// the quantity questions rely on.
package recipe
