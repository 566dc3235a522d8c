// Package scrape turns a recipe web page into a recipe.Recipe.
//
// Parser fetches the page with colly and reads schema.org Recipe data from
// ld+json blocks, falling back to microdata attributes when a page carries
// none. Ingredient lines are split into quantity, unit and name. Steps are
// annotated with the ingredients and techniques they mention, either by a
// model-backed Annotator or by the keyword annotator in this package.
package scrape
