package assistant

const (
	navigationHint = "\n\nType 'next' or 'n' for the next step, or ask a question."

	msgNoStepIngredients  = "I couldn't find any ingredients in this recipe step."
	msgIngredientNotFound = "I couldn't find that ingredient in this recipe."
	msgNoStepMethods      = "I couldn't find any methods in this recipe step."
	msgNoTemperature      = "Couldn't find any relevant cooking temperature information."
	msgNoTime             = "Couldn't find any relevant cooking time information."
	msgNoSubstitute       = "Ingredient not found, sorry!"

	referencePrefix = "I found a reference for you: "
	videoPrefix     = "Here's a video search that might help: "

	// FallbackText is returned when no rule accepts the query.
	FallbackText = "Sorry, I didn't understand that.\n\n" +
		"I can:\n" +
		"- show ingredients\n" +
		"- show the full recipe\n" +
		"- start recipe walkthrough (start)\n" +
		"- show step <number>\n" +
		"- answer \"how much <ingredient> do I need?\"\n" +
		"- answer \"what is X?\" and \"how do I X?\" with helpful links."
)
