package intent

import (
	"regexp"
	"strings"
)

// CookingActions are the verbs a time question can be narrowed by, in the
// order they are tried.
var CookingActions = []string{
	"bake", "roast", "broil", "grill", "toast", "sear",
	"boil", "simmer", "poach", "steam", "blanch", "parboil", "cook",
	"fry", "deep-fry", "pan-fry", "saute", "sautee", "stir-fry",
	"braise", "stew", "microwave", "smoke", "char", "caramelize", "reduce",
}

var (
	actionPatterns  = compileActions(CookingActions)
	durationPattern = regexp.MustCompile(`\d+\s*(?:minutes|minute|hours|hour)`)
	timeWordPattern = regexp.MustCompile(`\b(?:how long|time|ready|done)\b`)
)

// MentionsTemperature reports whether the query asks about heat.
func MentionsTemperature(q string) bool {
	return containsAny(q, "temp", "temperature", "heat", "when is it done", "degree")
}

// StepMentionsTemperature reports whether a step description carries
// temperature information.
func StepMentionsTemperature(description string) bool {
	return containsAny(strings.ToLower(description), "degree", "°", "preheat", "oven", "heat to")
}

// MentionsTime reports whether the query asks about duration or doneness.
func MentionsTime(q string) bool {
	return containsAny(q, "how long", "time", "minutes", "hours", "hour", "minute", "cook for", "bake for", "done", "ready")
}

// CookingAction returns the first cooking verb, in CookingActions order,
// that appears as a whole word in the query.
func CookingAction(q string) (string, bool) {
	for i, p := range actionPatterns {
		if p.MatchString(q) {
			return CookingActions[i], true
		}
	}
	return "", false
}

// StepMentionsTime reports whether a step description carries a duration or
// a doneness cue.
func StepMentionsTime(description string) bool {
	d := strings.ToLower(description)
	return durationPattern.MatchString(d) || timeWordPattern.MatchString(d)
}

func compileActions(actions []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(actions))
	for _, a := range actions {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(a)+`\b`))
	}
	return out
}
