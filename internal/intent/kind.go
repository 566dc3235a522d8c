package intent

// Kind names a query category.
type Kind string

const (
	KindShowIngredients Kind = "show-ingredients"
	KindShowRecipe      Kind = "show-full-recipe"
	KindBegin           Kind = "begin-walkthrough"
	KindAdvance         Kind = "advance"
	KindRetreat         Kind = "retreat"
	KindJumpToStep      Kind = "jump-to-step-number"
	KindRepeat          Kind = "repeat-current"
	KindHowMuch         Kind = "how-much"
	KindWhatIs          Kind = "what-is"
	KindHowDoI          Kind = "how-do-i"
	KindTemperature     Kind = "cooking-temperature"
	KindTime            Kind = "cooking-time"
	KindSubstitution    Kind = "substitution"
	KindFallback        Kind = "fallback"
)

// Navigates reports whether the category moves or re-reads the step cursor.
func (k Kind) Navigates() bool {
	switch k {
	case KindBegin, KindAdvance, KindRetreat, KindJumpToStep, KindRepeat:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
