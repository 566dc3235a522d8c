package intent

import (
	"regexp"
	"strings"
)

var (
	howMuchVaguePattern = regexp.MustCompile(
		`^(how (much|many))` +
			`(?:\s+of\s+(that|this|it|those|these))?` +
			`(?:\s+(do i need|is needed|are needed))?` +
			`\s*\??$`)
	howMuchPattern    = regexp.MustCompile(`how (?:much|many) (.+?)(?:\s+(?:do (?:i|we)|is|are)\s+(?:need|needed))?[?.]?$`)
	neededClause      = regexp.MustCompile(`\s+(?:do (?:i|we)|is|are)\s+(?:need|needed)`)
	whatsThatPattern  = regexp.MustCompile(`^what(?:'?s| is) that\??$`)
	whatIsPattern     = regexp.MustCompile(`what(?:'?s| is) (.+?)[?.]?$`)
	howThatPattern    = regexp.MustCompile(`^(?:how\??|how do i do (?:that|this|it)\??)$`)
	howDoIPattern     = regexp.MustCompile(`how do (?:i|you) (.+?)[?.]?$`)
	substitutePattern = compileAll(
		`substitute for (.+)`,
		`what can i use instead of (.+)`,
		`what can i substitute for (.+)`,
		`what can i use as a substitute for (.+)`,
		`in place of (.+)`,
		`alternative to (.+)`,
		`replacement for (.+)`,
		`i don'?t have (?:any\s+)?(.+)`,
		`i do not have (?:any\s+)?(.+)`,
		`i'?m out of (.+)`,
		`i am out of (.+)`,
	)
)

// IsHowMuch reports whether the query opens with "how much" or "how many".
func IsHowMuch(q string) bool {
	return strings.HasPrefix(q, "how much") || strings.HasPrefix(q, "how many")
}

// IsVagueHowMuch matches quantity questions that name no ingredient, such as
// "how much do i need?" or "how much of that?".
func IsVagueHowMuch(q string) bool {
	return howMuchVaguePattern.MatchString(q)
}

// HowMuchIngredient extracts the ingredient phrase of "how much X do i need?".
// Questions about time ("how much time ...") are not ingredient questions.
func HowMuchIngredient(q string) (string, bool) {
	m := howMuchPattern.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	phrase := m[1]
	if startsWithWord(phrase, "time") {
		return "", false
	}
	phrase = neededClause.ReplaceAllString(phrase, "")
	phrase = strings.TrimSpace(strings.TrimRight(phrase, "?.,!"))
	if phrase == "" {
		return "", false
	}
	return phrase, true
}

// IsWhatIs reports whether the query opens with "what is", "what's" or "whats".
func IsWhatIs(q string) bool {
	return strings.HasPrefix(q, "what is") || strings.HasPrefix(q, "what's") || strings.HasPrefix(q, "whats")
}

// IsWhatsThat matches "what's that?" with nothing else in the query.
func IsWhatsThat(q string) bool {
	return whatsThatPattern.MatchString(q)
}

// WhatIsTerm extracts X from "what is X?".
func WhatIsTerm(q string) (string, bool) {
	m := whatIsPattern.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	term := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), "?.,!"))
	if term == "" {
		return "", false
	}
	return term, true
}

// IsHow reports whether the query opens with "how".
func IsHow(q string) bool {
	return strings.HasPrefix(q, "how")
}

// IsHowDoIThat matches a bare "how?" or "how do i do that/this/it?".
func IsHowDoIThat(q string) bool {
	return howThatPattern.MatchString(q)
}

// HowDoITask extracts X from "how do i X?".
func HowDoITask(q string) (string, bool) {
	m := howDoIPattern.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	task := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), "?.,!"))
	if task == "" {
		return "", false
	}
	return task, true
}

// SubstitutionTarget extracts the ingredient of a substitution request. The
// second result reports whether any substitution phrasing matched; the
// ingredient may still be empty, as in "i'm out of ?".
func SubstitutionTarget(q string) (string, bool) {
	for _, p := range substitutePattern {
		m := p.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		return strings.Trim(m[len(m)-1], " ?.!"), true
	}
	return "", false
}

func startsWithWord(phrase, word string) bool {
	if !strings.HasPrefix(phrase, word) {
		return false
	}
	if len(phrase) == len(word) {
		return true
	}
	return !isWordByte(phrase[len(word)])
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
