package validate

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// suggest returns the known name closest to input, or "" when nothing is
// plausibly close. Matching is subsequence-based in both directions so a
// truncated name and a name with stray characters both produce a hint.
func suggest(input string, known []string) string {
	if matches := fuzzy.Find(input, known); len(matches) > 0 {
		return matches[0].Str
	}
	for _, k := range known {
		if len(fuzzy.Find(k, []string{input})) > 0 {
			return k
		}
	}
	return ""
}

// didYouMean formats the suggestion as a message suffix, empty when
// there is nothing to suggest.
func didYouMean(input string, known []string) string {
	if s := suggest(input, known); s != "" {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
