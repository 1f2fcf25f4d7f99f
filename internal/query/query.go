package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hpungsan/sift/internal/filter"
)

// rule is one recognized phrase pattern. Rules are independent: several may
// match the same phrase and each contributes its fragment to the same set.
// New phrases are new entries here, not new branching logic.
type rule struct {
	name  string
	apply func(phrase string, set *filter.Set) bool
}

var (
	longerThanRe = regexp.MustCompile(`longer than (\d+)`)
	letterRe     = regexp.MustCompile(`containing the letter (\w)`)
)

var rules = []rule{
	{
		name: "palindromic",
		apply: func(phrase string, set *filter.Set) bool {
			if !strings.Contains(phrase, "palindromic") {
				return false
			}
			v := true
			set.IsPalindrome = &v
			return true
		},
	},
	{
		name: "single word",
		apply: func(phrase string, set *filter.Set) bool {
			if !strings.Contains(phrase, "single word") && !strings.Contains(phrase, "one word") {
				return false
			}
			v := 1
			set.WordCount = &v
			return true
		},
	},
	{
		name: "longer than N",
		apply: func(phrase string, set *filter.Set) bool {
			m := longerThanRe.FindStringSubmatch(phrase)
			if m == nil {
				return false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return false
			}
			// "longer than N" is strict, min_length is inclusive
			v := n + 1
			set.MinLength = &v
			return true
		},
	},
	{
		name: "containing the letter c",
		apply: func(phrase string, set *filter.Set) bool {
			m := letterRe.FindStringSubmatch(phrase)
			if m == nil {
				return false
			}
			ch := m[1]
			set.ContainsCharacter = &ch
			return true
		},
	},
}

// Interpret translates a free-text phrase into a filter set by matching it
// against the recognized patterns, case-insensitively. All matching rules
// contribute to the result. The second return is false when no pattern
// matched, signalling an unparseable query. Emitted sets are already valid,
// so callers hand them straight to filter.Apply without re-validation.
func Interpret(phrase string) (*filter.Set, bool) {
	normalized := strings.ToLower(phrase)

	set := &filter.Set{}
	matched := false
	for _, r := range rules {
		if r.apply(normalized, set) {
			matched = true
		}
	}

	if !matched {
		return nil, false
	}
	return set, true
}
