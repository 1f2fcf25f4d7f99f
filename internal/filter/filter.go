package filter

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hpungsan/sift/internal/analyze"
)

// Set is a validated group of predicates applied conjunctively to stored
// records. Nil fields impose no constraint. A Set is transient: built per
// request, never persisted.
type Set struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether the set carries no constraints.
func (s *Set) IsEmpty() bool {
	return s.IsPalindrome == nil &&
		s.MinLength == nil &&
		s.MaxLength == nil &&
		s.WordCount == nil &&
		s.ContainsCharacter == nil
}

// Validate builds a Set from raw query parameters. Every rule is checked and
// every failure collected; callers receive the full list of problems, never
// just the first. A nil problem slice means the set is valid.
func Validate(params url.Values) (*Set, []string) {
	set := &Set{}
	var problems []string

	if raw := params.Get("is_palindrome"); raw != "" {
		switch raw {
		case "true":
			v := true
			set.IsPalindrome = &v
		case "false":
			v := false
			set.IsPalindrome = &v
		default:
			problems = append(problems, `is_palindrome must be "true" or "false"`)
		}
	}

	set.MinLength = parseCount(params, "min_length", &problems)
	set.MaxLength = parseCount(params, "max_length", &problems)
	set.WordCount = parseCount(params, "word_count", &problems)

	if raw := params.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) != 1 {
			problems = append(problems, "contains_character must be a single character")
		} else {
			set.ContainsCharacter = &raw
		}
	}

	// Cross-field rule, reported in addition to any per-field problems
	if set.MinLength != nil && set.MaxLength != nil && *set.MinLength > *set.MaxLength {
		problems = append(problems, "min_length must not be greater than max_length")
	}

	if problems != nil {
		return nil, problems
	}
	return set, nil
}

// parseCount parses a base-10 non-negative integer parameter, appending a
// problem message on failure.
func parseCount(params url.Values, name string, problems *[]string) *int {
	raw := params.Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*problems = append(*problems, name+" must be a non-negative integer")
		return nil
	}
	return &n
}

// Apply returns the subset of records satisfying every constraint in the set.
// Constraints are AND-combined in a single pass; an empty set returns the
// input unchanged.
func Apply(set *Set, records []*analyze.Analysis) []*analyze.Analysis {
	if set == nil || set.IsEmpty() {
		return records
	}

	matched := make([]*analyze.Analysis, 0, len(records))
	for _, r := range records {
		if matches(set, r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// matches reports whether a single record satisfies every present constraint.
func matches(set *Set, r *analyze.Analysis) bool {
	if set.IsPalindrome != nil && r.Properties.IsPalindrome != *set.IsPalindrome {
		return false
	}
	if set.MinLength != nil && r.Properties.Length < *set.MinLength {
		return false
	}
	if set.MaxLength != nil && r.Properties.Length > *set.MaxLength {
		return false
	}
	if set.WordCount != nil && r.Properties.WordCount != *set.WordCount {
		return false
	}
	// Substring membership on the raw value, case-sensitive — not a
	// frequency-map lookup
	if set.ContainsCharacter != nil && !strings.Contains(r.Value, *set.ContainsCharacter) {
		return false
	}
	return true
}
