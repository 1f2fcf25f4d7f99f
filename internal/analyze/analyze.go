package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"
)

// Properties holds the derived metrics for an analyzed string.
type Properties struct {
	// Length is the character count (runes, not bytes)
	Length int `json:"length"`

	// IsPalindrome is computed on a normalized form: lowercased, all
	// whitespace removed, compared against its own reversal
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters is the count of distinct characters in the raw value
	// (case-sensitive, whitespace included)
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the count of whitespace-delimited non-empty tokens
	WordCount int `json:"word_count"`

	// SHA256Hash duplicates the record ID for API ergonomics
	SHA256Hash string `json:"sha256_hash"`

	// CharacterFrequency maps each distinct character to its occurrence
	// count, whitespace included
	CharacterFrequency map[string]int `json:"character_frequency_map"`
}

// Analysis is an analyzed string record. Records are immutable once created;
// the only lifecycle transitions are creation and deletion.
type Analysis struct {
	// ID is the SHA-256 digest of Value, used as both identity and lookup key
	ID string `json:"id"`

	// Value is the original input, stored verbatim
	Value string `json:"value"`

	Properties Properties `json:"properties"`

	// CreatedAt is the Unix timestamp when the record was inserted
	CreatedAt int64 `json:"created_at"`
}

// Hash returns the SHA-256 hex digest of value. Deterministic and defined for
// every string, including the empty string.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Analyze computes the full set of derived properties for value. Every field
// except CreatedAt is a pure function of the input; the function is total and
// never fails.
func Analyze(value string) *Analysis {
	digest := Hash(value)

	freq := make(map[string]int)
	length := 0
	for _, r := range value {
		freq[string(r)]++
		length++
	}

	return &Analysis{
		ID:    digest,
		Value: value,
		Properties: Properties{
			Length:             length,
			IsPalindrome:       isPalindrome(value),
			UniqueCharacters:   len(freq),
			WordCount:          len(strings.Fields(value)),
			SHA256Hash:         digest,
			CharacterFrequency: freq,
		},
		CreatedAt: time.Now().Unix(),
	}
}

// isPalindrome reports whether the normalized form of value (lowercased, all
// whitespace stripped) reads the same forwards and backwards. The empty
// normalized form is a palindrome.
func isPalindrome(value string) bool {
	normalized := []rune(strings.ToLower(stripWhitespace(value)))
	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}

// stripWhitespace removes every whitespace character from s.
func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
