package query

import (
	"testing"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/filter"
)

func TestInterpret_Palindromic(t *testing.T) {
	set, ok := Interpret("show me palindromic strings")
	if !ok {
		t.Fatal("Interpret returned no match")
	}
	if set.IsPalindrome == nil || !*set.IsPalindrome {
		t.Error("IsPalindrome not set to true")
	}
	if set.WordCount != nil || set.MinLength != nil || set.ContainsCharacter != nil {
		t.Error("unrelated filters were set")
	}
}

func TestInterpret_SingleWord(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
	}{
		{name: "single word", phrase: "single word entries"},
		{name: "one word", phrase: "strings with one word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := Interpret(tt.phrase)
			if !ok {
				t.Fatal("Interpret returned no match")
			}
			if set.WordCount == nil || *set.WordCount != 1 {
				t.Error("WordCount not set to 1")
			}
		})
	}
}

func TestInterpret_LongerThan(t *testing.T) {
	set, ok := Interpret("strings longer than 10 characters")
	if !ok {
		t.Fatal("Interpret returned no match")
	}
	// Strictly greater than 10 means an inclusive minimum of 11
	if set.MinLength == nil || *set.MinLength != 11 {
		t.Errorf("MinLength = %v, want 11", set.MinLength)
	}
}

func TestInterpret_ContainingLetter(t *testing.T) {
	set, ok := Interpret("strings containing the letter z")
	if !ok {
		t.Fatal("Interpret returned no match")
	}
	if set.ContainsCharacter == nil || *set.ContainsCharacter != "z" {
		t.Errorf("ContainsCharacter = %v, want z", set.ContainsCharacter)
	}
}

func TestInterpret_CaseInsensitive(t *testing.T) {
	set, ok := Interpret("PALINDROMIC strings LONGER THAN 5")
	if !ok {
		t.Fatal("Interpret returned no match")
	}
	if set.IsPalindrome == nil || !*set.IsPalindrome {
		t.Error("IsPalindrome not set")
	}
	if set.MinLength == nil || *set.MinLength != 6 {
		t.Errorf("MinLength = %v, want 6", set.MinLength)
	}
}

func TestInterpret_MultiplePatterns(t *testing.T) {
	set, ok := Interpret("single word palindromic strings")
	if !ok {
		t.Fatal("Interpret returned no match")
	}
	if set.IsPalindrome == nil || !*set.IsPalindrome {
		t.Error("IsPalindrome not set")
	}
	if set.WordCount == nil || *set.WordCount != 1 {
		t.Error("WordCount not set to 1")
	}
}

func TestInterpret_NoMatch(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
	}{
		{name: "unrelated word", phrase: "banana"},
		{name: "empty phrase", phrase: ""},
		{name: "longer than without number", phrase: "longer than some amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := Interpret(tt.phrase)
			if ok {
				t.Errorf("Interpret(%q) matched, want no match (set: %+v)", tt.phrase, set)
			}
			if set != nil {
				t.Errorf("set = %+v, want nil on no match", set)
			}
		})
	}
}

// Interpreted sets must behave identically to hand-built ones when applied.
func TestInterpret_EquivalentToStructuredPath(t *testing.T) {
	input := []*analyze.Analysis{
		analyze.Analyze("racecar"),
		analyze.Analyze("race car"),
		analyze.Analyze("hello"),
	}

	interpreted, ok := Interpret("single word palindromic strings")
	if !ok {
		t.Fatal("Interpret returned no match")
	}

	palindrome := true
	one := 1
	manual := &filter.Set{IsPalindrome: &palindrome, WordCount: &one}

	got := filter.Apply(interpreted, input)
	want := filter.Apply(manual, input)

	if len(got) != len(want) {
		t.Fatalf("interpreted path returned %d records, structured path %d", len(got), len(want))
	}
	for i := range got {
		if got[i].ID != want[i].ID {
			t.Errorf("result %d differs: %q vs %q", i, got[i].Value, want[i].Value)
		}
	}
	if len(got) != 1 || got[0].Value != "racecar" {
		t.Errorf("unexpected result set: %+v", got)
	}
}
