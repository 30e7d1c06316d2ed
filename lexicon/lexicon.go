package lexicon

import "strings"

// A Lexicon answers whether a word is valid. Lookups are
// case-insensitive.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll considers every word valid.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}

// A Set is a lexicon backed by an in-memory word set.
type Set struct {
	name  string
	words map[string]struct{}
}

// NewSet builds a set lexicon from a word list. Words are normalized to
// upper case.
func NewSet(name string, words []string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return &Set{name: name, words: m}
}

func (lex *Set) Name() string {
	return lex.name
}

func (lex *Set) HasWord(word string) bool {
	_, ok := lex.words[strings.ToUpper(word)]
	return ok
}

// Size returns the number of words in the set.
func (lex *Set) Size() int {
	return len(lex.words)
}
