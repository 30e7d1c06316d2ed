package game

import "strings"

// History is the set of words played this session, in play order.
// Words never repeat within a session.
type History struct {
	words []string
	set   map[string]struct{}
}

func NewHistory() *History {
	return &History{set: map[string]struct{}{}}
}

func (h *History) Add(word string) {
	word = strings.ToUpper(word)
	if _, ok := h.set[word]; ok {
		return
	}
	h.set[word] = struct{}{}
	h.words = append(h.words, word)
}

func (h *History) Contains(word string) bool {
	_, ok := h.set[strings.ToUpper(word)]
	return ok
}

// Words returns the played words in order. The returned slice is a copy.
func (h *History) Words() []string {
	return append([]string(nil), h.words...)
}

func (h *History) Len() int {
	return len(h.words)
}
