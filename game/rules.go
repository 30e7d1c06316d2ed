package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wordgridgame/wordgrid/board"
	"github.com/wordgridgame/wordgrid/lexicon"
	"github.com/wordgridgame/wordgrid/move"
)

// RejectionReason is why a placement was not accepted. This is a closed
// set; every rejection is recoverable and the caller just prompts again.
type RejectionReason int

const (
	// LinkMismatch - the word does not start with the previous word's
	// last letter.
	LinkMismatch RejectionReason = iota
	// NotInDictionary - the word is not in the lexicon.
	NotInDictionary
	// AlreadyUsed - the word was already played this session.
	AlreadyUsed
	// OutOfBounds - the word's path leaves the grid.
	OutOfBounds
	// LetterClash - the path crosses a square holding a different letter.
	LetterClash
)

func (r RejectionReason) String() string {
	switch r {
	case LinkMismatch:
		return "LinkMismatch"
	case NotInDictionary:
		return "NotInDictionary"
	case AlreadyUsed:
		return "AlreadyUsed"
	case OutOfBounds:
		return "OutOfBounds"
	case LetterClash:
		return "LetterClash"
	}
	return "Unknown"
}

// A RejectionError is a rejected placement. It wraps the reason with a
// message suitable for showing to the player.
type RejectionError struct {
	Reason RejectionReason
	msg    string
}

func (e *RejectionError) Error() string {
	return e.msg
}

func reject(reason RejectionReason, format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: reason, msg: fmt.Sprintf(format, args...)}
}

// AttemptPlacement checks a candidate word against the grid, the session
// history, and the link letter, in a fixed order; the first violated
// rule determines the rejection. required is 0 when there is no link
// constraint (before any letter is on the board). On success it returns
// the resolved placement - the ordered cells to write, including cells
// already correctly occupied - and mutates nothing; the caller commits.
func AttemptPlacement(grid *board.Grid, hist *History, required rune,
	word string, start move.Cell, dir move.Direction,
	lex lexicon.Lexicon) (*move.Placement, error) {

	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return nil, fmt.Errorf("word must not be empty")
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%v is not a word; letters only", word)
		}
	}

	if required != 0 && rune(word[0]) != unicode.ToUpper(required) {
		return nil, reject(LinkMismatch, "%v does not start with %c", word, unicode.ToUpper(required))
	}
	if !lex.HasWord(word) {
		return nil, reject(NotInDictionary, "%v is not in the dictionary", word)
	}
	if hist.Contains(word) {
		return nil, reject(AlreadyUsed, "%v was already played", word)
	}

	p := move.NewPlacement(word, start, dir)
	for _, c := range p.Cells() {
		if !grid.InBounds(c) {
			return nil, reject(OutOfBounds, "%v falls outside of the grid", word)
		}
	}
	for i, c := range p.Cells() {
		sq := grid.GetSquare(c)
		if !sq.IsEmpty() && sq.Letter() != rune(word[i]) {
			return nil, reject(LetterClash, "%v clashes with %c at %v", word, sq.Letter(), c)
		}
	}
	return p, nil
}
