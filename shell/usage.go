package shell

import "io"

const instructions = `Fill the grid with words. One point per letter in each word.

Each word MUST:
* Start with the last letter of the previous word
* Be in the dictionary
* Fit on the grid
* Not clash with letters already on the grid
* Not repeat

The first letter is chosen for you, at a spot on the grid that is the
same for everyone today. Words read North, South, East or West from the
end of the previous word, and may overlap other words.`

const usageText = `Commands:
  <word> <direction>        play a word from the current anchor
                            (direction is one of n, s, e, w)
  place <row,col> <word> <direction>
                            play a word from an explicit cell
  show (or s, or enter)     show the grid
  score                     show the score
  words                     list the words played so far
  new [daily|random]        start a new game (daily is the default)
  help                      this message
  exit (or bye, or q)       quit
`

func usage(w io.Writer) {
	showMessage(usageText, w)
}
