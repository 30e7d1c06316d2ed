package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/wordgridgame/wordgrid/config"
	"github.com/wordgridgame/wordgrid/game"
	"github.com/wordgridgame/wordgrid/lexicon"
	"github.com/wordgridgame/wordgrid/move"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	lex     lexicon.Lexicon
	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController loads the word list and starts today's game. A
// missing word list is the one startup error worth aborting on.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordgrid>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	lex, err := lexicon.Load(cfg.GetString(config.DefaultLexiconKey),
		cfg.GetString(config.LexiconPathKey))
	if err != nil {
		return nil, fmt.Errorf("could not load word list: %w", err)
	}

	sc := &ShellController{l: l, cfg: cfg, lex: lex}
	sc.newGame("daily")
	return sc, nil
}

func (sc *ShellController) newGame(mode string) {
	size := sc.cfg.GetInt(config.GridSizeKey)
	var seed game.Seed
	switch mode {
	case "", "daily":
		seed = game.DailySeed(time.Now(), sc.cfg.GetString(config.DailySaltKey),
			size, size)
	case "random":
		seed = game.RandomSeed(size, size)
	default:
		sc.showError(fmt.Errorf("unknown game mode %q; use daily or random", mode))
		return
	}
	sc.curGame = game.NewGame(size, size, sc.lex, seed)
	sc.setPrompt()
}

func (sc *ShellController) setPrompt() {
	sc.l.SetPrompt(fmt.Sprintf("\033[31mwordgrid\033[0m (score %d, next: %c) > ",
		sc.curGame.Score(), sc.curGame.RequiredStartLetter()))
}

func (sc *ShellController) play(word, dir string) {
	d, err := move.ParseDirection(dir)
	if err != nil {
		sc.showError(err)
		return
	}
	p, err := sc.curGame.Play(word, d)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(fmt.Sprintf("played %v for %d points", p.ShortDescription(),
		len(p.Word())))
	sc.setPrompt()
	sc.showMessage(sc.curGame.ToDisplayText())
}

func (sc *ShellController) playAt(coords, word, dir string) {
	start, err := move.ParseCoords(coords)
	if err != nil {
		sc.showError(err)
		return
	}
	d, err := move.ParseDirection(dir)
	if err != nil {
		sc.showError(err)
		return
	}
	if _, err = sc.curGame.PlayAt(word, start, d); err != nil {
		sc.showError(err)
		return
	}
	sc.setPrompt()
	sc.showMessage(sc.curGame.ToDisplayText())
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	fields := strings.Fields(line)
	switch {
	case line == "" || line == "show" || line == "s":
		sc.showMessage(sc.curGame.ToDisplayText())

	case line == "score":
		sc.showMessage(fmt.Sprintf("Score: %d", sc.curGame.Score()))

	case line == "words":
		words := sc.curGame.History().Words()
		if len(words) == 0 {
			sc.showMessage("no words played yet")
			break
		}
		sc.showMessage(strings.Join(words, " "))

	case fields[0] == "new":
		mode := ""
		if len(fields) > 1 {
			mode = fields[1]
		}
		sc.newGame(mode)
		sc.showMessage(sc.curGame.ToDisplayText())

	case fields[0] == "place":
		if len(fields) != 4 {
			sc.showError(errors.New("usage: place <row,col> <word> <direction>"))
			break
		}
		sc.playAt(fields[1], fields[2], fields[3])

	case line == "bye" || line == "exit" || line == "q":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")

	case strings.HasPrefix(line, "help"):
		usage(sc.l.Stderr())

	case len(fields) == 2:
		// Bare "<word> <direction>" plays from the current anchor.
		sc.play(fields[0], fields[1])

	default:
		sc.showError(fmt.Errorf("unknown command; type `help`"))
	}
	return nil
}

// Loop reads and executes commands until the player quits.
func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	sc.showMessage(instructions)
	sc.showMessage(sc.curGame.ToDisplayText())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.standardModeSwitch(line, sig)
		if err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	// TODO: post the final score to a leaderboard service.
	log.Info().Int("score", sc.curGame.Score()).
		Int("words", sc.curGame.NumTurns()).Msg("final score")
}
