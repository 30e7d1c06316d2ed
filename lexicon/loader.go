package lexicon

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Load reads a word list for the named lexicon from lexiconPath. It
// looks for <name>.txt (newline-delimited words) and then <name>.zip (a
// zip archive whose first .txt member is the word list, the format the
// original distribution ships its dictionary in).
func Load(name, lexiconPath string) (*Set, error) {
	txtPath := filepath.Join(lexiconPath, name+".txt")
	if _, err := os.Stat(txtPath); err == nil {
		return LoadFile(name, txtPath)
	}
	zipPath := filepath.Join(lexiconPath, name+".zip")
	if _, err := os.Stat(zipPath); err == nil {
		return LoadZip(name, zipPath)
	}
	return nil, fmt.Errorf("no word list found for lexicon %v in %v", name, lexiconPath)
}

// LoadFile reads a newline-delimited word list.
func LoadFile(name, path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fromReader(name, path, f)
}

// LoadZip reads a word list out of a zip archive. The first member
// whose name ends in .txt is taken to be the list.
func LoadZip(name, path string) (*Set, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	for _, zf := range r.File {
		if !strings.HasSuffix(zf.Name, ".txt") {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return fromReader(name, path, rc)
	}
	return nil, fmt.Errorf("no .txt word list inside %v", path)
}

func fromReader(name, path string, r io.Reader) (*Set, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	lex := NewSet(name, words)
	if lex.Size() == 0 {
		return nil, fmt.Errorf("word list %v is empty", path)
	}
	log.Debug().Str("lexicon", name).Str("path", path).Int("words", lex.Size()).
		Msg("loaded word list")
	return lex, nil
}
