// Package dictionary loads the word list used by Word Tic-Tac-Toe.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

const dataDir = "tictactoe-hub"

// Lookup reports whether a candidate, read forward or reversed, is a known word.
type Lookup interface {
	Contains(candidate string) bool
}

// Words is an upper-case word set. It is read-only once loaded.
type Words struct {
	set map[string]struct{}
}

func New(words ...string) *Words {
	that := &Words{set: make(map[string]struct{}, len(words))}
	for _, word := range words {
		that.add(word)
	}

	return that
}

// Load reads a newline delimited word list.
func Load(r io.Reader) (*Words, error) {
	that := New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		that.add(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	if that.Len() == 0 {
		return nil, apperror.ErrEmptyDictionary
	}

	return that, nil
}

// LoadFile resolves path (working directory first, then the XDG data dirs) and loads it.
func LoadFile(path string) (*Words, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", resolved, err)
	}
	defer file.Close()

	words, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", resolved, err)
	}

	return words, nil
}

// Resolve finds the dictionary file on disk.
func Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}

	if !filepath.IsAbs(path) {
		if found, err := xdg.SearchDataFile(filepath.Join(dataDir, path)); err == nil {
			return found, nil
		}
	}

	return "", fmt.Errorf("%w: %s", apperror.ErrDictionaryNotFound, path)
}

func (that *Words) Contains(candidate string) bool {
	candidate = strings.ToUpper(candidate)
	if _, ok := that.set[candidate]; ok {
		return true
	}

	_, ok := that.set[reverse(candidate)]

	return ok
}

func (that *Words) Len() int {
	return len(that.set)
}

func (that *Words) add(word string) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word != "" {
		that.set[word] = struct{}{}
	}
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
