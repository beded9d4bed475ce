// internal/words/words.go
//
// Provides the answer word list for the game engine.
//
// Responsibilities:
//   - Normalize raw word lists (trim, uppercase, keep only 5-letter A-Z words).
//   - Load answers from the embedded default, a plain-text file, or SQLite.
//   - Draw answers uniformly at random (game.AnswerSource).
//
// Sources (Load):
//  1. WORDS_DB set: open the SQLite database, seeding it from the embedded
//     list on first use.
//  2. WORDS_ANSWERS_FILE set: read one word per line from that file.
//  3. Otherwise: the embedded list compiled in from assets/answers.txt.
//
// WORDS_MODE=daily wraps the loaded list in a Daily provider.
//
// An empty list is a fatal configuration error (ErrEmptyList).

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-clone/assets"
	"github.com/robalobadob/wordle/apps/go-clone/internal/config"
	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

// ErrEmptyList is returned when no valid answers could be loaded.
var ErrEmptyList = errors.New("words: answers list is empty")

// List is an immutable, deduplicated set of candidate answers.
type List struct {
	words []game.Word
}

// NewList normalizes raw lines into a List.
// Blank lines, '#' comments and anything that is not exactly
// game.AnswerLength letters are dropped.
func NewList(raw []string) (*List, error) {
	seen := make(map[game.Word]struct{}, len(raw))
	out := make([]game.Word, 0, len(raw))
	for _, line := range raw {
		w, ok := normalize(line)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return &List{words: out}, nil
}

// normalize trims and uppercases one line, reporting whether it is a word.
func normalize(line string) (game.Word, bool) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return "", false
	}
	s = strings.ToUpper(s)
	if !game.IsWord(s) {
		return "", false
	}
	return game.Word(s), true
}

// Len returns the number of answers.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the answers in load order.
func (l *List) Words() []game.Word { return slices.Clone(l.words) }

// At returns the i-th answer.
func (l *List) At(i int) game.Word { return l.words[i] }

// PickRandomAnswer returns a cryptographically random answer.
func (l *List) PickRandomAnswer() (game.Word, error) {
	if l == nil || len(l.words) == 0 {
		return "", ErrEmptyList
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return l.words[n.Int64()], nil
}

// FromEmbedded loads the compiled-in default list.
func FromEmbedded() (*List, error) {
	raw, err := assets.AnswersList()
	if err != nil {
		return nil, fmt.Errorf("words: read embedded list: %w", err)
	}
	return NewList(raw)
}

// FromFile loads one word per line from path.
func FromFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return NewList(raw)
}

// Load builds the answer source described by cfg.
func Load(ctx context.Context, cfg config.Words) (game.AnswerSource, error) {
	var (
		list   *List
		err    error
		origin string
	)
	switch {
	case cfg.DB != "":
		origin = cfg.DB
		list, err = FromSQLite(ctx, cfg.DB)
	case cfg.AnswersFile != "":
		origin = cfg.AnswersFile
		list, err = FromFile(cfg.AnswersFile)
	default:
		origin = "embedded"
		list, err = FromEmbedded()
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", origin).Int("answers", list.Len()).Str("mode", cfg.Mode).Msg("word list loaded")

	if cfg.Mode == config.ModeDaily {
		return NewDaily(list, cfg.DailySalt), nil
	}
	return list, nil
}
