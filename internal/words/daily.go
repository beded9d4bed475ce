package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

// Daily hands out the same answer to every game started on a UTC day.
// Every call still counts as a draw, so resets within a day repeat the word.
type Daily struct {
	list *List
	salt string
	now  func() time.Time
}

// NewDaily wraps list so the answer is derived from the current date.
func NewDaily(list *List, salt string) *Daily {
	return &Daily{list: list, salt: salt, now: time.Now}
}

// PickRandomAnswer returns today's answer.
func (d *Daily) PickRandomAnswer() (game.Word, error) {
	if d.list == nil || d.list.Len() == 0 {
		return "", ErrEmptyList
	}
	return d.list.At(WordIndex(d.now(), d.salt, d.list.Len())), nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
