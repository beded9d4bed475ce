package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
	"github.com/robalobadob/wordle/apps/go-clone/internal/session"
)

type oneWord game.Word

func (w oneWord) PickRandomAnswer() (game.Word, error) { return game.Word(w), nil }

func newSession(t *testing.T, id string) *session.Session {
	t.Helper()
	s, err := session.New(id, oneWord("CRANE"))
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing err = %v, want ErrNotFound", err)
	}

	s := newSession(t, "a")
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, "a")
	if err != nil || got != s {
		t.Fatalf("Get = %v, %v", got, err)
	}

	if err := st.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete err = %v", err)
	}
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Save(ctx, newSession(t, "old"))

	if n := st.Sweep(ctx, time.Now().Add(-time.Hour)); n != 0 {
		t.Fatalf("Sweep removed %d fresh sessions", n)
	}
	if n := st.Sweep(ctx, time.Now().Add(time.Second)); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, err := st.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("swept session still present: %v", err)
	}
}
