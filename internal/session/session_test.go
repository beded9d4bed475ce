package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

type countingSource struct {
	mu    sync.Mutex
	word  game.Word
	draws int
	err   error
}

func (c *countingSource) PickRandomAnswer() (game.Word, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	c.draws++
	return c.word, nil
}

func typed(w string) []game.Event {
	var evs []game.Event
	for _, r := range w {
		evs = append(evs, game.CharacterEvent(r))
	}
	return append(evs, game.SubmitEvent())
}

func TestNew_SourceError(t *testing.T) {
	boom := errors.New("no words")
	if _, err := New("s1", &countingSource{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestHandleAll(t *testing.T) {
	src := &countingSource{word: "CRANE"}
	s, err := New("s1", src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	st, err := s.HandleAll(append(typed("SLATE"), typed("CRANE")...))
	if err != nil {
		t.Fatalf("HandleAll: %v", err)
	}
	if st.Status != game.StatusWon {
		t.Fatalf("Status = %s, want won", st.Status)
	}
	if snap := s.Snapshot(); snap.Status != game.StatusWon || len(snap.History) != 2 {
		t.Fatalf("Snapshot = %+v", snap)
	}
}

func TestHandle_Reset(t *testing.T) {
	src := &countingSource{word: "CRANE"}
	s, err := New("s1", src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.HandleAll(typed("SLATE")); err != nil {
		t.Fatalf("HandleAll: %v", err)
	}

	st, err := s.Handle(game.ResetEvent())
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if src.draws != 2 {
		t.Fatalf("draws = %d, want 2", src.draws)
	}
	if len(st.History) != 0 || st.Status != game.StatusInProgress {
		t.Fatalf("reset state = %+v", st)
	}
}

func TestHandle_ResetFailureKeepsSnapshot(t *testing.T) {
	src := &countingSource{word: "CRANE"}
	s, err := New("s1", src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.HandleAll(typed("SLATE")); err != nil {
		t.Fatalf("HandleAll: %v", err)
	}

	src.err = errors.New("gone")
	if _, err := s.Handle(game.ResetEvent()); err == nil {
		t.Fatal("expected reset error")
	}
	if snap := s.Snapshot(); len(snap.History) != 1 || snap.Answer != "CRANE" {
		t.Fatalf("snapshot changed after failed reset: %+v", snap)
	}
}

func TestHandle_ConcurrentWritersStayConsistent(t *testing.T) {
	s, err := New("s1", &countingSource{word: "CRANE"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Handle(game.CharacterEvent('A'))
		}()
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			if len(snap.Active) > game.AnswerLength {
				t.Errorf("reader saw oversize buffer %q", snap.Active)
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Active; got != "AAAAA" {
		t.Fatalf("Active = %q, want AAAAA", got)
	}
}
