package game

import "testing"

func TestRows(t *testing.T) {
	s, src := newGame(t, "CRANE")
	s = play(t, src, s, guess("SLATE")...)
	s = play(t, src, s, CharacterEvent('C'), CharacterEvent('R'))

	rows := s.Rows()
	if len(rows) != MaxGuesses {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	if !rows[0].Revealed || rows[0].Guess != "SLATE" || len(rows[0].Verdicts) != AnswerLength {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Revealed || !rows[1].Current || rows[1].Guess != "CR" || rows[1].Verdicts != nil {
		t.Errorf("active row should be shown unrevealed, got %+v", rows[1])
	}
	for i := 2; i < MaxGuesses; i++ {
		if rows[i].Guess != "" || rows[i].Current || rows[i].Revealed {
			t.Errorf("row %d should be untouched, got %+v", i, rows[i])
		}
	}
}

func TestCurrentRow(t *testing.T) {
	s, src := newGame(t, "CRANE")
	if s.CurrentRow() != 0 {
		t.Fatalf("CurrentRow = %d, want 0", s.CurrentRow())
	}
	s = play(t, src, s, guess("SLATE")...)
	if s.CurrentRow() != 1 {
		t.Fatalf("CurrentRow = %d, want 1", s.CurrentRow())
	}
}

func TestBanner(t *testing.T) {
	s, src := newGame(t, "CRANE")
	if s.Banner() != "" {
		t.Fatalf("Banner = %q while in progress", s.Banner())
	}
	s = play(t, src, s, guess("CRANE")...)
	if s.Banner() != "You've got it!" {
		t.Fatalf("Banner = %q", s.Banner())
	}
}
