package game

// Row is one line of the board as the presentation layer sees it.
type Row struct {
	Guess    string    `json:"guess"`              // submitted text, active text, or ""
	Verdicts []Verdict `json:"verdicts,omitempty"` // only for submitted rows
	Revealed bool      `json:"revealed"`
	Current  bool      `json:"current"`
}

// CurrentRow returns the lowest empty history slot, or -1 when every slot
// has been used.
func (s State) CurrentRow() int {
	if len(s.History) >= MaxGuesses {
		return -1
	}
	return len(s.History)
}

// Verdicts recomputes the verdicts for history entry i.
func (s State) Verdicts(i int) []Verdict {
	return Evaluate(s.History[i], s.Answer)
}

// Rows derives MaxGuesses rows for rendering. The active guess is shown on
// the current row but never revealed.
func (s State) Rows() []Row {
	rows := make([]Row, MaxGuesses)
	cur := s.CurrentRow()
	for i := range rows {
		switch {
		case i < len(s.History):
			rows[i] = Row{Guess: string(s.History[i]), Verdicts: s.Verdicts(i), Revealed: true}
		case i == cur:
			rows[i] = Row{Guess: s.Active, Current: true}
		}
	}
	return rows
}

// Banner is the end-of-game message, empty while the game is running.
func (s State) Banner() string {
	switch s.Status {
	case StatusWon:
		return "You've got it!"
	case StatusLost:
		return "No luck today :("
	}
	return ""
}
