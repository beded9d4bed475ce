// internal/game/engine.go
//
// Transition machine for a single game.
// Responsibilities:
//   - Create games by drawing an answer from an AnswerSource.
//   - Accumulate keyboard input into the active guess.
//   - Submit full guesses into history and resolve won/lost.
//   - Reset to a freshly drawn game from any state.
//
// Notes:
//   - Invalid events are no-ops, never errors. The only error channel is the
//     AnswerSource failing on New/Reset.
//   - Win is checked before guess exhaustion, so a correct sixth guess wins.
package game

import (
	"fmt"
	"slices"
	"strings"
)

// New draws an answer from src and returns an empty in-progress game.
func New(src AnswerSource) (State, error) {
	ans, err := src.PickRandomAnswer()
	if err != nil {
		return State{}, fmt.Errorf("draw answer: %w", err)
	}
	if !IsWord(string(ans)) {
		return State{}, fmt.Errorf("draw answer: %q is not a %d-letter word", ans, AnswerLength)
	}
	return State{Answer: ans, History: []Word{}, Status: StatusInProgress}, nil
}

// Apply consumes one event and returns the resulting state.
// src is only consulted for EventReset. On error the input state is returned
// unchanged so callers can keep using it.
func Apply(src AnswerSource, s State, ev Event) (State, error) {
	switch ev.Kind {
	case EventCharacter:
		return s.typeChar(ev.Char), nil
	case EventDelete:
		return s.deleteChar(), nil
	case EventSubmit:
		return s.submit(), nil
	case EventReset:
		next, err := New(src)
		if err != nil {
			return s, err
		}
		return next, nil
	}
	return s, nil
}

func (s State) typeChar(ch rune) State {
	if s.Status != StatusInProgress || !isLetter(ch) || len(s.Active) >= AnswerLength {
		return s
	}
	s.Active += strings.ToUpper(string(ch))
	return s
}

func (s State) deleteChar() State {
	if s.Status != StatusInProgress || len(s.Active) == 0 {
		return s
	}
	s.Active = s.Active[:len(s.Active)-1]
	return s
}

func (s State) submit() State {
	if s.Status != StatusInProgress || len(s.Active) != AnswerLength {
		return s
	}
	if len(s.History) >= MaxGuesses {
		// Unreachable: Lost is set when the last slot fills.
		panic("game: submit with full history while in progress")
	}
	guess := Word(s.Active)

	s.History = append(slices.Clip(s.History), guess)
	s.Active = ""

	switch {
	case guess == s.Answer:
		s.Status = StatusWon
	case len(s.History) == MaxGuesses:
		s.Status = StatusLost
	}
	return s
}

// IsWord reports whether w is exactly AnswerLength uppercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != AnswerLength {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// isLetter reports whether r is an ASCII letter in either case.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
