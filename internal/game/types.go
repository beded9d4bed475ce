// internal/game/types.go
//
// Core type definitions for the word-guessing game.
// Defines:
//   - Word: a fixed-length uppercase answer or submitted guess.
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Status: in_progress, won or lost.
//   - Event: the abstract inputs the state machine consumes.
//   - State: the aggregate root for a single game.

package game

// Board dimensions.
const (
	AnswerLength = 5 // letters per word
	MaxGuesses   = 6 // rows on the board
)

// Word is a sequence of exactly AnswerLength uppercase ASCII letters.
type Word string

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the answer at that exact position.
//   - "present": letter exists in the answer but at a different position.
//   - "absent":  letter has no unconsumed occurrence left in the answer.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
)

// Status is the coarse lifecycle of a game. Won and Lost are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// EventKind enumerates the inputs accepted by Apply.
type EventKind int

const (
	EventCharacter EventKind = iota + 1
	EventDelete
	EventSubmit
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventCharacter:
		return "character"
	case EventDelete:
		return "delete"
	case EventSubmit:
		return "submit"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is one abstract input. Char is only meaningful for EventCharacter.
type Event struct {
	Kind EventKind
	Char rune
}

func CharacterEvent(ch rune) Event { return Event{Kind: EventCharacter, Char: ch} }
func DeleteEvent() Event { return Event{Kind: EventDelete} }
func SubmitEvent() Event { return Event{Kind: EventSubmit} }
func ResetEvent() Event { return Event{Kind: EventReset} }

// AnswerSource supplies fresh answers on game start and reset.
// Implementations must fail when they have nothing to draw from.
type AnswerSource interface {
	PickRandomAnswer() (Word, error)
}

// State holds a single game. It is treated as an immutable value:
// Apply returns a new State and never writes through the receiver's slices.
type State struct {
	Answer  Word   // hidden target
	History []Word // submitted guesses, oldest first (at most MaxGuesses)
	Active  string // in-progress guess buffer (at most AnswerLength letters)
	Status  Status
}
