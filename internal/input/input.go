// Package input turns raw key names into game events.
//
// Key names follow the browser KeyboardEvent.key convention ("Enter",
// "Backspace", "a"). Anything that is not a letter, submit or delete is
// filtered out here and never reaches the state machine.
package input

import (
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

// FromKey maps a single key name to an event. ok is false for keys the
// game does not care about.
func FromKey(key string) (ev game.Event, ok bool) {
	switch strings.ToLower(key) {
	case "enter", "return":
		return game.SubmitEvent(), true
	case "backspace", "delete":
		return game.DeleteEvent(), true
	}
	if utf8.RuneCountInString(key) != 1 {
		return game.Event{}, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return game.CharacterEvent(r), true
	}
	return game.Event{}, false
}

// FromKeys maps keys in order, dropping the ones FromKey rejects.
func FromKeys(keys []string) []game.Event {
	out := make([]game.Event, 0, len(keys))
	for _, k := range keys {
		if ev, ok := FromKey(k); ok {
			out = append(out, ev)
		}
	}
	return out
}
