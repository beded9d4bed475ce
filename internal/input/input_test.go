package input

import (
	"testing"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want game.Event
		ok   bool
	}{
		{"Enter", game.SubmitEvent(), true},
		{"Backspace", game.DeleteEvent(), true},
		{"Delete", game.DeleteEvent(), true},
		{"a", game.CharacterEvent('a'), true},
		{"Z", game.CharacterEvent('Z'), true},
		{"1", game.Event{}, false},
		{" ", game.Event{}, false},
		{"Shift", game.Event{}, false},
		{"ArrowLeft", game.Event{}, false},
		{"ß", game.Event{}, false},
		{"", game.Event{}, false},
	}
	for _, tt := range tests {
		got, ok := FromKey(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromKey(%q) = %+v, %v; want %+v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromKeys_PreservesOrder(t *testing.T) {
	got := FromKeys([]string{"c", "Shift", "R", "Backspace", "Enter"})
	want := []game.Event{
		game.CharacterEvent('c'),
		game.CharacterEvent('R'),
		game.DeleteEvent(),
		game.SubmitEvent(),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
