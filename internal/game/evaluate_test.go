package game

import (
	"slices"
	"testing"
)

const (
	C = VerdictCorrect
	P = VerdictPresent
	A = VerdictAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  Word
		answer Word
		want   []Verdict
	}{
		{"exact match", "CRANE", "CRANE", []Verdict{C, C, C, C, C}},
		{"disjoint letters", "BUMPY", "CRANE", []Verdict{A, A, A, A, A}},
		{"duplicate guess letter single answer letter", "SPEED", "ABIDE", []Verdict{A, A, P, A, P}},
		{"correct consumes before present", "EERIE", "THREE", []Verdict{P, A, C, A, C}},
		{"shared letters in place", "SLATE", "CRANE", []Verdict{A, A, C, A, C}},
		{"all present rotated", "ACRNE", "CRANE", []Verdict{P, P, P, C, C}},
		{"repeated answer letter both found", "LLAMA", "ALLOW", []Verdict{P, C, P, A, A}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.answer)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Evaluate(%s, %s) = %v, want %v", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluate_DuplicateLetterCountedOnce(t *testing.T) {
	got := Evaluate("SPEED", "ABIDE")
	var present int
	for i, v := range got {
		if (i == 2 || i == 3) && v == VerdictPresent {
			present++
		}
	}
	if present != 1 {
		t.Fatalf("want exactly one E present, got %d (%v)", present, got)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first := Evaluate("ROBOT", "FLOOR")
	second := Evaluate("ROBOT", "FLOOR")
	if !slices.Equal(first, second) {
		t.Fatalf("non-deterministic: %v vs %v", first, second)
	}
}

func TestEvaluate_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Evaluate("CRAN", "CRANE")
}
