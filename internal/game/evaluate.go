package game

import "fmt"

// Evaluate scores guess against answer using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (non-correct) answer letters.
//
// Pass 2:
//   - For each non-correct guess letter: if an unconsumed occurrence remains,
//     mark Present and consume it; otherwise mark Absent.
//
// A guess with a repeated letter therefore never earns more Present/Correct
// marks for that letter than the answer contains.
//
// Both words must have the same length; anything else is a caller bug and
// panics.
func Evaluate(guess, answer Word) []Verdict {
	if len(guess) != len(answer) {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, answer))
	}
	n := len(guess)
	out := make([]Verdict, n)

	// Letter frequency for the non-correct answer positions (A-Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = VerdictCorrect
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == VerdictCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			out[i] = VerdictPresent
			counts[j]--
		} else {
			out[i] = VerdictAbsent
		}
	}
	return out
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
