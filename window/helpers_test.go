package window_test

import (
	"math/rand"

	"github.com/katalvlaran/lvwindow/window"
)

// -----------------------------------------------------------------------------
// Test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet keeps the random cross-checks reproducible.
	seedDet = int64(1)

	// randomRounds is the number of random inputs per cross-check.
	randomRounds = 400

	// maxRandomLen bounds random input length so brute force stays cheap.
	maxRandomLen = 14
)

// alphabet is deliberately small so repeats are frequent.
var alphabet = []byte("abcd")

// randomSeq returns a sequence of length [0, maxLen] over alphabet.
func randomSeq(rng *rand.Rand, maxLen int) []byte {
	n := rng.Intn(maxLen + 1)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}

// -----------------------------------------------------------------------------
// Brute-force oracles. Each returns the smallest start among optimal windows.
// -----------------------------------------------------------------------------

// allDistinct reports whether seq has no repeated symbol.
func allDistinct(seq []byte) bool {
	seen := make(map[byte]bool, len(seq))
	for _, c := range seq {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// replaceCost returns len(seq) minus the count of its most frequent symbol.
func replaceCost(seq []byte) int {
	counts := make(map[byte]int)
	top := 0
	for _, c := range seq {
		counts[c]++
		top = max(top, counts[c])
	}
	return len(seq) - top
}

// covers reports whether seq holds at least the multiset of pattern.
func covers(seq, pattern []byte) bool {
	need := make(map[byte]int)
	for _, c := range pattern {
		need[c]++
	}
	for _, c := range seq {
		need[c]--
	}
	for _, n := range need {
		if n > 0 {
			return false
		}
	}
	return true
}

// bruteLongest returns the first longest window satisfying ok.
func bruteLongest(seq []byte, ok func([]byte) bool) window.Span {
	best := window.Span{}
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j <= len(seq); j++ {
			if j-i > best.Len() && ok(seq[i:j]) {
				best = window.Span{Start: i, End: j}
			}
		}
	}
	return best
}

// bruteShortest returns the first shortest window satisfying ok, or false.
func bruteShortest(seq []byte, ok func([]byte) bool) (window.Span, bool) {
	var (
		best  window.Span
		found bool
	)
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j <= len(seq); j++ {
			if ok(seq[i:j]) {
				if !found || j-i < best.Len() {
					best, found = window.Span{Start: i, End: j}, true
				}
				break
			}
		}
	}
	return best, found
}

// longestRun returns the length of the longest block of one repeated symbol.
func longestRun(seq []byte) int {
	best, cur := 0, 0
	for i := range seq {
		if i > 0 && seq[i] == seq[i-1] {
			cur++
		} else {
			cur = 1
		}
		best = max(best, cur)
	}
	return best
}
