// Package window implements the sliding-window substring family over any
// sequence of comparable symbols.
//
// 🚀 What is a sliding window?
//
//	A window is a half-open range [Start, End) over the input. Both bounds
//	only ever move forward (two-pointer discipline), so every symbol enters
//	and leaves the window at most once and the scan stays O(n).
//
//	    a b c a b c b b
//	    └──┬──┘
//	     [0,3) → "abc"
//
// ✨ Variants:
//   - LongestUnique       — longest window with no repeated symbol.
//   - LongestReplaceable  — longest window where (len − top count) ≤ k.
//   - MinimumCovering     — shortest window holding the pattern multiset.
//
// Each variant is built from the same three parts:
//   - Window Tracker      — Span plus a last-seen map or a Counter.
//   - Constraint Evaluator — the per-variant validity check.
//   - Best-Window Recorder — keeps the best Span, strict improvement only.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvwindow/window"
//
//	run := window.LongestUnique([]rune("abcabcbb"))
//	fmt.Println(run.Length, string(run.Text)) // 3 abc
//
//	cov, err := window.MinimumCovering([]byte("ADOBECODEBANC"), []byte("ABC"))
//	if err != nil {
//	  // ErrEmptyPattern
//	}
//	fmt.Println(string(cov.Text)) // BANC
//
// Observability:
//
//	WithOnStep and WithOnRecord expose the state machine
//	(Awaiting → Satisfied / Violated) and every improvement of the best span.
//
// Complexity:
//
//   - Time:   O(n) for LongestUnique and LongestReplaceable, O(n+m) for MinimumCovering.
//   - Memory: O(σ) where σ is the number of distinct symbols seen.
//
// All functions are pure: working maps live for one call only and the input
// is never written to, so concurrent calls need no coordination.
package window
