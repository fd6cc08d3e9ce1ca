package window

// LongestReplaceable — longest window that becomes a single repeated symbol
// after at most k replacements.
//
// Description:
//
//	A window qualifies when (window length − count of its most frequent
//	symbol) ≤ k. Returns the first longest qualifying window.
//
// Algorithm Outline:
//  1. counts = in-window Counter; maxCount = 0; start = 0.
//  2. For end = 0..n-1:
//     maxCount = max(maxCount, counts.Inc(seq[end])).
//     while (end-start+1) − maxCount > k: counts.Dec(seq[start]); start++ (Violated).
//     if end-start+1 > best → record [start, end+1).
//
// maxCount never decreases. Once some window reached maxCount, only a larger
// maxCount can let the window grow past that length, so a stale upper bound
// is enough: the window may slide while invalid but it is never recorded
// then, since it only grows when maxCount is exact.
//
// Edge cases:
//   - k = 0                → longest run of one symbol.
//   - k ≥ n − maxCount(seq) → whole seq.
//   - empty seq            → Length 0.
//
// Errors:
//   - ErrNegativeBudget if k < 0.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(σ)
func LongestReplaceable[S ~[]E, E comparable](seq S, k int, opts ...Option) (Run[E], error) {
	if k < 0 {
		return Run[E]{Text: []E{}}, ErrNegativeBudget
	}
	o := buildOptions(opts)
	best := newLongest(o.OnRecord)
	counts := NewCounter[E](0)

	var start, maxCount int
	for end, e := range seq {
		maxCount = max(maxCount, counts.Inc(e))

		state := Awaiting
		for end-start+1-maxCount > k {
			counts.Dec(seq[start])
			start++
			state = Violated
		}

		cur := Span{Start: start, End: end + 1}
		best.offer(cur)
		o.OnStep(Step{End: end, State: state, Span: cur})
	}

	return runOf(seq, best), nil
}
