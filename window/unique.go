package window

// LongestUnique — longest window without a repeated symbol.
//
// Description:
//
//	Returns the length, start and a copy of the first longest contiguous
//	sub-sequence of seq in which no symbol occurs twice.
//
// Algorithm Outline:
//  1. last[e] = index where e was last seen; start = 0.
//  2. For end = 0..n-1 with e = seq[end]:
//     if last[e] exists and last[e] ≥ start → start = last[e] + 1 (Violated).
//     else if end-start+1 > best            → record [start, end+1).
//     last[e] = end.
//
// A sighting before start belongs to a window already left behind; it must
// not move start (see "abba": the second 'a' is seen while start is 2).
//
// Edge cases:
//   - empty seq      → Length 0, empty Text.
//   - all distinct   → whole seq.
//   - all identical  → Length 1, Start 0.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(min(n, σ))
func LongestUnique[S ~[]E, E comparable](seq S, opts ...Option) Run[E] {
	o := buildOptions(opts)
	best := newLongest(o.OnRecord)
	last := make(map[E]int)

	start := 0
	for end, e := range seq {
		state := Awaiting
		if i, ok := last[e]; ok && i >= start {
			start = i + 1
			state = Violated
		} else {
			best.offer(Span{Start: start, End: end + 1})
		}
		last[e] = end
		o.OnStep(Step{End: end, State: state, Span: Span{Start: start, End: end + 1}})
	}

	return runOf(seq, best)
}
