package window

// MinimumCovering — shortest window holding every pattern symbol at least as
// many times as the pattern does.
//
// Description:
//
//	Extra occurrences inside the window are allowed. When several minimal
//	windows have the same length, the first one reached by the expanding scan
//	wins. When no window qualifies, Found is false and Start = End = -1.
//
// Algorithm Outline:
//  1. need = Counter(pattern); required = need.Distinct(); formed = 0.
//  2. For end = 0..n-1 with e = seq[end]:
//     if have.Inc(e) == need.Count(e) → formed++.
//     while formed == required (Satisfied):
//     record [start, end+1) if shorter;
//     l = seq[start]; if have.Dec(l) < need.Count(l) → formed--;
//     start++.
//
// Edge cases:
//   - len(pattern) > len(seq) → not found without scanning.
//   - repeated pattern symbols need that many occurrences, not just one.
//   - empty seq               → not found.
//
// Errors:
//   - ErrEmptyPattern if pattern is empty.
//
// Complexity:
//
//	Time   = O(n + m)
//	Memory = O(σ)
func MinimumCovering[S ~[]E, E comparable](seq, pattern S, opts ...Option) (Cover[E], error) {
	if len(pattern) == 0 {
		return notFound[E](), ErrEmptyPattern
	}
	if len(pattern) > len(seq) {
		return notFound[E](), nil
	}
	o := buildOptions(opts)
	best := newShortest(o.OnRecord)

	need := CountAll(pattern)
	have := NewCounter[E](need.Distinct())
	required, formed := need.Distinct(), 0

	start := 0
	for end, e := range seq {
		if need.Has(e) && have.Inc(e) == need.Count(e) {
			formed++
		}

		state := Awaiting
		for formed == required {
			state = Satisfied
			best.offer(Span{Start: start, End: end + 1})

			l := seq[start]
			if need.Has(l) && have.Dec(l) < need.Count(l) {
				formed--
			}
			start++
		}
		o.OnStep(Step{End: end, State: state, Span: Span{Start: start, End: end + 1}})
	}

	return coverOf(seq, best), nil
}
