package window

import "slices"

// recorder is the Best-Window Recorder: it keeps the best span seen so far
// and replaces it only on strict improvement, so the first optimum wins ties.
type recorder struct {
	best     Span
	found    bool
	shortest bool // false: prefer longer spans; true: prefer shorter spans
	onRecord func(Span)
}

// newLongest returns a recorder preferring longer spans. Its initial best is
// the empty span at 0, which any non-empty span improves on.
func newLongest(onRecord func(Span)) *recorder {
	return &recorder{found: true, onRecord: onRecord}
}

// newShortest returns a recorder preferring shorter spans, empty until offered one.
func newShortest(onRecord func(Span)) *recorder {
	return &recorder{shortest: true, onRecord: onRecord}
}

// offer records s if it strictly improves on the current best.
func (r *recorder) offer(s Span) bool {
	switch {
	case !r.found:
	case r.shortest && s.Len() < r.best.Len():
	case !r.shortest && s.Len() > r.best.Len():
	default:
		return false
	}
	r.best, r.found = s, true
	r.onRecord(s)
	return true
}

// runOf converts the best span into a Run over seq.
func runOf[S ~[]E, E comparable](seq S, r *recorder) Run[E] {
	return Run[E]{
		Length: r.best.Len(),
		Start:  r.best.Start,
		Text:   cloneSpan(seq, r.best),
	}
}

// coverOf converts the best span into a Cover over seq.
func coverOf[S ~[]E, E comparable](seq S, r *recorder) Cover[E] {
	if !r.found {
		return notFound[E]()
	}
	return Cover[E]{
		Found: true,
		Start: r.best.Start,
		End:   r.best.End,
		Text:  cloneSpan(seq, r.best),
	}
}

// notFound is the Cover sentinel for "no window exists".
func notFound[E any]() Cover[E] {
	return Cover[E]{Start: -1, End: -1, Text: []E{}}
}

// cloneSpan copies seq[s.Start:s.End] so results never alias caller input.
func cloneSpan[S ~[]E, E any](seq S, s Span) []E {
	out := slices.Clone([]E(seq[s.Start:s.End]))
	if out == nil {
		out = []E{}
	}
	return out
}
