package substring

import (
	"github.com/katalvlaran/lvwindow/symbols"
	"github.com/katalvlaran/lvwindow/window"
)

// LongestUniqueSubstring returns the first longest substring of s in which no
// symbol repeats. Empty s yields a zero Result.
// The only possible error is a symbols.ErrOptionViolation.
func LongestUniqueSubstring(s string, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	seq, err := symbols.Split(s, o.Symbols...)
	if err != nil {
		return Result{}, err
	}

	return resultOf(seq, window.LongestUnique(seq.Keys, o.Window...)), nil
}

// LongestReplaceableRun returns the first longest substring of s that can be
// turned into one repeated symbol by replacing at most k symbols.
// Returns window.ErrNegativeBudget when k < 0.
func LongestReplaceableRun(s string, k int, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	seq, err := symbols.Split(s, o.Symbols...)
	if err != nil {
		return Result{}, err
	}

	run, err := window.LongestReplaceable(seq.Keys, k, o.Window...)
	if err != nil {
		return Result{}, err
	}
	return resultOf(seq, run), nil
}

// MinimumCoveringWindow returns the shortest substring of s holding every
// symbol of pattern at least as often as pattern does. Ties go to the
// leftmost window. Pattern and s are split with the same options.
// Returns window.ErrEmptyPattern when pattern has no symbols.
func MinimumCoveringWindow(s, pattern string, opts ...Option) (Window, error) {
	o := buildOptions(opts)
	seq, err := symbols.Split(s, o.Symbols...)
	if err != nil {
		return notFound(), err
	}
	pat, err := symbols.Keys(pattern, o.Symbols...)
	if err != nil {
		return notFound(), err
	}

	cov, err := window.MinimumCovering(seq.Keys, pat, o.Window...)
	if err != nil {
		return notFound(), err
	}
	if !cov.Found {
		return notFound(), nil
	}
	return Window{
		Found: true,
		Start: cov.Start,
		End:   cov.End,
		Text:  seq.Slice(cov.Start, cov.End),
	}, nil
}

// resultOf maps a symbol-level run back onto the source string.
func resultOf(seq symbols.Sequence, run window.Run[string]) Result {
	return Result{
		Length: run.Length,
		Start:  run.Start,
		Text:   seq.Slice(run.Start, run.Start+run.Length),
	}
}

func notFound() Window {
	return Window{Start: -1, End: -1}
}
