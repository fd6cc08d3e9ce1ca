// Package window defines spans, results, states, options and sentinel errors
// shared by the sliding-window variants.
package window

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations.
var (
	// ErrInvalidArgument is the root of every precondition failure in this package.
	ErrInvalidArgument = errors.New("window: invalid argument")

	// ErrNegativeBudget is returned by LongestReplaceable when k < 0.
	ErrNegativeBudget = fmt.Errorf("%w: replacement budget must be non-negative", ErrInvalidArgument)

	// ErrEmptyPattern is returned by MinimumCovering when the pattern is empty.
	ErrEmptyPattern = fmt.Errorf("%w: pattern must be non-empty", ErrInvalidArgument)
)

// Span is a half-open range [Start, End) over the input sequence.
// Invariant: 0 ≤ Start ≤ End ≤ len(input).
type Span struct {
	Start int
	End   int
}

// Len returns the number of symbols covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Within reports whether the span is well-formed for an input of length n.
func (s Span) Within(n int) bool {
	return 0 <= s.Start && s.Start <= s.End && s.End <= n
}

// State is the phase a window is in while the scan advances.
type State int

const (
	// Awaiting: the window is growing and its constraint is neither met nor broken.
	Awaiting State = iota
	// Satisfied: the constraint is met; the window tries to shrink from Start.
	Satisfied
	// Violated: the constraint broke; Start must advance before growing again.
	Violated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Awaiting:
		return "awaiting"
	case Satisfied:
		return "satisfied"
	case Violated:
		return "violated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step describes one advance of End, as seen by an OnStep hook.
//   - End   — index of the symbol that just entered the window.
//   - State — the state observed when that symbol entered.
//   - Span  — the window after Start was adjusted.
type Step struct {
	End   int
	State State
	Span  Span
}

// Run is the result of the "longest window" variants.
// Text is a copy of input[Start : Start+Length]; it is empty (not nil) when Length == 0.
type Run[E any] struct {
	Length int
	Start  int
	Text   []E
}

// Span returns the run as a half-open span.
func (r Run[E]) Span() Span { return Span{Start: r.Start, End: r.Start + r.Length} }

// Cover is the result of MinimumCovering.
// When Found is false, Start and End are -1 and Text is empty.
// Otherwise [Start, End) is the shortest covering window and Text its copy.
type Cover[E any] struct {
	Found bool
	Start int
	End   int
	Text  []E
}

// Option configures optional behavior of every variant.
type Option func(*Options)

// Options holds the hooks shared by the variants.
type Options struct {
	// OnStep is called once per advance of End, after Start was adjusted.
	OnStep func(Step)

	// OnRecord is called whenever the best span strictly improves.
	OnRecord func(Span)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnStep:   func(Step) {},
		OnRecord: func(Span) {},
	}
}

// WithOnStep registers a hook observing every advance of End.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnRecord registers a hook observing every improvement of the best span.
func WithOnRecord(fn func(Span)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecord = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
