package substring

import (
	"github.com/katalvlaran/lvwindow/symbols"
	"github.com/katalvlaran/lvwindow/window"
)

// Result is the outcome of the "longest" variants.
// Length and Start count symbols; Text is the matching substring.
type Result struct {
	Length int
	Start  int
	Text   string
}

// Window is the outcome of MinimumCoveringWindow.
// [Start, End) counts symbols. When Found is false, Start = End = -1 and Text is "".
type Window struct {
	Found bool
	Start int
	End   int
	Text  string
}

// Option configures a call via functional arguments.
type Option func(*Options)

// Options collects the settings forwarded to symbols.Split and the window variants.
type Options struct {
	Symbols []symbols.Option
	Window  []window.Option
}

// WithSymbols sets how the input is split into symbols and how symbols compare.
func WithSymbols(opts ...symbols.Option) Option {
	return func(o *Options) {
		o.Symbols = append(o.Symbols, opts...)
	}
}

// WithOnStep forwards a state-machine hook to the window variant.
func WithOnStep(fn func(window.Step)) Option {
	return func(o *Options) {
		o.Window = append(o.Window, window.WithOnStep(fn))
	}
}

// WithOnRecord forwards a best-span hook to the window variant.
func WithOnRecord(fn func(window.Span)) Option {
	return func(o *Options) {
		o.Window = append(o.Window, window.WithOnRecord(fn))
	}
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
