package symbols

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("symbols: invalid option supplied")

// Unit selects the granularity of one symbol.
type Unit int

const (
	// Runes splits on Unicode code points.
	Runes Unit = iota
	// Bytes splits on single bytes.
	Bytes
	// Graphemes splits on extended grapheme clusters (user-perceived characters).
	Graphemes
)

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Runes:
		return "runes"
	case Bytes:
		return "bytes"
	case Graphemes:
		return "graphemes"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Option configures Split via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Split.
type Option func(*Options)

// Options holds the segmentation and key-transform settings.
type Options struct {
	// Unit is the symbol granularity. Default Runes.
	Unit Unit

	// Fold, when true, compares symbols by their Unicode case-folded form.
	Fold bool

	// Normalize, when true, compares symbols by their Form-normalized form.
	Normalize bool
	Form      norm.Form

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options splitting on runes with no key transforms.
func DefaultOptions() Options {
	return Options{Unit: Runes}
}

// WithUnit selects the symbol granularity.
func WithUnit(u Unit) Option {
	return func(o *Options) {
		switch u {
		case Runes, Bytes, Graphemes:
			o.Unit = u
		default:
			o.err = fmt.Errorf("%w: unknown unit %d", ErrOptionViolation, int(u))
		}
	}
}

// WithCaseFolding compares symbols case-insensitively (full Unicode folding).
func WithCaseFolding() Option {
	return func(o *Options) { o.Fold = true }
}

// WithNormalization compares symbols by their normalized form f (NFC, NFD, NFKC or NFKD).
func WithNormalization(f norm.Form) Option {
	return func(o *Options) {
		switch f {
		case norm.NFC, norm.NFD, norm.NFKC, norm.NFKD:
			o.Normalize, o.Form = true, f
		default:
			o.err = fmt.Errorf("%w: unknown normalization form %d", ErrOptionViolation, int(f))
		}
	}
}

// Parse applies opts over DefaultOptions and reports any recorded violation.
func Parse(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
