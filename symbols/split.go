package symbols

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Sequence is a string split into symbols.
//   - Source  — the original string.
//   - Keys    — comparison key of each symbol (folded / normalized if asked).
//   - Offsets — len(Keys)+1 byte offsets; symbol i is Source[Offsets[i]:Offsets[i+1]].
type Sequence struct {
	Source  string
	Keys    []string
	Offsets []int
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.Keys) }

// Symbol returns the original text of symbol i.
func (s Sequence) Symbol(i int) string {
	return s.Source[s.Offsets[i]:s.Offsets[i+1]]
}

// Slice returns the original text of symbols [start, end).
func (s Sequence) Slice(start, end int) string {
	if start >= end {
		return ""
	}
	return s.Source[s.Offsets[start]:s.Offsets[end]]
}

// ByteRange returns the byte offsets of symbols [start, end) within Source.
func (s Sequence) ByteRange(start, end int) (lo, hi int) {
	return s.Offsets[start], s.Offsets[end]
}

// Split segments src according to opts.
//
// Complexity: O(len(src)) plus the cost of the enabled key transforms.
func Split(src string, opts ...Option) (Sequence, error) {
	o, err := Parse(opts...)
	if err != nil {
		return Sequence{}, err
	}

	offsets := boundaries(src, o.Unit)
	seq := Sequence{
		Source:  src,
		Keys:    make([]string, 0, len(offsets)-1),
		Offsets: offsets,
	}

	key := keyFunc(o)
	for i := 0; i+1 < len(offsets); i++ {
		seq.Keys = append(seq.Keys, key(src[offsets[i]:offsets[i+1]]))
	}

	return seq, nil
}

// Keys is Split without offsets, for callers that only compare symbols.
func Keys(src string, opts ...Option) ([]string, error) {
	seq, err := Split(src, opts...)
	if err != nil {
		return nil, err
	}
	return seq.Keys, nil
}

// boundaries returns the symbol start offsets of src followed by len(src).
func boundaries(src string, u Unit) []int {
	offsets := make([]int, 0, len(src)+1)
	switch u {
	case Bytes:
		for i := 0; i < len(src); i++ {
			offsets = append(offsets, i)
		}
	case Graphemes:
		g := uniseg.NewGraphemes(src)
		for g.Next() {
			from, _ := g.Positions()
			offsets = append(offsets, from)
		}
	default:
		for i := 0; i < len(src); {
			offsets = append(offsets, i)
			_, size := utf8.DecodeRuneInString(src[i:])
			i += size
		}
	}
	return append(offsets, len(src))
}

// keyFunc builds the per-symbol key transform for o.
// A fresh Caser is made per call; Casers keep state and must not be shared.
func keyFunc(o Options) func(string) string {
	if !o.Fold && !o.Normalize {
		return func(s string) string { return s }
	}
	var fold cases.Caser
	if o.Fold {
		fold = cases.Fold()
	}
	return func(s string) string {
		if o.Fold {
			s = fold.String(s)
		}
		if o.Normalize {
			s = o.Form.String(s)
		}
		return s
	}
}
