// Package symbols turns a Go string into the symbol sequence the window
// algorithms compare.
//
// What:
//
//   - Unit selects what one symbol is: a byte, a rune (default) or a
//     user-perceived character (extended grapheme cluster, via rivo/uniseg).
//   - Each symbol gets a comparison key. Keys may be case-folded
//     (golang.org/x/text/cases) and/or Unicode-normalized
//     (golang.org/x/text/unicode/norm), while offsets keep pointing into the
//     original string so reported text is never rewritten.
//
// Why:
//
//   - "é" written as one rune or as e + U+0301 should be one symbol for
//     user-facing text: use Graphemes with NFC.
//   - Case-insensitive windows ("Aa" repeats) without lowering the output.
//
// Notes:
//
//   - Transforms apply to each symbol on its own. With Runes, a combining
//     mark stays a separate symbol even under NFC; pick Graphemes when that
//     matters.
//   - Invalid UTF-8 bytes become one-byte symbols in Runes mode.
//
// Errors:
//
//   - ErrOptionViolation: unknown Unit or normalization form.
package symbols
