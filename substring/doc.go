// Package substring exposes the sliding-window family on Go strings.
//
// What:
//
//   - LongestUniqueSubstring — longest substring with no repeated character.
//   - LongestReplaceableRun  — longest substring that becomes one repeated
//     character after at most k replacements.
//   - MinimumCoveringWindow  — shortest substring containing every character
//     of a pattern, with multiplicity.
//
// A "character" is a symbol from package symbols: a rune by default, or a
// byte or grapheme cluster via WithSymbols. Indices and lengths in results
// count symbols, not bytes; Text is always a substring of the input as given,
// even when keys were case-folded or normalized.
//
// Usage:
//
//	res, _ := substring.LongestUniqueSubstring("abcabcbb")
//	fmt.Println(res.Length, res.Text) // 3 abc
//
//	win, _ := substring.MinimumCoveringWindow("ADOBECODEBANC", "ABC")
//	fmt.Println(win.Text) // BANC
//
//	// case-insensitive, grapheme-aware
//	res, _ = substring.LongestUniqueSubstring(s, substring.WithSymbols(
//	  symbols.WithUnit(symbols.Graphemes),
//	  symbols.WithCaseFolding(),
//	))
//
// Errors:
//
//   - window.ErrNegativeBudget  (k < 0), wraps window.ErrInvalidArgument.
//   - window.ErrEmptyPattern    (pattern has no symbols), wraps window.ErrInvalidArgument.
//   - symbols.ErrOptionViolation for bad segmentation options.
//
// Complexity: O(n) symbols per call after an O(len(s)) segmentation pass.
package substring
