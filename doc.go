// Package lvwindow is a small, dependency-light toolkit of sliding-window
// algorithms over strings and generic symbol sequences.
//
// 🚀 What is lvwindow?
//
//	A pure, allocation-aware library that brings together:
//		• Longest substring without repeating symbols
//		• Longest repeating-symbol run with k replacements
//		• Minimum window covering a pattern multiset
//		• Anagram check, grouping and fixed-width anagram search
//
// ✨ Why choose lvwindow?
//
//   - Generic core – any comparable symbol type, not just ASCII letters
//   - Unicode aware – bytes, runes or grapheme clusters, optional folding & NFC
//   - Pure functions – no shared state, safe to call from any goroutine
//   - Observable – OnStep / OnRecord hooks expose the window state machine
//
// Under the hood, everything is organized under four subpackages:
//
//	window/    — generic core: Span, Counter, state machine, the three variants
//	symbols/   — string → symbol sequence (bytes, runes, graphemes) + key transforms
//	substring/ — string entry points built on symbols + window
//	anagram/   — multiset questions sharing window.Counter
//
// Quick ASCII example:
//
//	    A D O B E C O D E B A N C
//	                      └──┬──┘
//	                       [9,13) → "BANC" covers {A, B, C}
//
//	go get github.com/katalvlaran/lvwindow
package lvwindow
