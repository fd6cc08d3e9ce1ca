// Package anagram answers symbol-multiset questions with the same counter the
// sliding-window variants use.
//
// What:
//
//   - IsAnagram      — do two strings hold the same multiset of symbols?
//   - GroupAnagrams  — bucket words by symbol multiset, keeping first-seen
//     group order and input order inside each group.
//   - FindAnagrams   — start index of every window of s that is an anagram
//     of pattern (fixed-width sliding window).
//
// Symbols come from package symbols, so the same unit / folding /
// normalization options apply.
//
// Complexity:
//
//   - IsAnagram:     O(n + m)
//   - GroupAnagrams: O(Σ k log k) for words of k symbols (signature sort).
//   - FindAnagrams:  O(n + m)
package anagram
