package anagram

import (
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/lvwindow/symbols"
	"github.com/katalvlaran/lvwindow/window"
)

// IsAnagram reports whether a and b hold the same multiset of symbols.
// Two empty strings are anagrams of each other.
func IsAnagram(a, b string, opts ...symbols.Option) (bool, error) {
	ka, err := symbols.Keys(a, opts...)
	if err != nil {
		return false, err
	}
	kb, err := symbols.Keys(b, opts...)
	if err != nil {
		return false, err
	}
	if len(ka) != len(kb) {
		return false, nil
	}

	return window.CountAll(ka).Equal(window.CountAll(kb)), nil
}

// GroupAnagrams buckets words by symbol multiset.
// Groups appear in the order their first word appears; words keep input order.
// Empty input yields an empty, non-nil slice.
func GroupAnagrams(words []string, opts ...symbols.Option) ([][]string, error) {
	groups := linkedhashmap.New()
	for _, w := range words {
		keys, err := symbols.Keys(w, opts...)
		if err != nil {
			return nil, err
		}
		sig := signature(keys)

		var members []string
		if v, ok := groups.Get(sig); ok {
			members = v.([]string)
		}
		groups.Put(sig, append(members, w))
	}

	out := make([][]string, 0, groups.Size())
	for _, v := range groups.Values() {
		out = append(out, v.([]string))
	}
	return out, nil
}

// FindAnagrams returns the start symbol index of every window of s whose
// symbols are a permutation of pattern's, in increasing order.
// Returns window.ErrEmptyPattern when pattern has no symbols.
func FindAnagrams(s, pattern string, opts ...symbols.Option) ([]int, error) {
	keys, err := symbols.Keys(s, opts...)
	if err != nil {
		return nil, err
	}
	pat, err := symbols.Keys(pattern, opts...)
	if err != nil {
		return nil, err
	}
	if len(pat) == 0 {
		return nil, window.ErrEmptyPattern
	}

	starts := []int{}
	m := len(pat)
	if m > len(keys) {
		return starts, nil
	}

	need := window.CountAll(pat)
	have := window.NewCounter[string](need.Distinct())
	required, formed := need.Distinct(), 0

	// formed counts pattern symbols whose in-window count matches exactly;
	// with the width fixed at m, formed == required means equal multisets.
	for end, k := range keys {
		if need.Has(k) {
			switch have.Inc(k) {
			case need.Count(k):
				formed++
			case need.Count(k) + 1:
				formed--
			}
		}
		if end >= m {
			l := keys[end-m]
			if need.Has(l) {
				switch have.Dec(l) {
				case need.Count(l):
					formed++
				case need.Count(l) - 1:
					formed--
				}
			}
		}
		if end >= m-1 && formed == required {
			starts = append(starts, end-m+1)
		}
	}

	return starts, nil
}

// signature encodes the sorted keys of a word unambiguously (length-prefixed),
// so keys holding separator bytes cannot collide.
func signature(keys []string) string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	var b strings.Builder
	for _, k := range sorted {
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
