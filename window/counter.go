package window

// Counter is a symbol → occurrence-count map.
// Keys whose count drops to zero are deleted, so Distinct always equals the
// number of symbols actually present.
//
// The zero value is not usable; call NewCounter.
type Counter[E comparable] struct {
	counts map[E]int
	total  int
}

// NewCounter returns an empty Counter sized for about hint distinct symbols.
func NewCounter[E comparable](hint int) *Counter[E] {
	if hint < 0 {
		hint = 0
	}
	return &Counter[E]{counts: make(map[E]int, hint)}
}

// CountAll returns a Counter holding every symbol of seq.
func CountAll[S ~[]E, E comparable](seq S) *Counter[E] {
	c := NewCounter[E](len(seq))
	for _, e := range seq {
		c.Inc(e)
	}
	return c
}

// Inc adds one occurrence of e and returns its new count.
func (c *Counter[E]) Inc(e E) int {
	c.counts[e]++
	c.total++
	return c.counts[e]
}

// Dec removes one occurrence of e and returns its new count.
// Decrementing an absent symbol is a no-op returning 0.
func (c *Counter[E]) Dec(e E) int {
	n, ok := c.counts[e]
	if !ok {
		return 0
	}
	c.total--
	if n <= 1 {
		delete(c.counts, e)
		return 0
	}
	c.counts[e] = n - 1
	return n - 1
}

// Count returns the number of occurrences of e.
func (c *Counter[E]) Count(e E) int { return c.counts[e] }

// Has reports whether e occurs at least once.
func (c *Counter[E]) Has(e E) bool {
	_, ok := c.counts[e]
	return ok
}

// Distinct returns the number of distinct symbols present.
func (c *Counter[E]) Distinct() int { return len(c.counts) }

// Total returns the number of occurrences of all symbols.
func (c *Counter[E]) Total() int { return c.total }

// Each calls fn for every present symbol and its count, in unspecified order.
func (c *Counter[E]) Each(fn func(e E, n int)) {
	for e, n := range c.counts {
		fn(e, n)
	}
}

// Equal reports whether c and other hold the same multiset.
func (c *Counter[E]) Equal(other *Counter[E]) bool {
	if c.total != other.total || len(c.counts) != len(other.counts) {
		return false
	}
	for e, n := range c.counts {
		if other.counts[e] != n {
			return false
		}
	}
	return true
}
