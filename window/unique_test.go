package window_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwindow/window"
)

// TestLongestUnique_Scenarios covers the classic inputs and edge cases.
func TestLongestUnique_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		length int
		start  int
		text   string
	}{
		{"classic", "abcabcbb", 3, 0, "abc"},
		{"all identical", "bbbbb", 1, 0, "b"},
		{"middle window", "pwwkew", 3, 2, "wke"},
		{"empty", "", 0, 0, ""},
		{"all unique", "abcdef", 6, 0, "abcdef"},
		{"stale sighting abba", "abba", 2, 0, "ab"},
		{"jump past repeat", "dvdf", 3, 1, "vdf"},
		{"stale before start", "tmmzuxt", 5, 2, "mzuxt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			run := window.LongestUnique([]rune(tc.in))
			assert.Equal(t, tc.length, run.Length, "length")
			assert.Equal(t, tc.start, run.Start, "start")
			assert.Equal(t, tc.text, string(run.Text), "text")
		})
	}
}

// TestLongestUnique_EmptyTextNotNil ensures empty results carry an empty slice.
func TestLongestUnique_EmptyTextNotNil(t *testing.T) {
	run := window.LongestUnique([]int(nil))
	assert.Equal(t, 0, run.Length)
	assert.NotNil(t, run.Text)
	assert.Empty(t, run.Text)
}

// TestLongestUnique_GenericSymbols runs the variant over non-character symbols.
func TestLongestUnique_GenericSymbols(t *testing.T) {
	type token struct{ kind, val string }
	in := []token{{"id", "x"}, {"op", "+"}, {"id", "y"}, {"op", "+"}, {"id", "z"}}

	run := window.LongestUnique(in)
	assert.Equal(t, 3, run.Length)
	assert.Equal(t, 0, run.Start)
	assert.Equal(t, in[:3], run.Text)
}

// TestLongestUnique_DoesNotAliasInput verifies Text is a copy.
func TestLongestUnique_DoesNotAliasInput(t *testing.T) {
	in := []byte("abc")
	run := window.LongestUnique(in)
	run.Text[0] = 'z'
	assert.Equal(t, "abc", string(in), "input must stay untouched")
}

// TestLongestUnique_BruteForce cross-checks length, start, uniqueness and
// maximality against an exhaustive search.
func TestLongestUnique_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for round := 0; round < randomRounds; round++ {
		seq := randomSeq(rng, maxRandomLen)
		want := bruteLongest(seq, allDistinct)

		run := window.LongestUnique(seq)
		require.Equal(t, want.Len(), run.Length, "length for %q", seq)
		require.Equal(t, want.Start, run.Start, "start for %q", seq)
		require.LessOrEqual(t, run.Length, len(seq))
		require.True(t, allDistinct(run.Text), "text %q has repeats", run.Text)
		require.Equal(t, seq[run.Start:run.Start+run.Length], run.Text)
	}
}

// TestLongestUnique_Hooks checks the state sequence and records for "abba".
func TestLongestUnique_Hooks(t *testing.T) {
	var steps []window.Step
	var records []window.Span

	window.LongestUnique([]byte("abba"),
		window.WithOnStep(func(s window.Step) { steps = append(steps, s) }),
		window.WithOnRecord(func(s window.Span) { records = append(records, s) }),
	)

	assert.Equal(t, []window.Step{
		{End: 0, State: window.Awaiting, Span: window.Span{Start: 0, End: 1}},
		{End: 1, State: window.Awaiting, Span: window.Span{Start: 0, End: 2}},
		{End: 2, State: window.Violated, Span: window.Span{Start: 2, End: 3}},
		{End: 3, State: window.Awaiting, Span: window.Span{Start: 2, End: 4}},
	}, steps)
	assert.Equal(t, []window.Span{{Start: 0, End: 1}, {Start: 0, End: 2}}, records)
}

// TestLongestUnique_Idempotent verifies repeated calls agree.
func TestLongestUnique_Idempotent(t *testing.T) {
	in := []rune("pwwkew")
	assert.Equal(t, window.LongestUnique(in), window.LongestUnique(in))
}
