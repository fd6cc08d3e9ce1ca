package window_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvwindow/window"
)

// TestConcurrentCalls runs every variant from many goroutines over shared
// read-only input; results must match a sequential reference.
func TestConcurrentCalls(t *testing.T) {
	in := []byte("ADOBECODEBANCAABABBAabcabcbb")
	pat := []byte("ABC")

	wantU := window.LongestUnique(in)
	wantR, _ := window.LongestReplaceable(in, 2)
	wantC, _ := window.MinimumCovering(in, pat)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				gotR, errR := window.LongestReplaceable(in, 2)
				gotC, errC := window.MinimumCovering(in, pat)
				assert.Equal(t, wantU, window.LongestUnique(in))
				assert.NoError(t, errR)
				assert.NoError(t, errC)
				assert.Equal(t, wantR, gotR)
				assert.Equal(t, wantC, gotC)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, "ADOBECODEBANCAABABBAabcabcbb", string(in), "input must stay untouched")
}
