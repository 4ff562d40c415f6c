package gothread

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedThreadJoinsOnClose(t *testing.T) {
	finished := false
	st := NewScopedThread(func() {
		time.Sleep(20 * time.Millisecond)
		finished = true
	})

	require.NoError(t, st.Close())
	assert.True(t, finished, "Close must block until the goroutine completes")
	assert.False(t, st.Thread().Joinable())
}

func TestScopedThreadCloseIsIdempotent(t *testing.T) {
	st := NewScopedThread(func() {})
	require.NoError(t, st.Close())
	require.NoError(t, st.Close())
}

func TestScopedThreadCloseAfterDetach(t *testing.T) {
	release := make(chan struct{})
	st := NewScopedThread(func() { <-release })
	done := st.Thread().DoneChan()
	require.NoError(t, st.Thread().Detach())

	require.NoError(t, st.Close())

	close(release)
	withTimeout(t, done)
}

func TestScopedTeardownIsReverseOrder(t *testing.T) {
	var mu sync.Mutex
	var joined []string

	func() {
		for _, name := range []string{"t1", "t2", "t3"} {
			release := make(chan struct{})
			st := NewScopedThread(func() { <-release }, WithName(name))
			defer func(name string, st *ScopedThread) {
				require.NoError(t, st.Close())
				mu.Lock()
				joined = append(joined, name)
				mu.Unlock()
			}(name, st)
			// Let each goroutine finish only once its Close is underway, so
			// the recorded order reflects teardown, not completion timing.
			defer close(release)
		}
	}()

	assert.Equal(t, []string{"t3", "t2", "t1"}, joined, "deferred scoped handles tear down last-in first-out")
}
