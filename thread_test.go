package gothread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

// withTimeout wraps a channel receive with a timeout
func withTimeout[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case val := <-ch:
		return val
	case <-time.After(testTimeout):
		t.Fatal("Test timed out waiting for channel receive")
		var zero T
		return zero
	}
}

func TestSpawnThenJoin(t *testing.T) {
	ran := make(chan struct{}, 1)
	th := NewThread(func() {
		ran <- struct{}{}
	})

	assert.True(t, th.Joinable())
	assert.NotEqual(t, NoID, th.ID())

	require.NoError(t, th.Join())
	withTimeout(t, ran)

	assert.False(t, th.Joinable())
	assert.Equal(t, NoID, th.ID())
}

func TestJoinEmptyHandle(t *testing.T) {
	th := NewThread(func() {})
	require.NoError(t, th.Join())

	assert.ErrorIs(t, th.Join(), ErrNotJoinable)
	assert.ErrorIs(t, th.Detach(), ErrNotJoinable)
}

func TestJoinableAfterCompletion(t *testing.T) {
	done := make(chan struct{})
	th := NewThread(func() { close(done) })
	withTimeout(t, done)

	// A finished goroutine still needs its Join; only Join, Detach, or Move
	// empty the handle.
	assert.True(t, th.Joinable())
	require.NoError(t, th.Join())
	assert.False(t, th.Joinable())
}

func TestMoveTransfersOwnership(t *testing.T) {
	release := make(chan struct{})
	src := NewThread(func() { <-release }, WithName("mover"))
	srcID := src.ID()

	dst := src.Move()

	assert.Equal(t, NoID, src.ID())
	assert.False(t, src.Joinable())
	assert.Equal(t, srcID, dst.ID(), "identity is invariant across a transfer")
	assert.True(t, dst.Joinable())
	assert.Equal(t, "mover", dst.Name())

	close(release)
	require.NoError(t, dst.Join())
	assert.ErrorIs(t, src.Join(), ErrNotJoinable)
}

func TestMoveEmptyHandle(t *testing.T) {
	th := NewThread(func() {})
	require.NoError(t, th.Join())

	dst := th.Move()
	assert.Equal(t, NoID, dst.ID())
	assert.False(t, dst.Joinable())
}

func TestDetach(t *testing.T) {
	started := make(chan struct{})
	finish := make(chan struct{})
	th := NewThread(func() {
		close(started)
		<-finish
	})
	done := th.DoneChan()

	require.NoError(t, th.Detach())
	assert.False(t, th.Joinable())
	assert.Equal(t, NoID, th.ID())
	assert.Nil(t, th.DoneChan())

	// The detached goroutine keeps running and still signals completion on
	// the channel captured before Detach.
	withTimeout(t, started)
	close(finish)
	withTimeout(t, done)
}

func TestSelfJoinPanics(t *testing.T) {
	var th *Thread
	recovered := make(chan any, 1)
	ready := make(chan struct{})
	th = NewThread(func() {
		defer func() { recovered <- recover() }()
		<-ready
		th.Join()
	})
	// The handle variable must be assigned before the callable dereferences it.
	close(ready)

	r := withTimeout(t, recovered)
	assert.NotNil(t, r, "self-join should panic")
	assert.Contains(t, r.(string), "joined from inside itself")

	require.NoError(t, th.Join())
}

func TestOnDoneRunsBeforeJoinReturns(t *testing.T) {
	var doneID ID
	th := NewThread(func() {}, WithOnDone(func(id ID) { doneID = id }))
	id := th.ID()

	require.NoError(t, th.Join())
	assert.Equal(t, id, doneID)
}

func TestLeakedJoinableHandleIsFatal(t *testing.T) {
	var leaked string
	prev := onLeak
	onLeak = func(u *unit) { leaked = u.describe() }
	defer func() { onLeak = prev }()

	block := make(chan struct{})
	th := NewThread(func() { <-block }, WithName("leaky"))
	finalizeThread(th)

	assert.Contains(t, leaked, "leaky")

	close(block)
	require.NoError(t, th.Join())

	// An emptied handle triggers nothing.
	leaked = ""
	finalizeThread(th)
	assert.Empty(t, leaked)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "thread(none)", NoID.String())
	assert.Equal(t, "thread(42)", ID(42).String())
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[ID]bool{}
	for range 50 {
		th := NewThread(func() {})
		id := th.ID()
		assert.False(t, seen[id], "IDs must not be reused")
		seen[id] = true
		require.NoError(t, th.Join())
	}
}
