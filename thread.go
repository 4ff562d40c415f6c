package gothread

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrNotJoinable is returned by Join and Detach when the handle owns no
// goroutine: it was already joined, detached, or moved from.
var ErrNotJoinable = errors.New("gothread: handle is not joinable")

// ID identifies one spawned goroutine. IDs are allocated from a process-wide
// counter, are never reused, and stay with the goroutine across ownership
// transfers. The zero value NoID marks an empty handle.
type ID uint64

// NoID is the sentinel identity of a handle that owns nothing.
const NoID ID = 0

func (id ID) String() string {
	if id == NoID {
		return "thread(none)"
	}
	return "thread(" + strconv.FormatUint(uint64(id), 10) + ")"
}

var lastID atomic.Uint64

// unit is the bookkeeping record for one running goroutine. Handles come and
// go (Move, Join, Detach); the unit lives until the goroutine returns.
type unit struct {
	id     ID
	name   string
	goid   atomic.Uint64
	done   chan struct{}
	onDone func(ID)
}

// Thread is an exclusively-owned handle to one running goroutine.
//
// A Thread is created by NewThread (or its arity-typed variants) and owns the
// goroutine it spawned until Join, Detach, or Move relinquishes it. A handle
// that owns nothing is "empty": its ID is NoID and Joinable reports false.
//
// Dropping a still-joinable Thread without joining or detaching is a fatal
// misuse, reported when the handle is garbage collected.
type Thread struct {
	mu sync.Mutex
	u  *unit // nil when the handle is empty
}

// Option configures a Thread at spawn time.
type Option func(*unit)

// WithName attaches a diagnostic name to the spawned goroutine. The name
// travels with the goroutine across ownership transfers.
func WithName(name string) Option {
	return func(u *unit) {
		u.name = name
	}
}

// WithOnDone sets a callback invoked on the spawned goroutine after its
// callable returns, just before the handle becomes join-ready.
func WithOnDone(fn func(ID)) Option {
	return func(u *unit) {
		u.onDone = fn
	}
}

// onLeak reports a handle that was garbage collected while still joinable.
// Overridable so tests can observe the violation without dying.
var onLeak = func(u *unit) {
	panic(fmt.Sprintf("gothread: %s dropped while joinable; join or detach before discarding the handle", u.describe()))
}

func (u *unit) describe() string {
	if u.name != "" {
		return u.id.String() + " (" + u.name + ")"
	}
	return u.id.String()
}

// NewThread spawns fn on a new goroutine and returns the owning handle.
// Any func() value works as the callable: named functions, closures, method
// values, and bound struct methods. The goroutine starts before NewThread
// returns.
func NewThread(fn func(), opts ...Option) *Thread {
	u := &unit{
		id:   ID(lastID.Add(1)),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}
	t := &Thread{u: u}
	runtime.SetFinalizer(t, finalizeThread)

	go func() {
		u.goid.Store(curGoID())
		defer close(u.done)
		fn()
		if u.onDone != nil {
			u.onDone(u.id)
		}
	}()
	slog.Debug("spawned", "thread", u.id, "name", u.name)
	return t
}

func finalizeThread(t *Thread) {
	t.mu.Lock()
	u := t.u
	t.mu.Unlock()
	if u != nil {
		onLeak(u)
	}
}

// ID returns the identity of the owned goroutine, or NoID for an empty
// handle. The identity is invariant across Move: only the handle changes
// owner, never the goroutine.
func (t *Thread) ID() ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.u == nil {
		return NoID
	}
	return t.u.id
}

// Name returns the diagnostic name given via WithName, or "" for an unnamed
// or empty handle.
func (t *Thread) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.u == nil {
		return ""
	}
	return t.u.name
}

// Joinable reports whether the handle currently owns an unjoined, undetached
// goroutine. A finished-but-unjoined goroutine is still joinable; only Join,
// Detach, and Move empty the handle.
func (t *Thread) Joinable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.u != nil
}

// DoneChan returns the channel closed when the callable returns. It remains
// valid after Detach if captured beforehand, which is how a caller can await
// a goroutine it no longer owns. Returns nil on an empty handle.
func (t *Thread) DoneChan() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.u == nil {
		return nil
	}
	return t.u.done
}

// Join blocks until the owned goroutine finishes, then empties the handle.
// Returns ErrNotJoinable if the handle owns nothing. Joining a thread from
// inside its own callable can never complete and panics instead.
func (t *Thread) Join() error {
	t.mu.Lock()
	u := t.u
	if u == nil {
		t.mu.Unlock()
		return ErrNotJoinable
	}
	if u.goid.Load() == curGoID() {
		t.mu.Unlock()
		panic(fmt.Sprintf("gothread: %s joined from inside itself", u.describe()))
	}
	t.mu.Unlock()

	<-u.done

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.u != u {
		// Lost a race with a concurrent Join, Detach, or Move.
		return ErrNotJoinable
	}
	t.u = nil
	return nil
}

// Detach relinquishes ownership without waiting. The goroutine keeps running
// unsupervised; no handle owns it afterwards. Returns ErrNotJoinable if the
// handle owns nothing.
func (t *Thread) Detach() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.u == nil {
		return ErrNotJoinable
	}
	slog.Debug("detached", "thread", t.u.id, "name", t.u.name)
	t.u = nil
	return nil
}

// Move transfers ownership to a fresh handle and empties the receiver. The
// goroutine is never paused or disturbed: its ID, joinability, and completion
// signal carry over unchanged. Moving an empty handle yields an empty handle.
func (t *Thread) Move() *Thread {
	t.mu.Lock()
	u := t.u
	t.u = nil
	t.mu.Unlock()

	dst := &Thread{u: u}
	if u != nil {
		runtime.SetFinalizer(dst, finalizeThread)
	}
	return dst
}

// curGoID extracts the runtime's goroutine id from the stack header. Used
// only to detect self-join; never exposed.
func curGoID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseUint(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}
