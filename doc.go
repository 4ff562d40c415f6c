// Package gothread provides a minimal thread-handle and synchronized-output
// runtime on top of goroutines.
//
// The package maps the classic OS-thread lifecycle (create, join, detach,
// transfer ownership) onto an exclusively-owned handle value, plus a
// mutex-serialized line sink for interleaving-free output from concurrent
// writers.
//
// The main components include:
//
//   - Thread: an owned handle to one running goroutine, with Join, Detach,
//     Move, Joinable and ID queries. Exactly one handle owns a goroutine at a
//     time; ownership is transferable but never duplicable.
//   - ScopedThread: a Thread that joins automatically on Close, so deferred
//     cleanup tears handles down in reverse order of construction.
//   - Ref: an explicit alias marker for spawn arguments. Arguments bind by
//     value unless wrapped in ByRef, which shares the caller's storage with
//     the spawned goroutine.
//   - Sink: a mutex-guarded line-oriented writer. One WriteLine or Printf
//     call emits one whole line, never interleaved with a concurrent writer.
//   - Yield and Busy: cooperative scheduling helpers for contention and
//     starvation demonstrations.
//
// Handles enforce their lifecycle at runtime: joining or detaching an empty
// handle returns ErrNotJoinable, joining a thread from inside itself panics,
// and dropping a still-joinable handle without joining or detaching is a
// fatal invariant violation rather than a silent leak.
package gothread
