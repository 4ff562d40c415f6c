package gothread

// Argument binding for spawned callables.
//
// The arity-typed constructors bind each argument by value: the callable
// observes the copy made at the spawn call site, never the caller's original
// object. Sharing the caller's storage is an explicit opt-in via ByRef, and
// the callable must declare the parameter as Ref[T] to receive it, so
// passing an alias where a copy is expected (or the reverse) fails
// type-checking rather than at runtime.

// Ref marks a spawn argument as alias-bound: the callable reads and writes
// the caller's original storage through it. The caller must ensure that
// storage outlives the goroutine's use of it.
type Ref[T any] struct {
	p *T
}

// ByRef wraps a pointer to the caller's storage as an alias-bound argument.
func ByRef[T any](p *T) Ref[T] {
	if p == nil {
		panic("gothread: ByRef on nil pointer")
	}
	return Ref[T]{p: p}
}

// Get returns the current value of the referent.
func (r Ref[T]) Get() T {
	return *r.p
}

// Set stores v into the referent.
func (r Ref[T]) Set(v T) {
	*r.p = v
}

// Ptr exposes the underlying pointer for in-place mutation.
func (r Ref[T]) Ptr() *T {
	return r.p
}

// NewThread1 spawns fn with one argument bound by value. arg is copied when
// NewThread1 is called; mutations inside fn are invisible to the caller
// unless the parameter is a Ref.
func NewThread1[A any](fn func(A), arg A, opts ...Option) *Thread {
	return NewThread(func() { fn(arg) }, opts...)
}

// NewThread2 spawns fn with two arguments bound by value.
func NewThread2[A, B any](fn func(A, B), a A, b B, opts ...Option) *Thread {
	return NewThread(func() { fn(a, b) }, opts...)
}

// NewThread3 spawns fn with three arguments bound by value.
func NewThread3[A, B, C any](fn func(A, B, C), a A, b B, c C, opts ...Option) *Thread {
	return NewThread(func() { fn(a, b, c) }, opts...)
}
