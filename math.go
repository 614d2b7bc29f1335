package fmath

import (
	"fmt"
	"sync/atomic"
)

// Math binds the provider-dependent operations of the library to one
// Primitives implementation. It holds no other state; a *Math is safe for
// concurrent use whenever its Primitives is.
type Math struct {
	prim Primitives
}

// New returns a Math that evaluates with p. A nil p selects the default
// double-precision provider backed by the global random generator.
func New(p Primitives) *Math {
	if p == nil {
		p = NewStdPrimitives(nil)
	}
	return &Math{prim: p}
}

// Primitives returns the provider m evaluates with.
func (m *Math) Primitives() Primitives {
	return m.prim
}

var defaultMath atomic.Pointer[Math]

func init() {
	defaultMath.Store(New(nil))
}

// Default returns the process-wide Math used by the package-level functions.
func Default() *Math {
	return defaultMath.Load()
}

// SetDefault replaces the provider behind the package-level functions.
// Passing nil restores the standard double-precision provider.
// SetDefault is safe for concurrent use.
func SetDefault(p Primitives) {
	m := New(p)
	defaultMath.Store(m)
	Logger().Debug("fmath: default primitives replaced", "provider", fmt.Sprintf("%T", m.prim))
}
