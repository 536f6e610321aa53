package glview

import "sync/atomic"

// strictMode controls how invariant violations are handled. Off, they are
// logged and execution continues best-effort; on, they panic. Tests and
// debug builds enable it.
var strictMode atomic.Bool

// SetStrict toggles strict invariant checking. Safe for concurrent use.
func SetStrict(on bool) {
	strictMode.Store(on)
}

// assert reports an invariant violation: a programmer error such as an
// unreachable switch branch or a double-freed resource. Not for driver or
// allocation failures, which degrade gracefully.
func assert(cond bool, msg string) {
	if cond {
		return
	}
	Logger().Error("invariant violated", "detail", msg)
	if strictMode.Load() {
		panic("glview: " + msg)
	}
}
