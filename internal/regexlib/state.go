package regexlib

// State identifies an NFA state. Roles (initial, accepting) live on the NFA.
type State int

// Allocator hands out state identifiers for one build. It is not safe for
// concurrent use; every Builder owns its own.
type Allocator struct {
	next State
}

// Allocate returns an identifier that has not been handed out since the last Reset.
func (a *Allocator) Allocate() State {
	a.next++
	return a.next - 1
}

// Reset restarts numbering at zero.
func (a *Allocator) Reset() { a.next = 0 }
