// Package rule dispatches an active pair's unordered kind pair to the
// Rule that rewrites it, falling back to leaving the pair inert when no
// rule is registered.
package rule

import "github.com/vic/inet/internal/connection"

// Result is the bag of connections a rewrite produces, to be pushed back
// into the runtime's index.
//
// Stalled marks the fallback case: no rule was registered for the pair,
// so NewConnections holds the original pair unchanged. The runtime must
// not reschedule a stalled pair for reduction — doing so would spin
// forever retrying a rewrite that will never be found — it stores the
// pair back as inert residue instead.
type Result struct {
	NewConnections []connection.Connection
	Stalled        bool
}

// Empty is the result of a rewrite that produces nothing new, such as
// Eraser-Eraser annihilation.
func Empty() Result {
	return Result{}
}

// FromConnections wraps a slice of connections as a Result.
func FromConnections(cs []connection.Connection) Result {
	return Result{NewConnections: cs}
}
