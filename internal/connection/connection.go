// Package connection models a single wire between two Terms and the
// bidirectional index the runtime keeps of every live wire.
package connection

import (
	"fmt"

	"github.com/vic/inet/internal/term"
)

// Connection is an unordered pair of Terms: the two things a wire joins.
type Connection struct {
	Left, Right term.Term
}

// New returns the Connection joining left and right.
func New(left, right term.Term) Connection {
	return Connection{Left: left, Right: right}
}

// FromAgents is a convenience for the common case of two freshly built
// agents meeting at their principal ports.
func FromAgents(left, right term.Agent) Connection {
	return New(term.FromAgent(left), term.FromAgent(right))
}

// IsActivePair reports whether both endpoints are agents, i.e. this
// connection is ready to be rewritten.
func (c Connection) IsActivePair() bool {
	return c.Left.IsAgent() && c.Right.IsAgent()
}

// Equal reports unordered equality: {a,b} == {b,a}.
func (c Connection) Equal(other Connection) bool {
	if c.Left.ID() == other.Left.ID() && c.Right.ID() == other.Right.ID() {
		return true
	}
	return c.Left.ID() == other.Right.ID() && c.Right.ID() == other.Left.ID()
}

func (c Connection) String() string {
	return fmt.Sprintf("%s = %s", c.Left, c.Right)
}
