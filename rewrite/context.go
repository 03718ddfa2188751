// Package rewrite provides the factories a Rule uses to build fresh
// ports, wires, and agents while producing its RewriteResult.
package rewrite

import (
	"github.com/vic/inet/internal/id"
	"github.com/vic/inet/internal/term"
)

// Context is the single id-generation authority during a rewrite. All
// fresh ids minted while rewriting one active pair come from the same
// Context so the runtime's allocator stays monotonic.
type Context struct {
	ids *id.Allocator
}

// NewContext returns a Context drawing ids from alloc.
func NewContext(alloc *id.Allocator) *Context {
	return &Context{ids: alloc}
}

// CreatePort returns a fresh, nameless port term.
func (c *Context) CreatePort() term.Term {
	return term.NewPortTerm(c.ids.Next())
}

// CreateWire returns the two fresh ports that together form one new
// wire. Neither port is connected to anything yet; the caller emits
// whatever connections the wire needs.
func (c *Context) CreateWire() (term.Term, term.Term) {
	return c.CreatePort(), c.CreatePort()
}

// CreateAgent returns a fresh agent of the given kind and ports.
func (c *Context) CreateAgent(kind term.Kind, ports ...term.Term) term.Term {
	return term.FromAgent(term.NewAgent(c.ids.Next(), kind, ports...))
}

// ReuseID wraps an already-allocated id as a fresh agent of the given
// kind. Built-in rules use this to let a consumed agent's id pass
// directly to one of the agents the rewrite produces, per the retirement
// policy: retiring an id is advisory, so reusing it immediately within
// the same rewrite is not a violation.
func (c *Context) ReuseID(reusedID uint64, kind term.Kind, ports ...term.Term) term.Term {
	return term.FromAgent(term.NewAgent(reusedID, kind, ports...))
}

// Retire hints that id is no longer referenced.
func (c *Context) Retire(id uint64) {
	c.ids.Retire(id)
}
