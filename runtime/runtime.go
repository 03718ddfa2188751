// Package runtime drives normalization: the work-stack loop that pops
// active pairs, rewrites them via a Rulebook, and threads the resulting
// wires back through the connection index until none remain scheduled.
package runtime

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/vic/inet/internal/connection"
	"github.com/vic/inet/internal/id"
	"github.com/vic/inet/internal/term"
	"github.com/vic/inet/rewrite"
	"github.com/vic/inet/rule"
)

// action is the runtime's work-stack entry: a scheduled rewrite of the
// active pair currently keyed by agentID.
type action struct {
	agentID uint64
}

// Stats counts reductions performed so far, mirroring the kind of
// counters a caller embedding this runtime in a larger process wants to
// observe without instrumenting every call site itself.
type Stats struct {
	Reductions      uint64
	UnmatchedPairs  uint64
	ConnectionsSeen uint64
}

// Runtime owns one net's connection index and work stack. It is not
// safe for concurrent use: normalization is single-threaded cooperative.
type Runtime struct {
	index    *connection.Index
	work     []action
	rulebook *rule.Rulebook
	ctx      *rewrite.Context
	ids      *id.Allocator
	logger   hclog.Logger
	stats    Stats
}

// New builds a Runtime from an initial bag of connections, threading
// each one through pushConnection before any reduction happens.
func New(initial []connection.Connection, rulebook *rule.Rulebook, ids *id.Allocator, logger hclog.Logger) *Runtime {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if rulebook == nil {
		rulebook = rule.DefaultRulebook(logger)
	}

	rt := &Runtime{
		index:    connection.NewIndex(),
		rulebook: rulebook,
		ctx:      rewrite.NewContext(ids),
		ids:      ids,
		logger:   logger,
	}

	for _, c := range initial {
		rt.pushConnection(c.Left, c.Right)
	}

	return rt
}

// Stats returns a snapshot of the runtime's reduction counters.
func (rt *Runtime) Stats() Stats {
	return rt.stats
}

// collapsePort finds the connection, if any, in which portID
// participates, removes it, and returns the other endpoint.
func (rt *Runtime) collapsePort(portID uint64) (term.Term, bool) {
	if c, ok := rt.index.RemoveByLeftID(portID); ok {
		return c.Right, true
	}
	if c, ok := rt.index.RemoveByRightID(portID); ok {
		return c.Left, true
	}
	return term.Term{}, false
}

// pushConnection implements the wire-threading protocol: an Agent-Agent
// pair is stored and scheduled for reduction; a Port meeting anything
// already wired is collapsed away by recursively joining the two
// "other ends" directly, so no port id appears in more than one stored
// connection. A Port-Port pair whose ports are not wired elsewhere is
// stored as is, and an Agent-Port pair is stored with the port on the
// left.
func (rt *Runtime) pushConnection(a, b term.Term) {
	rt.stats.ConnectionsSeen++

	switch {
	case a.IsAgent() && b.IsAgent():
		if err := rt.index.Insert(connection.New(a, b)); err != nil {
			panic(newFatal("push_connection: %v", err))
		}
		rt.work = append(rt.work, action{agentID: a.ID()})

	case !a.IsAgent() && !b.IsAgent():
		if other, ok := rt.collapsePort(a.ID()); ok {
			rt.pushConnection(other, b)
			return
		}
		if other, ok := rt.collapsePort(b.ID()); ok {
			rt.pushConnection(a, other)
			return
		}
		if err := rt.index.Insert(connection.New(a, b)); err != nil {
			panic(newFatal("push_connection: %v", err))
		}

	case !a.IsAgent() && b.IsAgent():
		if other, ok := rt.collapsePort(a.ID()); ok {
			rt.pushConnection(other, b)
			return
		}
		if err := rt.index.Insert(connection.New(a, b)); err != nil {
			panic(newFatal("push_connection: %v", err))
		}

	default: // a.IsAgent() && !b.IsAgent()
		rt.pushConnection(b, a)
	}
}

// Normalize drains the work stack, rewriting every scheduled active
// pair until none remain, and returns the final bag of connections.
// Progress, not termination, is guaranteed: a net with no normal form
// makes this loop run forever. Use NormalizeWithBudget to bound it.
func (rt *Runtime) Normalize() []connection.Connection {
	for len(rt.work) > 0 {
		rt.step()
	}
	return rt.index.All()
}

// NormalizeWithBudget runs at most maxSteps reductions, or until ctx is
// cancelled, whichever comes first. It reports whether the work stack
// was exhausted (true) or the budget/context cut it off (false) before
// reaching a normal form.
func (rt *Runtime) NormalizeWithBudget(ctx context.Context, maxSteps int) (net []connection.Connection, exhausted bool) {
	for i := 0; i < maxSteps && len(rt.work) > 0; i++ {
		select {
		case <-ctx.Done():
			return rt.index.All(), false
		default:
		}
		rt.step()
	}
	return rt.index.All(), len(rt.work) == 0
}

// step pops one scheduled action and performs its rewrite.
func (rt *Runtime) step() {
	n := len(rt.work)
	act := rt.work[n-1]
	rt.work = rt.work[:n-1]

	c, ok := rt.index.RemoveByLeftID(act.agentID)
	if !ok {
		panic(newFatal("reduce action pointed to id %d which is not in the index", act.agentID))
	}

	if !c.Left.IsAgent() || !c.Right.IsAgent() {
		panic(newFatal("reduce action pointed to a non-active pair at id %d", act.agentID))
	}

	left, right := c.Left.Agent(), c.Right.Agent()

	result := rt.rulebook.Rewrite(rt.ctx, left, right)

	if result.Stalled {
		rt.stats.UnmatchedPairs++
		// Insert directly: pushConnection would reschedule this exact
		// agent-agent pair and spin forever retrying a rule that will
		// never be registered.
		if err := rt.index.Insert(result.NewConnections[0]); err != nil {
			panic(newFatal("restoring stalled pair: %v", err))
		}
		return
	}

	rt.stats.Reductions++
	for _, nc := range result.NewConnections {
		rt.pushConnection(nc.Left, nc.Right)
	}
}
