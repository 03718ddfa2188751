package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/inet/internal/connection"
	"github.com/vic/inet/internal/id"
	"github.com/vic/inet/internal/term"
)

func newRuntime(initial []connection.Connection) *Runtime {
	return New(initial, nil, id.NewAllocator(), nil)
}

// Scenario 1: an empty run normalizes to an empty net.
func TestEmptyRun(t *testing.T) {
	rt := newRuntime(nil)
	assert.Empty(t, rt.Normalize())
}

// Scenario 2: pure Eraser-Eraser annihilation leaves nothing behind.
func TestPureAnnihilation(t *testing.T) {
	rt := newRuntime([]connection.Connection{
		connection.FromAgents(term.NewEraser(0), term.NewEraser(1)),
	})

	assert.Empty(t, rt.Normalize())
	assert.Equal(t, uint64(1), rt.Stats().Reductions)
}

// Scenario 3: a Constructor whose two aux ports are the SAME port (a
// mirror/self-loop) meeting another Constructor folds the self-loop
// into a direct wire between the second Constructor's two aux ports,
// exercising push_connection's Port-Port collapsing logic.
func TestCtrMirrorSelfLoopCollapses(t *testing.T) {
	alloc := id.NewAllocatorAt(10)
	mirror := alloc.Next()
	q0, q1 := alloc.Next(), alloc.Next()

	mirrorPort := term.NewPortTerm(mirror)
	a := term.NewConstructor(alloc.Next(), mirrorPort, mirrorPort)
	b := term.NewConstructor(alloc.Next(), term.NewPortTerm(q0), term.NewPortTerm(q1))

	rt := New([]connection.Connection{connection.FromAgents(a, b)}, nil, alloc, nil)
	net := rt.Normalize()

	require.Len(t, net, 1)
	got := net[0]
	ids := map[uint64]bool{got.Left.ID(): true, got.Right.ID(): true}
	assert.True(t, ids[q0])
	assert.True(t, ids[q1])
}

// Scenario 4: erasing the principal of a small Constructor tree
// cascades: erasing the root schedules an Eraser-Constructor commutation
// on every Constructor it meets, down to the leaves.
func TestEraseConstructorTreeCascades(t *testing.T) {
	alloc := id.NewAllocatorAt(0)
	x, y, z := alloc.Next(), alloc.Next(), alloc.Next()

	leaf := term.NewConstructor(alloc.Next(), term.NewPortTerm(x), term.NewPortTerm(y))
	root := term.NewAgent(alloc.Next(), term.Constructor, term.FromAgent(leaf), term.NewPortTerm(z))
	eraser := term.NewEraser(alloc.Next())

	rt := New([]connection.Connection{connection.FromAgents(eraser, root)}, nil, alloc, nil)
	net := rt.Normalize()

	require.Len(t, net, 3)
	seenLeaves := map[uint64]bool{}
	for _, c := range net {
		require.False(t, c.Left.IsAgent(), "a leaf port should sit on the left of its pending Eraser connection")
		require.True(t, c.Right.IsAgent())
		assert.Equal(t, term.Eraser, c.Right.Kind())
		seenLeaves[c.Left.ID()] = true
	}
	assert.True(t, seenLeaves[x])
	assert.True(t, seenLeaves[y])
	assert.True(t, seenLeaves[z])
}

// Scenario 5: a Duplicator copying a Constructor produces the eight
// connections the duplication rule builds: four internal wires and four
// agent-to-external links.
func TestDuplicatorCopiesConstructor(t *testing.T) {
	alloc := id.NewAllocatorAt(0)
	a0, a1, b0, b1 := alloc.Next(), alloc.Next(), alloc.Next(), alloc.Next()

	ctr := term.NewConstructor(alloc.Next(), term.NewPortTerm(a0), term.NewPortTerm(a1))
	dup := term.NewDuplicator(alloc.Next(), term.NewPortTerm(b0), term.NewPortTerm(b1))

	rt := New([]connection.Connection{connection.FromAgents(ctr, dup)}, nil, alloc, nil)
	net := rt.Normalize()

	assert.Len(t, net, 8)
	assert.Equal(t, uint64(1), rt.Stats().Reductions)
}

// Scenario 6: an active pair with no registered rule (a pair of
// caller-defined Dynamic agents) is left as inert residue instead of
// being rewritten, and the runtime terminates rather than retrying it
// forever.
func TestUnknownRuleLeavesResidue(t *testing.T) {
	a := term.NewAgent(0, term.Dynamic(7))
	b := term.NewAgent(1, term.Dynamic(8))

	rt := newRuntime([]connection.Connection{connection.FromAgents(a, b)})
	net := rt.Normalize()

	require.Len(t, net, 1)
	assert.True(t, net[0].IsActivePair())
	assert.Equal(t, uint64(1), rt.Stats().UnmatchedPairs)
}
