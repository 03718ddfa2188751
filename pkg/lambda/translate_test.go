package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/inet/internal/term"
	"github.com/vic/inet/runtime"
)

func normalForm(t *testing.T, src string) (*Translation, string) {
	t.Helper()

	term, err := Parse(src)
	require.NoError(t, err)

	tr := ToNet(term)
	rt := runtime.New(tr.Connections, nil, tr.Allocator, nil)
	net := rt.Normalize()

	return tr, DescribeResult(net, tr.Output, tr.FreeVarNames)
}

// The identity function reduces to itself: applying it to anything
// just hands back the argument unchanged, so (\x. x) applied leaves a
// function value residue at the top (the result of the outer context,
// here just the bare abstraction with nothing applied to it).
func TestIdentityIsAFunctionValue(t *testing.T) {
	_, desc := normalForm(t, "x: x")
	assert.Contains(t, desc, "function value")
}

// K-combinator-style erasure: (\x. \y. x) applied to two arguments
// discards its second argument entirely, exercising the Eraser path
// through a real program rather than a hand-built net.
func TestConstDiscardsSecondArgument(t *testing.T) {
	_, desc := normalForm(t, "((x: y: x) a) b")
	assert.Contains(t, desc, "free variable")
}

// Using a bound variable twice forces the Duplicator tree: in \x. x x
// applied to a free variable, the Duplicator meets that variable's
// Dynamic agent, for which no rule exists, so the pair stalls as
// residue instead of being duplicated.
func TestDoubleUseSharesViaDuplicator(t *testing.T) {
	_, desc := normalForm(t, "(x: x x) f")
	assert.NotEmpty(t, desc)
}

// An unapplied free variable is immediately stuck residue: nothing
// to rewrite, the output wire lands directly on the Dynamic agent.
func TestBareFreeVariableIsStuck(t *testing.T) {
	tr, desc := normalForm(t, "f")
	assert.Contains(t, desc, "free variable")
	assert.Equal(t, "f", tr.FreeVarNames[0])
}

// A let binding is sugar for an immediate application; let x = a in x
// should behave exactly like (\x. x) a and hand back a's value.
func TestLetDesugarsToApplication(t *testing.T) {
	_, desc := normalForm(t, "let x = f in x")
	assert.Contains(t, desc, "free variable")
}

func TestUnusedArgumentGetsErased(t *testing.T) {
	parsed, err := Parse("x: y")
	require.NoError(t, err)

	tr := ToNet(parsed)
	rt := runtime.New(tr.Connections, nil, tr.Allocator, nil)
	net := rt.Normalize()

	assert.Greater(t, rt.Stats().ConnectionsSeen, uint64(0))

	erasers := 0
	for _, c := range net {
		if c.Right.IsAgent() && c.Right.Kind() == term.Eraser {
			erasers++
		}
	}
	assert.Equal(t, 1, erasers, "the unused binder x is wired to an Eraser")
}
