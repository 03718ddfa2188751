package rule

import (
	"github.com/vic/inet/internal/connection"
	"github.com/vic/inet/internal/term"
	"github.com/vic/inet/rewrite"
)

// builtins returns the six interaction rules over
// {Eraser, Constructor, Duplicator}, keyed by their canonical pattern.
// Each rule receives its two agents already sorted to match the
// pattern's kind order.
func builtins() map[Pattern]Rule {
	m := map[Pattern]Rule{}
	m[NewPattern(term.Eraser, term.Eraser)] = eraEra
	m[NewPattern(term.Constructor, term.Constructor)] = ctrCtrOrDupDup
	m[NewPattern(term.Duplicator, term.Duplicator)] = ctrCtrOrDupDup
	m[NewPattern(term.Duplicator, term.Eraser)] = eraToDupOrCtr
	m[NewPattern(term.Constructor, term.Eraser)] = eraToDupOrCtr
	m[NewPattern(term.Constructor, term.Duplicator)] = dupCtr
	return m
}

// eraEra annihilates two Erasers: both vanish, nothing new is produced.
func eraEra(ctx *rewrite.Context, a, b term.Agent) Result {
	ctx.Retire(a.ID)
	ctx.Retire(b.ID)
	return Empty()
}

// ctrCtrOrDupDup annihilates two agents of identical arity-2 kind
// (Constructor-Constructor or Duplicator-Duplicator): both vanish, their
// aux ports are cross-wired to each other.
func ctrCtrOrDupDup(ctx *rewrite.Context, a, b term.Agent) Result {
	ctx.Retire(a.ID)
	ctx.Retire(b.ID)

	a0, a1 := a.Ports[0], a.Ports[1]
	b0, b1 := b.Ports[0], b.Ports[1]

	return FromConnections([]connection.Connection{
		connection.New(a0, b0),
		connection.New(a1, b1),
	})
}

// eraToDupOrCtr commutes an Eraser past an arity-2 agent (Duplicator or
// Constructor): the arity-2 agent is destroyed, replaced by two fresh
// Erasers wired to its two aux ports. The two new Eraser ids reuse the
// two consumed ids, since retirement is only an advisory hint.
func eraToDupOrCtr(ctx *rewrite.Context, era, dupOrCtr term.Agent) Result {
	a, b := dupOrCtr.Ports[0], dupOrCtr.Ports[1]

	eraA := ctx.ReuseID(dupOrCtr.ID, term.Eraser)
	eraB := ctx.ReuseID(era.ID, term.Eraser)

	return FromConnections([]connection.Connection{
		connection.New(eraA, a),
		connection.New(eraB, b),
	})
}

// dupCtr is the duplication/commutation rule: a Duplicator meeting a
// Constructor produces two fresh Constructors and two fresh Duplicators,
// joined by four fresh internal wires. The output ports are swapped
// relative to the input ports — ctr_a's external wire goes out through
// what was dup's first input slot, and vice versa — which is what makes
// this rule actually duplicate the Constructor's substructure instead of
// just relabeling it.
func dupCtr(ctx *rewrite.Context, dup, ctr term.Agent) Result {
	ctrAIn, ctrBIn := ctr.Ports[0], ctr.Ports[1]
	dupAIn, dupBIn := dup.Ports[0], dup.Ports[1]

	ctrAOut := dupAIn
	ctrBOut := dupBIn
	dupAOut := ctrAIn
	dupBOut := ctrBIn

	w0ctr, w0dup := ctx.CreateWire()
	w1ctr, w1dup := ctx.CreateWire()
	w2ctr, w2dup := ctx.CreateWire()
	w3ctr, w3dup := ctx.CreateWire()

	ctrA := ctx.CreateAgent(term.Constructor, w1ctr, w0ctr)
	ctrB := ctx.CreateAgent(term.Constructor, w3ctr, w2ctr)
	dupA := ctx.CreateAgent(term.Duplicator, w1dup, w3dup)
	dupB := ctx.CreateAgent(term.Duplicator, w0dup, w2dup)

	return FromConnections([]connection.Connection{
		connection.New(w0ctr, w0dup),
		connection.New(w1ctr, w1dup),
		connection.New(w2ctr, w2dup),
		connection.New(w3ctr, w3dup),
		connection.New(ctrA, ctrAOut),
		connection.New(ctrB, ctrBOut),
		connection.New(dupA, dupAOut),
		connection.New(dupB, dupBOut),
	})
}
