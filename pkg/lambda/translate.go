package lambda

import (
	"fmt"
	"sort"

	"github.com/vic/inet/internal/connection"
	"github.com/vic/inet/internal/id"
	"github.com/vic/inet/internal/term"
)

// Translation is the initial net built from a lambda term, ready to be
// handed to a runtime.
type Translation struct {
	Connections  []connection.Connection
	Output       term.Term
	FreeVarNames map[int]string
	Allocator    *id.Allocator
}

// ToNet encodes t as an interaction net using the classic (non-optimal)
// Lafont encoding of untyped lambda calculus into {Eraser, Constructor,
// Duplicator} nets:
//
//   - An abstraction (λx. body) becomes a Constructor whose first aux
//     port is the wire the bound argument arrives on and whose second
//     aux port is the wire the body's value leaves on.
//   - An application (f a) becomes a Constructor whose first aux port
//     carries the argument's value and whose second aux port is the
//     wire the application's result leaves on. Beta reduction is then
//     exactly Constructor-Constructor annihilation: the two
//     Constructors meet at their principal ports and cross-wire their
//     aux ports, delivering the argument into the binder and the body's
//     value out to the result wire in one step.
//   - A variable used zero times is wired to a fresh Eraser. Used once,
//     it is simply the binder wire. Used N>1 times, a binary tree of
//     Duplicators shares the binder wire out to N leaves, one per
//     occurrence. The leaves, in left-to-right tree order, are handed
//     out in the order build walks the body, which visits an
//     application's argument before its function.
//   - A free variable becomes a zero-arity Dynamic agent tagged by a
//     per-translation integer assigned to its name. No rule is
//     registered for Dynamic agents, so anything that ends up applied
//     to (or erased against, or duplicated into) a free variable stalls
//     as inert residue rather than panicking — an unbound name is a
//     semantic gap, not a runtime bug.
func ToNet(t Term) *Translation {
	b := &builder{alloc: id.NewAllocator(), freeVars: map[string]int{}}

	value := b.build(t, map[string][]term.Term{})
	outPort := term.NewPortTerm(b.alloc.Next())
	b.connect(value, outPort)

	return &Translation{
		Connections:  b.conns,
		Output:       outPort,
		FreeVarNames: invert(b.freeVars),
		Allocator:    b.alloc,
	}
}

type builder struct {
	alloc    *id.Allocator
	conns    []connection.Connection
	freeVars map[string]int
}

func (b *builder) connect(a, c term.Term) {
	b.conns = append(b.conns, connection.New(a, c))
}

func (b *builder) freshPort() term.Term {
	return term.NewPortTerm(b.alloc.Next())
}

func (b *builder) freeVarTag(name string) int {
	if tag, ok := b.freeVars[name]; ok {
		return tag
	}
	tag := len(b.freeVars)
	b.freeVars[name] = tag
	return tag
}

// build returns the Term carrying t's value, wiring up env's entries
// (bound name -> remaining leaf wires, consumed one per occurrence in
// traversal order) and any free child structure along the way.
func (b *builder) build(t Term, env map[string][]term.Term) term.Term {
	switch v := t.(type) {
	case Var:
		if leaves, ok := env[v.Name]; ok && len(leaves) > 0 {
			leaf := leaves[0]
			env[v.Name] = leaves[1:]
			return leaf
		}
		return term.FromAgent(term.NewAgent(b.alloc.Next(), term.Dynamic(b.freeVarTag(v.Name))))

	case Abs:
		n := countOccurrences(v.Body, v.Arg)
		argPort := b.freshPort()

		var leaves []term.Term
		if n == 0 {
			eraser := term.FromAgent(term.NewEraser(b.alloc.Next()))
			b.connect(eraser, argPort)
		} else {
			root, lvs := b.buildDupTree(n)
			leaves = lvs
			b.connect(root, argPort)
		}

		bodyPort := b.freshPort()
		abs := term.FromAgent(term.NewConstructor(b.alloc.Next(), argPort, bodyPort))

		childEnv := copyEnv(env)
		childEnv[v.Arg] = leaves
		bodyValue := b.build(v.Body, childEnv)
		b.connect(bodyValue, bodyPort)

		// Leaves of outer binders consumed inside the body stay consumed.
		for name := range env {
			if name != v.Arg {
				env[name] = childEnv[name]
			}
		}

		return abs

	case App:
		argValue := b.build(v.Arg, env)
		funValue := b.build(v.Fun, env)

		argPort := b.freshPort()
		resultPort := b.freshPort()
		app := term.FromAgent(term.NewConstructor(b.alloc.Next(), argPort, resultPort))

		b.connect(argPort, argValue)
		b.connect(app, funValue)

		return resultPort

	case Let:
		return b.build(App{Fun: Abs{Arg: v.Name, Body: v.Body}, Arg: v.Val}, env)

	default:
		panic(fmt.Sprintf("lambda: unknown term type %T", t))
	}
}

// buildDupTree returns the root term of a binary tree of n-1
// Duplicators sharing one wire into n leaf ports, and the n leaves in
// left-to-right order. Internal tree edges are embedded directly as
// each Duplicator's aux ports rather than pushed as separate
// connections, the same way a constructed agent may reference another
// agent's identity directly as one of its own ports.
func (b *builder) buildDupTree(n int) (term.Term, []term.Term) {
	if n == 1 {
		p := b.freshPort()
		return p, []term.Term{p}
	}

	leftN := (n + 1) / 2
	rightN := n - leftN

	leftRoot, leftLeaves := b.buildDupTree(leftN)
	rightRoot, rightLeaves := b.buildDupTree(rightN)

	dup := term.FromAgent(term.NewDuplicator(b.alloc.Next(), leftRoot, rightRoot))
	return dup, append(leftLeaves, rightLeaves...)
}

// countOccurrences counts free uses of name within t, stopping at any
// inner binder that rebinds the same name.
func countOccurrences(t Term, name string) int {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return 1
		}
		return 0
	case Abs:
		if v.Arg == name {
			return 0
		}
		return countOccurrences(v.Body, name)
	case App:
		return countOccurrences(v.Fun, name) + countOccurrences(v.Arg, name)
	case Let:
		count := countOccurrences(v.Val, name)
		if v.Name == name {
			return count
		}
		return count + countOccurrences(v.Body, name)
	default:
		return 0
	}
}

func copyEnv(env map[string][]term.Term) map[string][]term.Term {
	out := make(map[string][]term.Term, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

func invert(m map[string]int) map[int]string {
	out := make(map[int]string, len(m))
	for name, tag := range m {
		out[tag] = name
	}
	return out
}

// DescribeResult gives a best-effort, human-readable account of where
// the output wire ended up in net. A full readback into a lambda.Term
// is not attempted: after normalization a Constructor may be a genuine
// function value or a stuck application, and the plain Lafont encoding
// used here does not keep enough information at runtime to tell the two
// apart, unlike an encoding with per-role node kinds.
func DescribeResult(net []connection.Connection, output term.Term, freeVarNames map[int]string) string {
	for _, c := range net {
		var other term.Term
		switch {
		case c.Left.ID() == output.ID():
			other = c.Right
		case c.Right.ID() == output.ID():
			other = c.Left
		default:
			continue
		}

		if !other.IsAgent() {
			return fmt.Sprintf("result wire still pending, connected to %s", other)
		}

		agent := other.Agent()
		switch {
		case agent.Kind == term.Constructor:
			return "reduced to a function value (unapplied abstraction, or a stuck application)"
		case agent.Kind == term.Eraser:
			return "reduced to an erased (unused) value"
		case agent.Kind == term.Duplicator:
			return "result wire feeds a pending duplication"
		case agent.Kind.IsDynamic():
			if name, ok := freeVarNames[agent.Kind.Tag()]; ok {
				return fmt.Sprintf("stuck on free variable %q", name)
			}
			return "stuck on an unbound name"
		}
	}

	return describeMissing(net, output)
}

func describeMissing(net []connection.Connection, output term.Term) string {
	ids := make([]uint64, 0, len(net))
	for _, c := range net {
		ids = append(ids, c.Left.ID(), c.Right.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return fmt.Sprintf("result wire %d not found in final net (have ids %v)", output.ID(), ids)
}
