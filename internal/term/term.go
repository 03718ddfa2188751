// Package term defines the tagged net values: agents, ports, and the
// Term union over them. Identity and equality are strictly by id;
// everything else (kind, ports, name) is payload.
package term

import "fmt"

// Kind distinguishes the four agent families the rulebook dispatches on.
// Eraser has arity 0; Constructor and Duplicator have arity 2; Dynamic
// carries a caller-defined tag, and a Dynamic agent's arity is the
// number of ports its caller gives it.
type Kind struct {
	tag     int
	dynamic bool
}

var (
	Eraser      = Kind{tag: 0}
	Duplicator  = Kind{tag: 1}
	Constructor = Kind{tag: 2}
)

// Dynamic returns the Kind for a caller-defined agent family tagged k.
// Two Dynamic kinds are equal iff their tags match.
func Dynamic(k int) Kind {
	return Kind{tag: k, dynamic: true}
}

// IsDynamic reports whether k was produced by Dynamic.
func (k Kind) IsDynamic() bool { return k.dynamic }

// Tag returns the Dynamic tag k carries, or 0 for the built-in kinds.
func (k Kind) Tag() int {
	if !k.dynamic {
		return 0
	}
	return k.tag
}

// order gives built-in kinds a total order for canonicalizing unordered
// kind pairs; Dynamic kinds sort after all built-ins, by tag.
func (k Kind) order() int {
	if k.dynamic {
		return 1000 + k.tag
	}
	return k.tag
}

// Less reports whether k sorts before other under the rulebook's
// canonical kind-pair ordering.
func (k Kind) Less(other Kind) bool {
	return k.order() < other.order()
}

func (k Kind) String() string {
	switch {
	case k.dynamic:
		return fmt.Sprintf("Dynamic[%d]", k.tag)
	case k == Eraser:
		return "Eraser"
	case k == Duplicator:
		return "Duplicator"
	case k == Constructor:
		return "Constructor"
	default:
		return fmt.Sprintf("Kind(%d)", k.tag)
	}
}

// Port is a bare wire endpoint: an id and an optional display name used
// only for debug rendering.
type Port struct {
	ID   uint64
	Name string
}

// NewPort returns a nameless port with the given id.
func NewPort(id uint64) Port {
	return Port{ID: id}
}

// NewNamedPort returns a port with the given id and display name.
func NewNamedPort(id uint64, name string) Port {
	return Port{ID: id, Name: name}
}

func (p Port) String() string {
	if p.Name != "" {
		return fmt.Sprintf("p<%d,%s>", p.ID, p.Name)
	}
	return fmt.Sprintf("p_%d", p.ID)
}

// Agent is a node with an id, a kind, and ports.length == arity(kind)
// auxiliary ports. The agent's own identity is its principal port.
type Agent struct {
	ID    uint64
	Kind  Kind
	Ports []Term
	Name  string
}

// NewEraser returns a fresh, arity-0 Eraser agent.
func NewEraser(id uint64) Agent {
	return Agent{ID: id, Kind: Eraser}
}

// NewConstructor returns a fresh, arity-2 Constructor agent.
func NewConstructor(id uint64, a, b Term) Agent {
	return Agent{ID: id, Kind: Constructor, Ports: []Term{a, b}}
}

// NewDuplicator returns a fresh, arity-2 Duplicator agent.
func NewDuplicator(id uint64, a, b Term) Agent {
	return Agent{ID: id, Kind: Duplicator, Ports: []Term{a, b}}
}

// NewAgent returns an agent of an arbitrary kind (typically Dynamic)
// with the given ports.
func NewAgent(id uint64, kind Kind, ports ...Term) Agent {
	return Agent{ID: id, Kind: kind, Ports: ports}
}

func (a Agent) String() string {
	label := fmt.Sprintf("%d", a.ID)
	if a.Name != "" {
		label = a.Name
	}
	s := fmt.Sprintf("%s_%s(", a.Kind, label)
	for i, p := range a.Ports {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ")"
}

// Term is the tagged union {Agent, Port}. Exactly one of the two
// accessors is meaningful for a given Term; IsAgent reports which.
type Term struct {
	agent   Agent
	port    Port
	isAgent bool
}

// FromAgent wraps an Agent as a Term.
func FromAgent(a Agent) Term {
	return Term{agent: a, isAgent: true}
}

// FromPort wraps a Port as a Term.
func FromPort(p Port) Term {
	return Term{port: p}
}

// NewPortTerm is a convenience wrapping a bare port id as a Term.
func NewPortTerm(id uint64) Term {
	return FromPort(NewPort(id))
}

// IsAgent reports whether this Term holds an Agent rather than a Port.
func (t Term) IsAgent() bool { return t.isAgent }

// Agent returns the wrapped Agent; valid only when IsAgent is true.
func (t Term) Agent() Agent { return t.agent }

// Port returns the wrapped Port; valid only when IsAgent is false.
func (t Term) Port() Port { return t.port }

// ID returns the identifier of whichever value this Term wraps.
func (t Term) ID() uint64 {
	if t.isAgent {
		return t.agent.ID
	}
	return t.port.ID
}

// Kind returns the wrapped Agent's kind; valid only when IsAgent is true.
func (t Term) Kind() Kind {
	return t.agent.Kind
}

// Equal reports identity equality: two Terms are equal iff their ids match.
func (t Term) Equal(other Term) bool {
	return t.ID() == other.ID()
}

func (t Term) String() string {
	if t.isAgent {
		return t.agent.String()
	}
	return t.port.String()
}
