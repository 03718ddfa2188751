package rule

import "github.com/vic/inet/internal/term"

// Pattern is a canonicalized, unordered pair of agent kinds: the
// rulebook's lookup key for an active pair.
type Pattern struct {
	a, b term.Kind
}

// NewPattern returns the Pattern for the unordered pair {a, b}.
func NewPattern(a, b term.Kind) Pattern {
	if a.Less(b) {
		return Pattern{a: a, b: b}
	}
	return Pattern{a: b, b: a}
}

// FromAgents returns the Pattern for two agents about to be rewritten.
func FromAgents(a, b term.Agent) Pattern {
	return NewPattern(a.Kind, b.Kind)
}
