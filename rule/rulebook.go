package rule

import (
	"github.com/hashicorp/go-hclog"

	"github.com/vic/inet/internal/connection"
	"github.com/vic/inet/internal/term"
	"github.com/vic/inet/rewrite"
)

// Rulebook dispatches an active pair's canonicalized kind pair to the
// Rule registered for it. A pair with no registered rule is left inert
// and a warning is logged; this is a semantic gap, not a fatal error.
type Rulebook struct {
	rules  map[Pattern]Rule
	logger hclog.Logger
}

// NewRulebook returns an empty Rulebook, logging to logger. A nil logger
// is replaced with a no-op logger.
func NewRulebook(logger hclog.Logger) *Rulebook {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Rulebook{rules: map[Pattern]Rule{}, logger: logger}
}

// DefaultRulebook returns a Rulebook preloaded with the six built-in
// Eraser/Constructor/Duplicator rules.
func DefaultRulebook(logger hclog.Logger) *Rulebook {
	rb := NewRulebook(logger)
	for pattern, r := range builtins() {
		rb.AddRule(pattern, r)
	}
	return rb
}

// AddRule registers rule for pattern, overwriting any existing
// registration, and returns the Rulebook for chaining.
func (rb *Rulebook) AddRule(pattern Pattern, r Rule) *Rulebook {
	rb.rules[pattern] = r
	return rb
}

// Rewrite dispatches the active pair (left, right) to its registered
// rule. If none is registered, left and right are logged as a semantic
// gap and returned unchanged as a single stalled connection.
func (rb *Rulebook) Rewrite(ctx *rewrite.Context, left, right term.Agent) Result {
	pattern := FromAgents(left, right)
	r, ok := rb.rules[pattern]
	if !ok {
		rb.logger.Warn("no rewrite rule for active pair", "left", left.Kind.String(), "right", right.Kind.String())
		return Result{
			NewConnections: []connection.Connection{connection.FromAgents(left, right)},
			Stalled:        true,
		}
	}

	// Rules are written assuming their two arguments are sorted in the
	// pattern's own kind order, matching the original's "agents passed
	// into this function are sorted by their AgentKind" contract.
	if right.Kind.Less(left.Kind) {
		left, right = right, left
	}

	return r(ctx, left, right)
}
