package rule

import (
	"github.com/vic/inet/internal/term"
	"github.com/vic/inet/rewrite"
)

// Rule rewrites one active pair. left and right are always sorted by
// the registered Pattern's order, not necessarily the order the agents
// met in at push time.
type Rule func(ctx *rewrite.Context, left, right term.Agent) Result
