// Package graph holds the argument graph: the structure relating statements
// to the arguments that conclude them and to the arguments that depend on
// them. The graph is append-only; it is built once and then evaluated.
package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/ewan-klein/carneades/internal/model"
)

// Graph indexes arguments by conclusion and by identifier. Cycles (arguments
// whose premises transitively depend on their own conclusion) are legal
// shapes here; the evaluator detects them, the graph does not forbid them.
type Graph struct {
	pro        map[model.Statement][]*model.Argument
	byID       map[string]*model.Argument
	dependents map[model.Statement][]string // statement -> IDs of arguments using it as premise/exception
	order      []string                     // insertion order of argument IDs
}

// New creates an empty argument graph.
func New() *Graph {
	return &Graph{
		pro:        make(map[model.Statement][]*model.Argument),
		byID:       make(map[string]*model.Argument),
		dependents: make(map[model.Statement][]string),
	}
}

// AddArgument inserts an argument into the pro-index keyed by its
// conclusion. Re-using an argument identifier is a configuration error.
func (g *Graph) AddArgument(arg *model.Argument) error {
	if _, exists := g.byID[arg.ID]; exists {
		return model.Configf("duplicate argument identifier %q", arg.ID)
	}
	g.byID[arg.ID] = arg
	g.order = append(g.order, arg.ID)
	g.pro[arg.Conclusion] = append(g.pro[arg.Conclusion], arg)

	seen := make(map[model.Statement]struct{})
	for _, group := range [][]model.Statement{arg.Premises, arg.Assumptions, arg.Exceptions} {
		for _, s := range group {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			g.dependents[s] = append(g.dependents[s], arg.ID)
		}
	}
	return nil
}

// ArgumentsFor returns the arguments whose conclusion equals the statement.
// Never fails; empty when none are registered.
func (g *Graph) ArgumentsFor(s model.Statement) []*model.Argument {
	return g.pro[s]
}

// ArgumentsAgainst returns the arguments concluding the statement's
// negation.
func (g *Graph) ArgumentsAgainst(s model.Statement) []*model.Argument {
	return g.pro[s.Negate()]
}

// Dependents returns the IDs of arguments that use the statement as a
// premise, assumption-premise, or exception.
func (g *Graph) Dependents(s model.Statement) []string {
	return g.dependents[s]
}

// ByID looks up an argument by its identifier.
func (g *Graph) ByID(id string) (*model.Argument, bool) {
	arg, ok := g.byID[id]
	return arg, ok
}

// Arguments returns all arguments in insertion order.
func (g *Graph) Arguments() []*model.Argument {
	out := make([]*model.Argument, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.byID[id])
	}
	return out
}

// Statements returns every statement mentioned anywhere in the graph
// (conclusions, premises, assumption-premises, exceptions), in a stable
// order.
func (g *Graph) Statements() []model.Statement {
	set := make(map[model.Statement]struct{})
	for _, arg := range g.byID {
		set[arg.Conclusion] = struct{}{}
		for _, group := range [][]model.Statement{arg.Premises, arg.Assumptions, arg.Exceptions} {
			for _, s := range group {
				set[s] = struct{}{}
			}
		}
	}
	out := make([]model.Statement, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of arguments in the graph.
func (g *Graph) Len() int {
	return len(g.byID)
}

// Fingerprint digests the graph's contents for cache keying. Insertion
// order does not matter: two graphs holding the same arguments share a
// fingerprint.
func (g *Graph) Fingerprint() string {
	ids := make([]string, 0, len(g.byID))
	for id := range g.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%s: %s\n", id, g.byID[id])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
