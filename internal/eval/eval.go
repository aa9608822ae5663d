// Package eval implements the Carneades Argument Evaluation Structure: the
// recursive acceptability computation over an argument graph, an audience,
// and a proof-standard assignment.
package eval

import (
	"time"

	"github.com/ewan-klein/carneades/internal/graph"
	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/standard"
)

// Evaluator walks the argument graph asking "is statement S acceptable?",
// which asks "is any argument for S applicable?", which asks "is each
// premise of that argument acceptable?" — recursing until an assumption, a
// statement with no remaining arguments, or a cycle.
//
// The graph, audience, and assignment must not be mutated during
// evaluation; under that condition concurrent Evaluate calls are safe, as
// the recursion carries its own visited set.
//
// An assumption-premise absent from the audience's assumption set makes
// its argument inapplicable.
type Evaluator struct {
	graph      *graph.Graph
	audience   *model.Audience
	standards  *standard.Assignment
	thresholds standard.Thresholds
}

// New creates an evaluator over an immutable graph, audience, and
// standard assignment.
func New(g *graph.Graph, audience *model.Audience, standards *standard.Assignment, th standard.Thresholds) *Evaluator {
	return &Evaluator{graph: g, audience: audience, standards: standards, thresholds: th}
}

// visited tracks the statements on the current recursion path. A statement
// already on the path cannot support its own acceptance, so recursion depth
// is bounded by the number of distinct statements.
type visited map[model.Statement]struct{}

// Evaluate produces the verdict for a statement: accepted if the statement
// is acceptable, rejected if its negation is, undecided otherwise. If both
// sides meet their standards (possible only under scintilla), the verdict
// is undecided, so a statement and its negation are never both accepted.
func (e *Evaluator) Evaluate(s model.Statement) (model.Verdict, error) {
	// Assumptions win outright: an assumed statement is accepted whatever
	// the graph says.
	if e.audience.Assumes(s) {
		return model.VerdictAccepted, nil
	}
	if e.audience.Assumes(s.Negate()) {
		return model.VerdictRejected, nil
	}
	pro, err := e.acceptable(s, make(visited))
	if err != nil {
		return "", err
	}
	con, err := e.acceptable(s.Negate(), make(visited))
	if err != nil {
		return "", err
	}
	switch {
	case pro && con:
		return model.VerdictUndecided, nil
	case pro:
		return model.VerdictAccepted, nil
	case con:
		return model.VerdictRejected, nil
	}
	return model.VerdictUndecided, nil
}

// Acceptable reports whether the statement meets its assigned proof
// standard under the audience.
func (e *Evaluator) Acceptable(s model.Statement) (bool, error) {
	return e.acceptable(s, make(visited))
}

// Applicable reports whether every ordinary premise of the argument is
// acceptable, every assumption-premise is assumed by the audience, and no
// exception is acceptable.
func (e *Evaluator) Applicable(arg *model.Argument) (bool, error) {
	return e.applicable(arg, make(visited))
}

func (e *Evaluator) acceptable(s model.Statement, seen visited) (bool, error) {
	if e.audience.Assumes(s) {
		return true, nil
	}
	if _, onPath := seen[s]; onPath {
		// Cycle: treat the statement as undecided on this path.
		return false, nil
	}
	seen[s] = struct{}{}
	defer delete(seen, s)

	pro, err := e.applicableWeights(e.graph.ArgumentsFor(s), seen)
	if err != nil {
		return false, err
	}
	con, err := e.applicableWeights(e.graph.ArgumentsAgainst(s), seen)
	if err != nil {
		return false, err
	}
	return standard.Satisfied(e.standards.For(s), pro, con, e.thresholds)
}

// applicableWeights filters arguments to the applicable ones and returns
// their audience weights. Proof standards only ever see these.
func (e *Evaluator) applicableWeights(args []*model.Argument, seen visited) ([]float64, error) {
	var weights []float64
	for _, arg := range args {
		ok, err := e.applicable(arg, seen)
		if err != nil {
			return nil, err
		}
		if ok {
			weights = append(weights, e.audience.Weight(arg.ID))
		}
	}
	return weights, nil
}

func (e *Evaluator) applicable(arg *model.Argument, seen visited) (bool, error) {
	for _, p := range arg.Premises {
		if e.audience.Assumes(p) {
			continue
		}
		if e.audience.Assumes(p.Negate()) {
			return false, nil
		}
		ok, err := e.acceptable(p, seen)
		if err != nil || !ok {
			return false, err
		}
	}
	for _, p := range arg.Assumptions {
		if !e.audience.Assumes(p) {
			return false, nil
		}
	}
	for _, x := range arg.Exceptions {
		if e.audience.Assumes(x) {
			return false, nil
		}
		if e.audience.Assumes(x.Negate()) {
			continue
		}
		ok, err := e.acceptable(x, seen)
		if err != nil {
			return false, err
		}
		if ok {
			// An applicable exception defeats the argument regardless of
			// premise strength.
			return false, nil
		}
	}
	return true, nil
}

// Report evaluates the given target statements (or, when targets is empty,
// every atom in the graph) and records the applicability of each argument.
// An unknown standard aborts only the implicated target, recorded on its
// entry.
func (e *Evaluator) Report(title, source string, targets []model.Statement) *model.Report {
	return e.buildReport(e.Evaluate, title, source, targets)
}

func (e *Evaluator) buildReport(evaluate func(model.Statement) (model.Verdict, error), title, source string, targets []model.Statement) *model.Report {
	if len(targets) == 0 {
		targets = e.defaultTargets()
	}

	report := &model.Report{
		Case:        title,
		Source:      source,
		EvaluatedAt: time.Now().UTC(),
	}

	for _, s := range targets {
		tv := model.TargetVerdict{
			Statement: s.String(),
			Standard:  string(e.standards.For(s)),
		}
		verdict, err := evaluate(s)
		if err != nil {
			tv.Error = err.Error()
		} else {
			tv.Verdict = verdict
		}
		report.Targets = append(report.Targets, tv)
	}

	for _, arg := range e.graph.Arguments() {
		applicable, err := e.Applicable(arg)
		if err != nil {
			applicable = false
		}
		report.Arguments = append(report.Arguments, model.ArgumentStatus{
			ID:         arg.ID,
			Conclusion: arg.Conclusion.String(),
			Applicable: applicable,
			Weight:     e.audience.Weight(arg.ID),
		})
	}
	return report
}

// UnsupportedPremises maps each statement that some argument needs as a
// premise or assumption-premise, but that no argument concludes and the
// audience does not assume, to the IDs of the arguments depending on it.
// Such statements can never become acceptable, so the listed arguments can
// never apply; usually this means a typo in the case or a missing
// assumption. Exception-only uses are not flagged (an unsupported exception
// simply never defeats).
func (e *Evaluator) UnsupportedPremises() map[model.Statement][]string {
	out := make(map[model.Statement][]string)
	for _, s := range e.graph.Statements() {
		if e.audience.Assumes(s) || len(e.graph.ArgumentsFor(s)) > 0 {
			continue
		}
		var ids []string
		for _, id := range e.graph.Dependents(s) {
			arg, ok := e.graph.ByID(id)
			if !ok {
				continue
			}
			if usesAsPremise(arg, s) {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			out[s] = ids
		}
	}
	return out
}

func usesAsPremise(arg *model.Argument, s model.Statement) bool {
	for _, p := range arg.Premises {
		if p == s {
			return true
		}
	}
	for _, p := range arg.Assumptions {
		if p == s {
			return true
		}
	}
	return false
}

// defaultTargets lists each atom in the graph once, in its positive form.
// Evaluate is symmetric in polarity, so evaluating the positive literal
// covers its negation.
func (e *Evaluator) defaultTargets() []model.Statement {
	seen := make(map[string]struct{})
	var targets []model.Statement
	for _, s := range e.graph.Statements() {
		if _, dup := seen[s.Atom]; dup {
			continue
		}
		seen[s.Atom] = struct{}{}
		targets = append(targets, model.Prop(s.Atom))
	}
	return targets
}
