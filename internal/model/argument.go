package model

import (
	"fmt"
	"sort"
	"strings"
)

// Argument is a defeasible inference from premises to a single conclusion.
//
// Ordinary premises must be independently acceptable for the argument to
// apply. Assumption-premises are weaker: they only need to be among the
// audience's assumptions and are never argued for. Any acceptable exception
// defeats the argument outright.
type Argument struct {
	ID          string      `json:"id"`
	Conclusion  Statement   `json:"conclusion"`
	Premises    []Statement `json:"premises,omitempty"`
	Assumptions []Statement `json:"assumptions,omitempty"`
	Exceptions  []Statement `json:"exceptions,omitempty"`
}

// NewArgument builds an argument and validates its shape: the conclusion may
// not appear among its own premises, assumption-premises, or exceptions.
func NewArgument(id string, conclusion Statement, premises, assumptions, exceptions []Statement) (*Argument, error) {
	if id == "" {
		return nil, Configf("argument has no identifier")
	}
	for _, group := range [][]Statement{premises, assumptions, exceptions} {
		for _, s := range group {
			if s == conclusion {
				return nil, Configf("argument %q: conclusion %s appears among its own premises or exceptions", id, conclusion)
			}
		}
	}
	return &Argument{
		ID:          id,
		Conclusion:  conclusion,
		Premises:    premises,
		Assumptions: assumptions,
		Exceptions:  exceptions,
	}, nil
}

// String renders the argument with sorted premises and exceptions,
// e.g. "[intent, kill], ~[] => murder".
func (a *Argument) String() string {
	premises := make([]Statement, 0, len(a.Premises)+len(a.Assumptions))
	premises = append(premises, a.Premises...)
	premises = append(premises, a.Assumptions...)
	return fmt.Sprintf("%s, ~%s => %s",
		renderStatements(premises),
		renderStatements(a.Exceptions),
		a.Conclusion)
}

func renderStatements(stmts []Statement) string {
	texts := make([]string, len(stmts))
	for i, s := range stmts {
		texts[i] = s.String()
	}
	sort.Strings(texts)
	return "[" + strings.Join(texts, ", ") + "]"
}
