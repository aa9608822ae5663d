package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// DefaultWeight is assigned to arguments the audience does not weight
// explicitly.
const DefaultWeight = 1.0

// Audience pairs a set of assumed statements with a weighting of arguments.
// It represents one reasoner's starting beliefs and is immutable once built.
type Audience struct {
	assumptions map[Statement]struct{}
	weights     map[string]float64
}

// NewAudience builds an audience from assumed statements and an optional
// argument-ID → weight map. Weights must be non-negative, and the assumption
// set may not contain a statement together with its negation: an audience
// assuming both would accept both, breaking the exclusivity of acceptance.
func NewAudience(assumptions []Statement, weights map[string]float64) (*Audience, error) {
	set := make(map[Statement]struct{}, len(assumptions))
	for _, s := range assumptions {
		if _, ok := set[s.Negate()]; ok {
			return nil, Configf("audience assumes both %q and its negation", s.Atom)
		}
		set[s] = struct{}{}
	}
	copied := make(map[string]float64, len(weights))
	for id, w := range weights {
		if w < 0 {
			return nil, Configf("argument %q has negative weight %v", id, w)
		}
		copied[id] = w
	}
	return &Audience{assumptions: set, weights: copied}, nil
}

// Assumes reports whether the audience takes the statement for granted.
func (a *Audience) Assumes(s Statement) bool {
	_, ok := a.assumptions[s]
	return ok
}

// Weight returns the audience's weight for an argument, or DefaultWeight if
// the argument was not listed.
func (a *Audience) Weight(argID string) float64 {
	if w, ok := a.weights[argID]; ok {
		return w
	}
	return DefaultWeight
}

// Assumptions returns the assumed statements in a stable order.
func (a *Audience) Assumptions() []Statement {
	out := make([]Statement, 0, len(a.assumptions))
	for s := range a.assumptions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Fingerprint digests the audience's contents for cache keying. Two
// audiences with the same assumptions and weights share a fingerprint.
func (a *Audience) Fingerprint() string {
	var b strings.Builder
	for _, s := range a.Assumptions() {
		fmt.Fprintf(&b, "a:%s\n", s)
	}
	ids := make([]string, 0, len(a.weights))
	for id := range a.weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "w:%s=%v\n", id, a.weights[id])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
