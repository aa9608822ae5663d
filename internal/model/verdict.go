package model

// Verdict is the three-valued outcome of evaluating a statement. There are
// no partial or numeric grades: acceptance is a discrete judgment driven by
// the proof-standard rules.
type Verdict string

const (
	VerdictAccepted  Verdict = "accepted"
	VerdictRejected  Verdict = "rejected"
	VerdictUndecided Verdict = "undecided"
)
