package model

import "time"

// Report is the complete result of evaluating a case: one verdict per
// target statement plus the applicability status of every argument.
type Report struct {
	Case        string    `json:"case"`             // Case title
	Source      string    `json:"source,omitempty"` // Case file path
	EvaluatedAt time.Time `json:"evaluated_at"`     // When evaluation ran

	Targets   []TargetVerdict  `json:"targets"`
	Arguments []ArgumentStatus `json:"arguments,omitempty"`

	Standards StandardsConfig `json:"standards"` // Default standard and thresholds in force

	LLM *Explanation `json:"llm,omitempty"` // Optional LLM explanation (never affects verdicts)
}

// TargetVerdict records the outcome for one evaluated statement.
type TargetVerdict struct {
	Statement string  `json:"statement"`       // String form, "-" prefix for negation
	Standard  string  `json:"standard"`        // Proof standard applied
	Verdict   Verdict `json:"verdict"`
	Error     string  `json:"error,omitempty"` // Set when this target's standard was unknown
}

// ArgumentStatus records whether an argument was applicable under the
// audience, and the weight the audience assigned it.
type ArgumentStatus struct {
	ID         string  `json:"id"`
	Conclusion string  `json:"conclusion"`
	Applicable bool    `json:"applicable"`
	Weight     float64 `json:"weight"`
}

// Explanation contains an optional LLM-generated prose explanation.
// CRITICAL: this never affects verdicts and is clearly separated.
type Explanation struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
