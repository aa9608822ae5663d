// Package explain generates optional prose explanations of evaluation
// reports via an LLM provider. Explanations never affect verdicts; they are
// produced after evaluation and clearly separated in the report.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ewan-klein/carneades/internal/model"
)

// Provider is an LLM backend able to explain a report.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Explain generates a prose explanation of the report.
	Explain(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks that the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Request carries the report to explain plus the vocabulary the LLM is
// allowed to use: only statements and argument IDs that actually occur in
// the case may be referenced.
type Request struct {
	Report model.Report

	// Known lists every statement and argument identifier in the case.
	// References outside this list are flagged as warnings.
	Known []string

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model is the provider-specific model name.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// Response is the provider's explanation output.
type Response struct {
	Explanation string
	Model       string
	TokensUsed  int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled). An OpenAI-compatible
	// BaseURL covers local endpoints such as Ollama.
	Provider string

	Model   string
	APIKey  string
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	MaxTokens int

	// RequestsPerMinute throttles API calls.
	RequestsPerMinute float64
}

// ConfigFromModel converts model.LLMConfig to explain.Config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		Timeout:           c.TimeoutSeconds,
		MaxTokens:         c.MaxTokens,
		RequestsPerMinute: c.RequestsPerMinute,
	}
}

// BuildPrompt constructs the default explanation prompt. The rules pin the
// LLM to the computed verdicts: it restates why each verdict holds in terms
// of the case's own statements and arguments, and never second-guesses the
// evaluation.
func BuildPrompt(report model.Report, known []string) string {
	var b strings.Builder
	b.WriteString(`You are explaining the result of a Carneades argument evaluation. The verdicts below were computed by the evaluation algorithm and are final.

CRITICAL RULES:
1. Only reference statements and argument IDs from this list:
`)
	if len(known) == 0 {
		b.WriteString("(none)\n")
	}
	for _, name := range known {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	b.WriteString(`
2. Never dispute or re-derive a verdict; explain it in terms of applicable arguments, assumptions, and the proof standard.
3. "accepted" means the statement met its proof standard; "rejected" means its negation did; "undecided" means neither side did.
4. Do not speculate about facts outside the case.

Verdicts:
`)
	for _, t := range report.Targets {
		if t.Error != "" {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", t.Statement, t.Standard, t.Verdict)
	}
	b.WriteString("\nArguments:\n")
	for _, a := range report.Arguments {
		fmt.Fprintf(&b, "- %s => %s (weight %.2f, applicable: %v)\n", a.ID, a.Conclusion, a.Weight, a.Applicable)
	}
	b.WriteString("\nWrite a short prose explanation (4-6 sentences) of why each target got its verdict.")
	return b.String()
}
