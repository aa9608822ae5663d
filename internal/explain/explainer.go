package explain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/time/rate"

	"github.com/ewan-klein/carneades/internal/model"
)

// Explainer orchestrates explanation generation: provider selection, rate
// limiting, and post-hoc vocabulary checking.
type Explainer struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewExplainer creates an explainer from configuration. An empty provider
// name yields a disabled explainer, not an error.
func NewExplainer(config Config) (*Explainer, error) {
	provider, err := newProvider(config)
	if err != nil {
		return nil, err
	}

	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}
	return &Explainer{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rpm/60.0), 1),
		config:   config,
	}, nil
}

func newProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured.
func (e *Explainer) IsEnabled() bool {
	return e.provider != nil
}

// ProviderName returns the configured provider's name, or "".
func (e *Explainer) ProviderName() string {
	if e.provider == nil {
		return ""
	}
	return e.provider.Name()
}

// Generate produces an Explanation for the report, or nil when disabled.
// Identifier references outside the case vocabulary are reported as
// warnings, never silently passed through.
func (e *Explainer) Generate(ctx context.Context, report model.Report) (*model.Explanation, error) {
	if e.provider == nil {
		return nil, nil
	}
	if !e.provider.IsAvailable(ctx) {
		return nil, fmt.Errorf("LLM provider %s is not available", e.provider.Name())
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	known := knownIdentifiers(report)
	resp, err := e.provider.Explain(ctx, Request{
		Report:    report,
		Known:     known,
		Model:     e.config.Model,
		MaxTokens: e.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.Explanation{
		Enabled:   true,
		Provider:  e.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Explanation,
		Warnings:  vocabularyWarnings(resp.Explanation, known),
	}, nil
}

// knownIdentifiers collects the case vocabulary: target statements,
// argument IDs, and argument conclusions.
func knownIdentifiers(report model.Report) []string {
	seen := make(map[string]struct{})
	var known []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		known = append(known, name)
	}
	for _, t := range report.Targets {
		add(t.Statement)
		add(strings.TrimPrefix(t.Statement, "-"))
	}
	for _, a := range report.Arguments {
		add(a.ID)
		add(a.Conclusion)
		add(strings.TrimPrefix(a.Conclusion, "-"))
	}
	return known
}

var backtickRef = regexp.MustCompile("`([^`]+)`")

// vocabularyWarnings flags backticked identifiers in the explanation that
// do not belong to the case.
func vocabularyWarnings(text string, known []string) []string {
	allowed := make(map[string]struct{}, len(known))
	for _, name := range known {
		allowed[name] = struct{}{}
	}
	var warnings []string
	flagged := make(map[string]struct{})
	for _, match := range backtickRef.FindAllStringSubmatch(text, -1) {
		ref := strings.TrimSpace(match[1])
		if _, ok := allowed[ref]; ok {
			continue
		}
		if _, dup := flagged[ref]; dup {
			continue
		}
		flagged[ref] = struct{}{}
		warnings = append(warnings, fmt.Sprintf("explanation references unknown identifier %q", ref))
	}
	return warnings
}
