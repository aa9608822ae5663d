// Package report renders evaluation reports as JSON, Markdown, and a
// terminal summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ewan-klein/carneades/internal/model"
)

// Renderer writes reports in the supported output formats.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. The footer credits the tool and can be
// disabled.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	if err := os.WriteFile(path, []byte(r.Markdown(report)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Markdown builds the Markdown form of a report.
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	title := report.Case
	if title == "" {
		title = "Argument Evaluation"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if report.Source != "" {
		fmt.Fprintf(&b, "Case file: `%s`\n", report.Source)
	}
	fmt.Fprintf(&b, "Evaluated: %s\n\n", report.EvaluatedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Verdicts\n\n")
	b.WriteString("| Statement | Standard | Verdict |\n")
	b.WriteString("|---|---|---|\n")
	for _, t := range report.Targets {
		verdict := string(t.Verdict)
		if t.Error != "" {
			verdict = "error: " + t.Error
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Statement, t.Standard, verdict)
	}
	b.WriteString("\n")

	if len(report.Arguments) > 0 {
		b.WriteString("## Arguments\n\n")
		b.WriteString("| ID | Conclusion | Weight | Applicable |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, a := range report.Arguments {
			fmt.Fprintf(&b, "| %s | %s | %.2f | %v |\n", a.ID, a.Conclusion, a.Weight, a.Applicable)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Standards\n\nDefault: `%s` — alpha %.2f, beta %.2f, gamma %.2f\n\n",
		report.Standards.Default, report.Standards.Alpha, report.Standards.Beta, report.Standards.Gamma)

	if report.LLM != nil && report.LLM.Enabled && report.LLM.SummaryMD != "" {
		b.WriteString("## Explanation (LLM-generated, does not affect verdicts)\n\n")
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
		for _, w := range report.LLM.Warnings {
			fmt.Fprintf(&b, "> Warning: %s\n", w)
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by carneades — Carneades Argument Evaluation Structure.\n")
	}
	return b.String()
}

// RenderSummary prints a short verdict summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	if report.Case != "" {
		fmt.Printf("\n%s\n", report.Case)
	}
	for _, t := range report.Targets {
		if t.Error != "" {
			fmt.Printf("  %-30s %-25s error: %s\n", t.Statement, "("+t.Standard+")", t.Error)
			continue
		}
		fmt.Printf("  %-30s %-25s %s\n", t.Statement, "("+t.Standard+")", t.Verdict)
	}
	fmt.Println()
}
