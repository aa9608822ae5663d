package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewan-klein/carneades/internal/cache"
	"github.com/ewan-klein/carneades/internal/eval"
	"github.com/ewan-klein/carneades/internal/explain"
	"github.com/ewan-klein/carneades/internal/load"
	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/report"
	"github.com/ewan-klein/carneades/internal/standard"
)

var (
	outJSON         string
	outMD           string
	targets         []string
	defaultStandard string
	alpha           float64
	beta            float64
	gamma           float64
	noCache         bool
	noFooter        bool
	llmEnabled      bool
	llmProvider     string
	llmModel        string
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval <case.yaml>",
	Short: "Evaluate an argument case and report verdicts",
	Long: `Eval loads a YAML case file, builds the argument graph, and computes a
verdict (accepted, rejected, or undecided) for each target statement under
the case's audience and proof standards.

Example:
  carneades eval murder.yaml
  carneades eval murder.yaml --target murder --target intent
  carneades eval murder.yaml --default-standard preponderance --json out.json
  carneades eval murder.yaml --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	// Output flags
	evalCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	evalCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	evalCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Evaluation flags
	evalCmd.Flags().StringArrayVar(&targets, "target", nil, "statement to evaluate (repeatable; default: every atom in the case)")
	evalCmd.Flags().StringVar(&defaultStandard, "default-standard", "", "proof standard for unassigned statements")
	evalCmd.Flags().Float64Var(&alpha, "alpha", 0, "weight the strongest pro must exceed for clear_and_convincing")
	evalCmd.Flags().Float64Var(&beta, "beta", 0, "pro-minus-con margin for clear_and_convincing")
	evalCmd.Flags().Float64Var(&gamma, "gamma", 0, "max strongest-con weight for beyond_reasonable_doubt")
	evalCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache (force re-evaluation)")

	// LLM flags
	evalCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM explanation generation")
	evalCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	evalCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runEval(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg := buildEvalConfig(cmd)

	result, err := evaluateCase(cfg, path)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderSummary(result)
	return nil
}

// buildEvalConfig layers eval command flags over the loaded configuration.
func buildEvalConfig(cmd *cobra.Command) *model.Config {
	cfg := loadConfig()
	if defaultStandard != "" {
		cfg.Standards.Default = defaultStandard
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Standards.Alpha = alpha
	}
	if cmd.Flags().Changed("beta") {
		cfg.Standards.Beta = beta
	}
	if cmd.Flags().Changed("gamma") {
		cfg.Standards.Gamma = gamma
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg
}

// evaluateCase loads, evaluates, and optionally explains one case.
func evaluateCase(cfg *model.Config, path string) (*model.Report, error) {
	c, err := load.File(path, cfg.Standards.Default)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded case %q: %d arguments, %d assumed statements\n",
			c.Title, c.Graph.Len(), len(c.Audience.Assumptions()))
	}

	th := standard.Thresholds{
		Alpha: cfg.Standards.Alpha,
		Beta:  cfg.Standards.Beta,
		Gamma: cfg.Standards.Gamma,
	}

	// --target flags override the case file's own targets.
	parsed := c.Targets
	if len(targets) > 0 {
		parsed = nil
		for _, ref := range targets {
			parsed = append(parsed, model.ParseStatement(ref))
		}
	}

	evaluator := eval.New(c.Graph, c.Audience, c.Standards, th)
	if verbose {
		for s, ids := range evaluator.UnsupportedPremises() {
			fmt.Fprintf(os.Stderr, "Warning: %s is not assumed and nothing concludes it; argument(s) %s can never apply\n",
				s, strings.Join(ids, ", "))
		}
	}

	var result *model.Report
	if cfg.Cache.Enabled {
		store := cache.NewLayeredCache(cfg.Cache.TTL, cacheDir(cfg), cfg.Cache.TTL)
		result = eval.NewCached(c.Graph, c.Audience, c.Standards, th, store, cfg.Cache.TTL).Report(c.Title, path, parsed)
	} else {
		result = evaluator.Report(c.Title, path, parsed)
	}
	result.Standards = cfg.Standards

	// Generate the LLM explanation last; it never affects verdicts.
	if cfg.LLM.Provider != "" {
		explainer, err := explain.NewExplainer(explain.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if explainer.IsEnabled() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LLM.TimeoutSeconds+30)*time.Second)
			defer cancel()
			explanation, err := explainer.Generate(ctx, *result)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: LLM explanation failed: %v\n", err)
			} else {
				result.LLM = explanation
			}
		}
	}
	return result, nil
}
