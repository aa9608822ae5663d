package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/report"
	"github.com/ewan-klein/carneades/internal/worker"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|case.yaml...>",
	Short: "Evaluate multiple case files in parallel",
	Long: `Batch evaluates many case files concurrently:
- Accepts case file paths, or a directory scanned for *.yaml / *.yml
- Evaluates cases in parallel with a configurable worker count
- Writes a JSON and Markdown report per case

Safe to parallelize: each case's graph and audience are immutable during
evaluation.

Example:
  carneades batch cases/
  carneades batch a.yaml b.yaml --concurrency 8 --output-dir ./reports`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./carneades-reports", "output directory for reports")
	batchCmd.Flags().StringVar(&defaultStandard, "default-standard", "", "proof standard for unassigned statements")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

// caseJob evaluates a single case file.
type caseJob struct {
	path string
	cfg  *model.Config
}

// caseResult pairs a case path with its report or failure.
type caseResult struct {
	path   string
	report *model.Report
	err    error
}

func (r *caseResult) GetError() error {
	return r.err
}

func (j *caseJob) Execute(ctx context.Context) worker.Result {
	rep, err := evaluateCase(j.cfg, j.path)
	if err != nil {
		return &caseResult{path: j.path, err: err}
	}
	return &caseResult{path: j.path, report: rep}
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := collectCasePaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no case files found")
	}

	cfg := loadConfig()
	if defaultStandard != "" {
		cfg.Standards.Default = defaultStandard
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !noFooter
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating %d cases with %d workers\n", len(paths), cfg.Concurrency.Workers)
	}

	jobs := make([]worker.Job, 0, len(paths))
	for _, path := range paths {
		jobs = append(jobs, &caseJob{path: path, cfg: cfg})
	}
	pool := worker.NewPool(cfg.Concurrency.Workers)
	pool.Start()
	results := pool.Run(jobs)

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	failures := 0
	for _, res := range results {
		cr := res.(*caseResult)
		if cr.err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", cr.path, cr.err)
			continue
		}
		base := strings.TrimSuffix(filepath.Base(cr.path), filepath.Ext(cr.path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")
		if err := renderer.RenderJSON(cr.report, jsonPath); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", cr.path, err)
			continue
		}
		if err := renderer.RenderMarkdown(cr.report, mdPath); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", cr.path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", cr.path, jsonPath)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d cases failed", failures, len(results))
	}
	return nil
}

// collectCasePaths expands directories into their YAML files.
func collectCasePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".yaml", ".yml":
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}
