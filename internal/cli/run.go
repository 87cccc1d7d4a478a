// Package cli — run.go implements the "gopatterns run" command.
//
// The run command executes one or more pattern demonstrations and prints
// their transcripts. Patterns are named positionally; --all runs the whole
// catalog and --category runs one group. With --json, transcripts are
// wrapped in a structured result; with --verbose, each demo's start and
// duration is logged on stderr through zap.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mmr-tortoise/gopatterns/internal/catalog"
	"github.com/mmr-tortoise/gopatterns/internal/model"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// all selects every pattern in the catalog.
	all bool

	// category selects every pattern of one group. Empty means no filter.
	category string
}

// NewRunCommand creates the "run" cobra command over the given catalog.
func NewRunCommand(patterns *catalog.Catalog) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [pattern]...",
		Short: "Run pattern demonstrations",
		Long: `Run one or more pattern demonstrations and print their transcripts.

Examples:
  gopatterns run decorator
  gopatterns run memento observer
  gopatterns run --category creational
  gopatterns run --all --json`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, patterns, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "Run every pattern in the catalog")
	cmd.Flags().StringVar(&flags.category, "category", "",
		"Run every pattern in a category: creational, structural, behavioral")

	return cmd
}

// runRun resolves the selection, executes each demo, and renders the
// results. The first failing demo aborts the run with ExitDemoFailed.
func runRun(cmd *cobra.Command, patterns *catalog.Catalog, flags *runFlags, args []string) error {
	entries, err := resolveSelection(patterns, flags, args)
	if err != nil {
		return err
	}

	logger := newRunLogger()
	defer func() { _ = logger.Sync() }()

	type demoResult struct {
		Name       string `json:"name"`
		Category   string `json:"category"`
		Transcript string `json:"transcript"`
		DurationMS int64  `json:"durationMs"`
	}
	results := make([]demoResult, 0, len(entries))

	for _, e := range entries {
		logger.Debug("running demo", zap.String("pattern", e.Name))
		start := time.Now()

		// Each demo writes into its own buffer so a failing demo does not
		// leave a half-printed transcript on stdout.
		var buf bytes.Buffer
		if err := e.Run(&buf); err != nil {
			return model.WrapCLIError(model.ExitDemoFailed,
				fmt.Sprintf("demo %q failed", e.Name), err)
		}

		elapsed := time.Since(start)
		logger.Debug("demo finished",
			zap.String("pattern", e.Name),
			zap.Duration("elapsed", elapsed),
		)

		results = append(results, demoResult{
			Name:       e.Name,
			Category:   e.Category.String(),
			Transcript: buf.String(),
			DurationMS: elapsed.Milliseconds(),
		})
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{"results": results}, "", "  ")
		cmd.Println(string(data))
		return nil
	}

	for _, r := range results {
		cmd.Printf("=== %s (%s) ===\n", r.Name, r.Category)
		cmd.Print(r.Transcript)
		cmd.Println()
	}
	return nil
}

// resolveSelection turns flags and positional arguments into catalog
// entries. Exactly one selection mechanism must be used.
func resolveSelection(patterns *catalog.Catalog, flags *runFlags, args []string) ([]catalog.Entry, error) {
	switch {
	case flags.all:
		if len(args) > 0 || flags.category != "" {
			return nil, model.NewCLIError(model.ExitGeneralError,
				"--all cannot be combined with pattern names or --category")
		}
		return patterns.All(), nil

	case flags.category != "":
		if len(args) > 0 {
			return nil, model.NewCLIError(model.ExitGeneralError,
				"--category cannot be combined with pattern names")
		}
		cat, err := model.ParseCategory(flags.category)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid category %q", flags.category), err)
		}
		return patterns.ByCategory(cat), nil

	case len(args) > 0:
		entries := make([]catalog.Entry, 0, len(args))
		for _, name := range args {
			e, ok := patterns.Get(name)
			if !ok {
				return nil, model.NewCLIError(model.ExitPatternNotFound,
					fmt.Sprintf("unknown pattern %q (see: gopatterns list)", name))
			}
			entries = append(entries, e)
		}
		return entries, nil

	default:
		return nil, model.NewCLIError(model.ExitGeneralError,
			"nothing to run: name a pattern, or use --all or --category")
	}
}

// newRunLogger builds the stderr logger for demo tracing. Without --verbose
// it stays at info level, so the debug trace lines are suppressed.
func newRunLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core)
}
