// internal/summaryapp/app.go
package summaryapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mafcohort-core/clinical"
	"mafcohort-core/maf"
	"mafcohort-core/summary"
	"mafcohort/internal/clibase"
	"mafcohort/internal/config"
	"mafcohort/internal/logging"
	"mafcohort/internal/output"
	"mafcohort/internal/render"
	"mafcohort/internal/summarycli"
	"mafcohort/internal/version"
)

// RunContext is the mafsummary tool: adapt the clinical table to the
// summarizer's expected column name, build the cohort summary, emit the
// gene table and optionally the six-panel figure. Exit codes match
// mafcohort: 0 ok, 2 usage, 3 runtime failure, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := summarycli.NewFlagSet("mafsummary")

	if len(argv) == 0 {
		_, _ = summarycli.ParseArgs(fs, nil)
		summarycli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 0)
	}

	opts, err := summarycli.ParseArgs(fs, argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		summarycli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 2)
	}
	if opts.Help {
		summarycli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 0)
	}
	if opts.Version {
		fmt.Fprintf(outw, "mafsummary version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg.Merge(&opts.Common, fs.Changed)
		if cfg.Plot != "" && !fs.Changed("plot") {
			opts.PlotFile = cfg.Plot
		}
	}
	if err := clibase.Validate(&opts.Common); err != nil {
		fmt.Fprintln(stderr, err)
		summarycli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 2)
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	var (
		muts *maf.Table
		clin *clinical.Table
	)
	g, _ := errgroup.WithContext(parent)
	g.Go(func() error {
		var err error
		muts, err = maf.Load(opts.MAFFile)
		return err
	})
	g.Go(func() error {
		var err error
		clin, err = clinical.Load(opts.ClinicalFile, opts.ClinicalKey)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	adapted, err := summary.AdaptClinical(clin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if adapted != clin {
		log.Info("clinical key column renamed",
			zap.String("from", clin.KeyColumn), zap.String("to", adapted.KeyColumn))
	}

	cohortSummary, err := summary.Build(muts, adapted)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("summary built",
		zap.Int("samples", cohortSummary.TotalSamples),
		zap.Int("non_silent_variants", cohortSummary.TotalVariants),
		zap.Int("annotated_samples", cohortSummary.AnnotatedSamples),
		zap.Float64("median_per_sample", cohortSummary.MedianPerSample))

	if err := output.WriteSummary(opts.Output, outw, output.ToSummary(cohortSummary), opts.Header); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.PlotFile != "" {
		if err := render.SummaryFigure(cohortSummary, opts.PlotFile); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		log.Info("figure written", zap.String("path", opts.PlotFile))
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
