// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mafcohort-core/clinical"
	"mafcohort-core/cohort"
	"mafcohort-core/maf"
	"mafcohort/internal/cli"
	"mafcohort/internal/clibase"
	"mafcohort/internal/config"
	"mafcohort/internal/logging"
	"mafcohort/internal/output"
	"mafcohort/internal/version"
)

// RunContext is the mafcohort pipeline: load both tables, left-join on the
// patient prefix, filter to non-silent variants, report top genes and
// prevalence. Exit codes: 0 ok, 2 usage, 3 runtime failure, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mafcohort")

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, nil) // register flags for usage output
		cli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		cli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 2)
	}
	if opts.Help {
		cli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 0)
	}
	if opts.Version {
		fmt.Fprintf(outw, "mafcohort version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg.Merge(&opts.Common, fs.Changed)
	}
	if err := clibase.Validate(&opts.Common); err != nil {
		fmt.Fprintln(stderr, err)
		cli.PrintUsage(outw, fs)
		return flushExit(outw, stderr, 2)
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	muts, clin, err := loadInputs(parent, opts.MAFFile, opts.ClinicalFile, opts.ClinicalKey)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("inputs loaded",
		zap.Int("mutation_rows", len(muts.Records)),
		zap.Int("clinical_rows", len(clin.Rows)),
		zap.String("clinical_key", clin.KeyColumn))

	joined, stats, err := cohort.LeftJoin(muts.Records, clin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if stats.DuplicateKeys > 0 {
		log.Warn("duplicate clinical patient keys, first row kept",
			zap.Int("discarded", stats.DuplicateKeys))
	}
	log.Info("joined", zap.Int("rows", stats.Left), zap.Int("matched", stats.Matched))

	totalPatients := cohort.CountPatients(joined)
	filtered := cohort.FilterNonSilent(joined)
	top := cohort.TopGenes(filtered, opts.TopN)
	prev := cohort.Prevalence(filtered, top, totalPatients)
	log.Info("aggregated",
		zap.Int("total_patients", totalPatients),
		zap.Int("non_silent_rows", len(filtered)),
		zap.Int("genes_reported", len(top)))

	report := output.ToReport(totalPatients, len(joined), len(filtered), top, prev)
	if err := output.WriteReport(opts.Output, outw, report, opts.Header); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadInputs reads the two tables concurrently; the pipeline stages
// themselves stay sequential.
func loadInputs(ctx context.Context, mafPath, clinPath, clinKey string) (*maf.Table, *clinical.Table, error) {
	var (
		muts *maf.Table
		clin *clinical.Table
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		muts, err = maf.Load(mafPath)
		return err
	})
	g.Go(func() error {
		var err error
		clin, err = clinical.Load(clinPath, clinKey)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return muts, clin, nil
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
