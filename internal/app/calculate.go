package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/exactsum/internal/accumulate"
	"github.com/agbru/exactsum/internal/cli"
	"github.com/agbru/exactsum/internal/dataset"
	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/metrics"
	"github.com/agbru/exactsum/internal/natural"
	"github.com/agbru/exactsum/internal/orchestration"
	"github.com/agbru/exactsum/internal/sysmon"
)

// runCalculate loads the input and dispatches to partial or comparison
// mode.
func (a *Application) runCalculate(ctx context.Context, th natural.Thresholds, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	errOut := a.ErrWriter

	start := time.Now()
	data, err := a.loadDataset()
	if err != nil {
		return presenter.HandleError(err, time.Since(start), errOut)
	}
	a.recorder.ObserveInput(data.Len())

	names := a.Config.Accumulators(a.Registry.List())
	accs := make([]accumulate.Accumulator, 0, len(names))
	for _, name := range names {
		acc, err := a.Registry.New(name)
		if err != nil {
			return presenter.HandleError(err, 0, errOut)
		}
		accs = append(accs, acc)
	}
	op := accumulate.Op(a.Config.Op)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, data.Len(), th, out)
		cli.PrintExecutionMode(names, out)
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()

	var code int
	if a.Config.Partial {
		code = a.runPartials(ctx, accs[0], data, op, out)
	} else {
		code = a.runComparison(ctx, accs, data, op, out)
	}

	if a.Config.Verbose {
		cli.DisplayMemoryStats(mem.Since(before), out)
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}
	return code
}

// loadDataset reads the configured input file, stdin, or generates values.
func (a *Application) loadDataset() (dataset.Dataset, error) {
	columns := a.Config.Columns()
	if a.Config.Generate != "" {
		dist := dataset.Distribution(a.Config.Generate)
		x, err := dataset.Generate(dist, a.Config.Count, a.Config.Seed)
		if err != nil {
			return dataset.Dataset{}, err
		}
		d := dataset.Dataset{X: x}
		if columns == 2 {
			if d.Y, err = dataset.Generate(dist, a.Config.Count, a.Config.Seed+1); err != nil {
				return dataset.Dataset{}, err
			}
		}
		return d, nil
	}

	in := a.Input
	if a.Config.Input != "" && a.Config.Input != "-" {
		f, err := os.Open(a.Config.Input)
		if err != nil {
			return dataset.Dataset{}, apperrors.InputError{Text: a.Config.Input, Cause: err}
		}
		defer f.Close()
		in = f
	}
	return dataset.Load(in, columns)
}

// runPartials prints the running values of the first selected
// accumulator.
func (a *Application) runPartials(ctx context.Context, acc accumulate.Accumulator, data dataset.Dataset, op accumulate.Op, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	start := time.Now()
	values, err := orchestration.RunPartials(ctx, acc, data, op)
	elapsed := time.Since(start)
	a.recorder.ObserveRun(acc.Name(), string(op), elapsed, err)
	if err != nil {
		return presenter.HandleError(err, elapsed, a.ErrWriter)
	}

	if a.Config.Quiet {
		for _, v := range values {
			cli.DisplayQuietResult(out, orchestration.ComparisonResult{Value: v})
		}
	} else {
		presenter.PresentPartials(acc.Name(), values, out)
	}

	if a.Config.OutputFile != "" {
		if err := cli.WritePartialsToFile(a.Config.OutputFile, acc.Name(), values); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving partial values: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplaySaved(out, a.Config.OutputFile)
		}
	}
	return apperrors.ExitSuccess
}

// runComparison runs every selected accumulator and reports agreement
// with the exact reference.
func (a *Application) runComparison(ctx context.Context, accs []accumulate.Accumulator, data dataset.Dataset, op accumulate.Op, out io.Writer) int {
	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := a.ErrWriter
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	opts := orchestration.Options{Op: op, Workers: a.Config.Workers, Logger: a.Logger}
	results := orchestration.ExecuteComparisons(ctx, accs, data, opts, reporter, progressOut)

	presOpts := orchestration.PresentationOptions{Op: string(op), Rows: data.Len(), Verbose: a.Config.Verbose}
	presenter := cli.CLIResultPresenter{}

	analysisOut := out
	if a.Config.Quiet {
		analysisOut = io.Discard
	}
	code := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, analysisOut)
	if a.Config.Quiet && len(results) > 0 {
		// Results are sorted with the fastest exact success first.
		if results[0].Err == nil {
			cli.DisplayQuietResult(out, results[0])
		} else {
			presenter.HandleError(results[0].Err, 0, a.ErrWriter)
		}
	}

	for _, res := range results {
		a.recorder.ObserveRun(res.Name, string(op), res.Duration, res.Err)
		if res.Err == nil && !res.Exact {
			a.recorder.ObserveError(res.Name, res.ULPs)
		}
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteReportToFile(a.Config.OutputFile, results, presOpts); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplaySaved(out, a.Config.OutputFile)
		}
	}
	return code
}
