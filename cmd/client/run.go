package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-calculator/internal/adapter"
	"github.com/MKhiriev/go-calculator/internal/workers"
	"github.com/MKhiriev/go-calculator/models"
)

// batchConcurrency caps the requests a batch keeps in flight.
const batchConcurrency = 4

var (
	errUsage       = errors.New("usage: calc-client [flags] <operation> <operands...> | batch | greet | version | build-info")
	errBatchFailed = errors.New("batch finished with failed lines")
)

// run executes one client command. Results go to out; batch reads its
// operations from in.
func run(ctx context.Context, calculator adapter.CalculatorAdapter, buildInfo models.AppBuildInfo, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "greet":
		greeting, err := calculator.Greeting(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, greeting)
		return err
	case "version":
		version, err := calculator.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err
	case "build-info":
		_, err := fmt.Fprintf(out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit())
		return err
	case "batch":
		return runBatch(ctx, calculator, in, out)
	}

	op, err := parseOperation(args[0])
	if err != nil {
		return err
	}

	result, err := calculator.Calculate(ctx, op, args[1:]...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, formatResult(result))
	return err
}

// runBatch evaluates one "<operation> <operands...>" per input line, skipping
// blank lines and lines starting with '#'. Lines are sent concurrently and
// reported in input order; a failed line is reported as "error: ..." and does
// not stop the others.
func runBatch(ctx context.Context, calculator adapter.CalculatorAdapter, in io.Reader, out io.Writer) error {
	var lines [][]string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading batch input: %w", err)
	}

	results := make([]string, len(lines))
	failed := make([]bool, len(lines))
	jobs := make([]workers.Worker, len(lines))
	for i, fields := range lines {
		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			op, err := parseOperation(fields[0])
			if err == nil {
				var result float64
				if result, err = calculator.Calculate(ctx, op, fields[1:]...); err == nil {
					results[i] = formatResult(result)
					return nil
				}
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			results[i], failed[i] = "error: "+err.Error(), true
			return nil
		})
	}

	if err := workers.New(batchConcurrency, jobs...).Run(ctx); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	var failures int
	for i, fields := range lines {
		if failed[i] {
			failures++
		}
		if _, err := fmt.Fprintf(out, "%s = %s\n", strings.Join(fields, " "), results[i]); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, failures, len(lines))
	}
	return nil
}

func parseOperation(name string) (models.Operation, error) {
	op := models.Operation(strings.ToLower(name))
	if _, ok := op.OperandNames(); !ok {
		return "", fmt.Errorf("%w (unknown operation %q)", errUsage, name)
	}
	return op, nil
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
