// SPDX-License-Identifier: MIT

// Command framectl runs analysis jobs and timing experiments on finite frames.
//
//	framectl run    -setup job.json [-out results.txt] [-metrics job.prom] [-v]
//	framectl race   -n 64 [-seed 1] [-out outputRace.txt]
//	framectl pmorph -f 6 -g 3 [-seed 1] [-out pMorphism_backtracking_times.txt]
//
// run executes a JSON setup file and appends its report to -out. race times
// the Floyd–Warshall and repeated-squaring transitive closures on one random
// n×n matrix and fails if they disagree. pmorph times one p-morphism search
// between two random frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/framelogic/builder"
	"github.com/katalvlaran/framelogic/closure"
	"github.com/katalvlaran/framelogic/job"
	"github.com/katalvlaran/framelogic/matrix"
	"github.com/katalvlaran/framelogic/morphism"
)

const usage = `usage: framectl <command> [flags]

commands:
  run     execute a JSON setup file and append the results to a log
  race    time Floyd-Warshall against repeated squaring on a random matrix
  pmorph  time a p-morphism search between two random frames
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "run":
		err = runJob(ctx, args[1:], stdout, stderr)
	case "race":
		err = runRace(args[1:], stdout, stderr)
	case "pmorph":
		err = runPMorph(ctx, args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "framectl: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "framectl %s: %v\n", args[0], err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runJob(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	setupPath := fs.String("setup", "", "JSON setup file (required)")
	out := fs.String("out", "output.txt", "log file the report is appended to")
	metricsPath := fs.String("metrics", "", "write Prometheus metrics to this textfile")
	verbose := fs.Bool("v", false, "debug logging")
	maxFamilies := fs.Int("max-families", 0, "m-equivalence family bound per subframe (0 = default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setupPath == "" {
		fs.Usage()
		return errors.New("-setup is required")
	}

	logger := newLogger(stderr, *verbose)
	setup, err := job.ReadSetupFile(*setupPath)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	runner, err := job.NewRunner(
		job.WithLogger(logger),
		job.WithRegisterer(reg),
		job.WithLimits(job.Limits{MaxFamilies: *maxFamilies}),
	)
	if err != nil {
		return err
	}
	rep, runErr := runner.Run(ctx, setup)
	if rep != nil {
		for _, res := range rep.Results {
			fmt.Fprintln(stdout, res.Line())
		}
		if err := job.AppendLog(*out, rep); err != nil {
			return err
		}
		logger.Info("framectl: report written", slog.String("run_id", rep.RunID), slog.String("path", *out))
	}
	if *metricsPath != "" {
		if err := prometheus.WriteToTextfile(*metricsPath, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return runErr
}

func runRace(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("race", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 64, "matrix size")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	out := fs.String("out", "outputRace.txt", "log file the timings are appended to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("-n=%d: want ≥ 1", *n)
	}

	m, err := randomMatrix(*n, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	fw := m.Clone()
	start := time.Now()
	if err := matrix.FloydWarshall(fw); err != nil {
		return err
	}
	floyd := time.Since(start)

	start = time.Now()
	sq, err := matrix.TransitiveBySquaring(m)
	if err != nil {
		return err
	}
	squaring := time.Since(start)

	if !fw.Equal(sq) {
		return fmt.Errorf("n=%d seed=%d: %w", *n, *seed, closure.ErrClosureMismatch)
	}

	report := fmt.Sprintf("N = %d\n\tFloyd-Warshall Time (ns): %d\n\tTrans. Closure Time (ns): %d\n",
		*n, floyd.Nanoseconds(), squaring.Nanoseconds())
	fmt.Fprint(stdout, report)

	return appendText(*out, report)
}

func runPMorph(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pmorph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fSize := fs.Int("f", 6, "|F|")
	gSize := fs.Int("g", 3, "|G|")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	out := fs.String("out", "pMorphism_backtracking_times.txt", "log file the timings are appended to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	from, err := builder.Build(builder.RandomFrame(*fSize), builder.WithRand(rng))
	if err != nil {
		return err
	}
	onto, err := builder.Build(builder.RandomFrame(*gSize), builder.WithRand(rng))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Frame F:", from)
	fmt.Fprintln(stdout, "Frame G:", onto)

	start := time.Now()
	res, err := morphism.Find(ctx, from, onto)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	report := fmt.Sprintf("|F| = %d |G| = %d F->->G? %t\n\tTime (ns): %d\n",
		from.Size(), onto.Size(), res.Found, elapsed.Nanoseconds())
	fmt.Fprint(stdout, report)

	return appendText(*out, report)
}

func randomMatrix(n int, rng *rand.Rand) (*matrix.BoolDense, error) {
	m, err := matrix.NewBoolDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.Intn(2) == 1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func appendText(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = io.WriteString(f, text)

	return err
}
