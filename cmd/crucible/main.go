// Command crucible loads a digit cost grid and prints the cheapest crossing
// under the two standard run bounds: part 1 uses runs of 1..3 cells,
// part 2 runs of 4..10 cells.
//
// Usage:
//
//	crucible [-input FILE] [-part 0|1|2] [-stepwise] [-v] [-log-format text|json]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runsearch"
)

var log = logrus.New()

// part is one (minRun, maxRun) query against the loaded grid.
type part struct {
	n              int
	minRun, maxRun int
}

var parts = []part{
	{n: 1, minRun: 1, maxRun: 3},
	{n: 2, minRun: 4, maxRun: 10},
}

type config struct {
	input     string
	part      int
	stepwise  bool
	verbose   bool
	logFormat string
}

var errUsage = errors.New("crucible: invalid arguments")

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("crucible", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", "input", "path of the cost grid")
	fs.IntVar(&cfg.part, "part", 0, "part to solve: 1, 2, or 0 for both")
	fs.BoolVar(&cfg.stepwise, "stepwise", false, "use the single-cell step graph solver")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}

	if cfg.part < 0 || cfg.part > len(parts) {
		return cfg, fmt.Errorf("%w: -part %d", errUsage, cfg.part)
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return cfg, fmt.Errorf("%w: -log-format %q", errUsage, cfg.logFormat)
	}

	return cfg, nil
}

func configureLogger(cfg config, out io.Writer) {
	log.SetOutput(out)
	if cfg.logFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// solve runs every selected part concurrently; results are indexed like parts.
// Unselected parts are left at -1.
func solve(g *costgrid.Grid, cfg config) ([]int64, error) {
	results := make([]int64, len(parts))
	var eg errgroup.Group
	for i, p := range parts {
		results[i] = -1
		if cfg.part != 0 && cfg.part != p.n {
			continue
		}
		eg.Go(func() error {
			start := time.Now()
			var (
				dist int64
				err  error
				st   runsearch.Stats
			)
			if cfg.stepwise {
				dist, err = runsearch.MinCostStepwise(g, p.minRun, p.maxRun)
			} else {
				dist, err = runsearch.MinCost(g, p.minRun, p.maxRun, runsearch.WithStats(&st))
			}
			if err != nil {
				return fmt.Errorf("part %d: %w", p.n, err)
			}
			log.WithFields(logrus.Fields{
				"part":    p.n,
				"minRun":  p.minRun,
				"maxRun":  p.maxRun,
				"pushed":  st.Pushed,
				"settled": st.Settled,
				"stale":   st.Stale,
				"elapsed": time.Since(start),
			}).Debug("search finished")
			results[i] = dist
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	configureLogger(cfg, stderr)

	g, err := costgrid.Load(cfg.input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":  cfg.input,
		"width":  g.Width(),
		"height": g.Height(),
	}).Debug("grid loaded")

	results, err := solve(g, cfg)
	if err != nil {
		return err
	}
	for i, p := range parts {
		if results[i] < 0 {
			continue
		}
		fmt.Fprintf(stdout, "Solution for part %d: %d\n", p.n, results[i])
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.WithError(err).Error("crucible failed")
		os.Exit(1)
	}
}
