// Command evacplan plans and checks grid evacuations: run "plan" against a
// map/scenario pair to produce a solution file, or "check" a solution
// against the same inputs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/evacplan/flowplan"
	"github.com/katalvlaran/evacplan/grid"
	"github.com/katalvlaran/evacplan/lcmae"
	"github.com/katalvlaran/evacplan/pathfind"
	"github.com/katalvlaran/evacplan/scenario"
)

// Exit codes: 0 success, 2 no passage to safety, 1 any other internal error.
const (
	exitOK          = 0
	exitInternal    = 1
	exitNoFrontier  = 2
	exitCheckFailed = 1
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Name:  "evacplan",
		Usage: "plan and check grid evacuations",
		Commands: []*cli.Command{
			planCommand(logger),
			checkCommand(logger),
			benchmarkCommand(),
		},
	}

	if err := app.Run(args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			return exitErr.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return exitInternal
	}

	return exitOK
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return l.Sugar()
}

func planCommand(logger *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "compute an evacuation plan for a map and scenario",
		ArgsUsage: "<map> <scenario>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algorithm", Value: "lcmae", Usage: "lcmae|flow"},
			&cli.BoolFlag{Name: "debug"},
			&cli.StringFlag{Name: "out", Usage: "output file (default stdout)"},
			&cli.BoolFlag{Name: "postprocess", Usage: "flow only: break remaining deadlocks"},
			&cli.Int64Flag{Name: "seed", Value: lcmae.DefaultSeed, Usage: "lcmae only: PRNG seed"},
		},
		Action: func(c *cli.Context) error {
			return runPlan(c, logger)
		},
	}
}

func runPlan(c *cli.Context, logger *zap.SugaredLogger) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: evacplan plan <map> <scenario>", exitInternal)
	}

	g, specs, err := loadInputs(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	paths, err := solve(c, logger, g, specs)
	if err != nil {
		return err
	}

	if out := c.String("out"); out != "" {
		f, createErr := os.Create(out)
		if createErr != nil {
			return cli.Exit(fmt.Sprintf("creating output file: %v", createErr), exitInternal)
		}
		defer f.Close()

		return writeSolution(f, paths)
	}

	return writeSolution(os.Stdout, paths)
}

func solve(c *cli.Context, logger *zap.SugaredLogger, g *grid.Grid, specs []lcmae.AgentSpec) ([][]grid.Cell, error) {
	switch c.String("algorithm") {
	case "lcmae":
		opts := []lcmae.Option{lcmae.WithSeed(c.Int64("seed"))}
		if c.Bool("debug") {
			opts = append(opts, lcmae.WithLogger(logger))
		}
		paths, err := lcmae.Plan(g, specs, opts...)
		if err != nil {
			return nil, planError(err)
		}

		return paths, nil
	case "flow":
		origins := make([]grid.Cell, len(specs))
		for i, s := range specs {
			origins[i] = s.Origin
		}
		var flowOpts []flowplan.Option
		if c.Bool("postprocess") {
			flowOpts = append(flowOpts, flowplan.WithPostprocess())
		}
		paths, err := flowplan.Plan(g, origins, flowOpts...)
		if err != nil {
			return nil, planError(err)
		}

		return paths, nil
	default:
		return nil, cli.Exit(fmt.Sprintf("unknown algorithm %q", c.String("algorithm")), exitInternal)
	}
}

func planError(err error) error {
	if errors.Is(err, pathfind.ErrNoFrontier) {
		return cli.Exit(fmt.Sprintf("plan: %v", err), exitNoFrontier)
	}

	return cli.Exit(fmt.Sprintf("plan: %v", err), exitInternal)
}

func writeSolution(w *os.File, paths [][]grid.Cell) error {
	if err := scenario.WriteSolution(w, paths); err != nil {
		return cli.Exit(fmt.Sprintf("writing solution: %v", err), exitInternal)
	}

	return nil
}

func loadInputs(mapPath, scenarioPath string) (*grid.Grid, []lcmae.AgentSpec, error) {
	mapFile, err := os.Open(mapPath)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("opening map: %v", err), exitInternal)
	}
	defer mapFile.Close()

	scenarioFile, err := os.Open(scenarioPath)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("opening scenario: %v", err), exitInternal)
	}
	defer scenarioFile.Close()

	g, specs, err := scenario.Load(mapFile, scenarioFile)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("parsing inputs: %v", err), exitInternal)
	}

	return g, specs, nil
}

func checkCommand(logger *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a solution against its map and scenario",
		ArgsUsage: "<map> <scenario> <solution>",
		Action: func(c *cli.Context) error {
			return runCheck(c, logger)
		},
	}
}

func runCheck(c *cli.Context, logger *zap.SugaredLogger) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: evacplan check <map> <scenario> <solution>", exitInternal)
	}

	g, specs, err := loadInputs(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	solutionFile, err := os.Open(c.Args().Get(2))
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening solution: %v", err), exitInternal)
	}
	defer solutionFile.Close()

	paths, err := scenario.ReadSolution(solutionFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("parsing solution: %v", err), exitInternal)
	}

	violations := scenario.Check(g, specs, paths)
	for _, v := range violations {
		logger.Warnf("%s", v)
		fmt.Fprintln(os.Stdout, v.String())
	}
	if len(violations) > 0 {
		return cli.Exit(fmt.Sprintf("%d violation(s)", len(violations)), exitCheckFailed)
	}

	return nil
}

func benchmarkCommand() *cli.Command {
	return &cli.Command{
		Name:      "benchmark",
		Usage:     "not implemented: parallel benchmarking harness",
		ArgsUsage: "<benchfile>",
		Action: func(c *cli.Context) error {
			return cli.Exit("benchmark: not implemented", exitInternal)
		},
	}
}
