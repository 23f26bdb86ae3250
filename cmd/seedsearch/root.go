package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedsearch/internal/config"
	"github.com/katalvlaran/seedsearch/internal/logging"
	"github.com/katalvlaran/seedsearch/wondercard"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the settings shared by every subcommand.
type app struct {
	env          config.Env
	criteriaPath string
	log          *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seedsearch",
		Short:         "Brute-force search of Gen 5 WonderCard seeds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.criteriaPath, "criteria", "c", "", "criteria file (YAML)")
	flags.IntVarP(&a.env.Workers, "workers", "w", 0, "search goroutines, 0 for GOMAXPROCS")
	flags.IntVar(&a.env.ProgressInterval, "progress-interval", 0, "seeds between progress reports")
	flags.StringVar(&a.env.LogLevel, "log-level", "", "debug, info, warn or error")
	flags.BoolVar(&a.env.LogJSON, "log-json", false, "log JSON instead of text")
	flags.StringVar(&a.env.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(newSearchCmd(a), newEstimateCmd(a), newVersionCmd())
	return root
}

// setup merges environment settings under explicitly set flags and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("workers") {
		a.env.Workers = env.Workers
	}
	if !flags.Changed("progress-interval") {
		a.env.ProgressInterval = env.ProgressInterval
	}
	if !flags.Changed("log-level") {
		a.env.LogLevel = env.LogLevel
	}
	if !flags.Changed("log-json") {
		a.env.LogJSON = env.LogJSON
	}
	if !flags.Changed("metrics-addr") {
		a.env.MetricsAddr = env.MetricsAddr
	}

	level, err := logging.ParseLevel(a.env.LogLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(logging.Config{
		Level:   level,
		JSON:    a.env.LogJSON,
		Service: "seedsearch",
		Output:  cmd.ErrOrStderr(),
	})
	return nil
}

func (a *app) loadCriteria() (wondercard.Criteria, error) {
	if a.criteriaPath == "" {
		return wondercard.Criteria{}, fmt.Errorf("no criteria file, use --criteria")
	}
	f, err := config.Load(a.criteriaPath)
	if err != nil {
		return wondercard.Criteria{}, err
	}
	return f.Criteria()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seedsearch", version)
		},
	}
}
