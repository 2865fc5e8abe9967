package cmd

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"legendary/internal/config"
	"legendary/internal/dispatch"
	"legendary/internal/logger"
	"legendary/internal/runner"
)

// app carries the global flags and the dispatcher built from them.
// The dispatcher exists only after PersistentPreRunE has loaded the config.
type app struct {
	runner runner.Runner
	stdout io.Writer
	stderr io.Writer

	debug      bool
	noColor    bool
	configPath string

	dispatcher *dispatch.Dispatcher
}

// newRootCmd builds the `legendary` command tree. Spawned programs go through r;
// the dispatcher's own output goes to stdout and stderr.
func newRootCmd(r runner.Runner, stdout, stderr io.Writer) *cobra.Command {
	a := &app{runner: r, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:     "legendary",
		Short:   "A vibrant CLI tool for managing LegendaryOS with style",
		Version: dispatch.Version,
		Args:    cobra.NoArgs,

		// Failures are already reported by the dispatcher; Execute prints the rest.
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: a.setup,
		// Without a subcommand the root behaves like help.
		RunE: a.run(""),
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default "+config.DefaultConfigFile+")")

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	for _, sub := range newCommands(a) {
		if sub.Name() == "help" {
			rootCmd.SetHelpCommand(sub)
			continue
		}
		rootCmd.AddCommand(sub)
	}

	return rootCmd
}

// setup initializes logging and loads the config before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger.Init(a.debug, a.noColor)

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.dispatcher = dispatch.New(cfg, a.runner, a.stdout, a.stderr, logger.ColorEnabled(a.noColor))
	return nil
}

// run returns a RunE that dispatches name. A failed action becomes an
// ExitError so the process exit code reflects it.
func (a *app) run(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ok, err := a.dispatcher.Dispatch(name, args)
		if err != nil {
			return err
		}
		if !ok {
			return &ExitError{Code: 1}
		}
		return nil
	}
}

// Execute runs the CLI against the real process environment and returns the
// exit code for main. Ctrl-C is left to the running child; legendary itself
// stays alive to report how the child ended.
func Execute() int {
	stop := runner.CatchInterrupts()
	defer stop()

	rootCmd := newRootCmd(runner.Exec{}, color.Output, color.Error)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		logger.Error("Error: %v\n", err)
		return 1
	}
	return 0
}
