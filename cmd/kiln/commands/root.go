// Package commands implements the CLI commands for the kiln build driver.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/driver"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app       *app.App
	rootCmd   *cobra.Command
	telemetry ports.Telemetry
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "A cross-toolchain C/C++ build driver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "kiln.yaml", "Path to the build plan")
	rootCmd.PersistentFlags().Bool("force", false, "Execute steps even when outputs are up to date")
	rootCmd.PersistentFlags().String("output-root", "", "Directory relative outputs are placed under")
	rootCmd.PersistentFlags().String("stale", "mtime", "Staleness mode: mtime or hash")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Compile fan-out parallelism (0 = number of CPUs)")
	rootCmd.PersistentFlags().Bool("trace", false, "Record per-invocation progress vertices")
	rootCmd.PersistentFlags().StringSlice("search-dir", nil, "Extra directories probed for compilers before PATH")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newToolchainCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure applies the persistent flags to the app before any command
// runs.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	planPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	c.app.SetPlanPath(planPath)

	force, err := flags.GetBool("force")
	if err != nil {
		return err
	}
	c.app.SetForce(force)

	outputRoot, err := flags.GetString("output-root")
	if err != nil {
		return err
	}
	c.app.SetOutputRoot(outputRoot)

	stale, err := flags.GetString("stale")
	if err != nil {
		return err
	}
	mode, ok := driver.ParseStaleness(stale)
	if !ok {
		return zerr.With(zerr.New("invalid staleness mode"), "stale", stale)
	}
	c.app.SetStaleness(mode)

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	c.app.SetJobs(jobs)

	dirs, err := flags.GetStringSlice("search-dir")
	if err != nil {
		return err
	}
	c.app.SetExtraDirs(dirs)

	trace, err := flags.GetBool("trace")
	if err != nil {
		return err
	}
	if trace {
		c.telemetry = progrock.New()
		c.app.SetTelemetry(c.telemetry)
	}

	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.telemetry != nil {
		_ = c.telemetry.Close()
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
