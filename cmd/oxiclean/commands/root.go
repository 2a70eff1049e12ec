// Package commands implements the CLI commands for oxiclean.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/app"
	"github.com/abvthecity/oxiclean/internal/build"
	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// CLI represents the command line interface for oxiclean.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Bloat(ctx context.Context, w io.Writer, flags app.CheckFlags) error
	Depth(ctx context.Context, w io.Writer, flags app.CheckFlags) error
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "oxiclean",
		Short:         "Find heavy and deep imports in JavaScript and TypeScript workspaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-format", logFormatText, "Log format: text or json")
	flags.IntP("jobs", "j", 0, "Number of entry files analyzed in parallel (0 = one per CPU)")
	flags.String("config", "", "Path to the config file (default: <root>/"+domain.ConfigFileName+")")

	// Persistent flags go first so that -v stays with --verbose.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configureLogger

	rootCmd.AddCommand(c.newBloatCmd())
	rootCmd.AddCommand(c.newDepthCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	switch format {
	case logFormatText:
		c.logger.SetJSON(false)
	case logFormatJSON:
		c.logger.SetJSON(true)
	default:
		return zerr.With(domain.ErrInvalidLogFormat, "format", format)
	}
	c.logger.SetVerbose(verbose)
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
