package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/abvthecity/oxiclean/internal/app"
	"github.com/abvthecity/oxiclean/internal/core/domain"
)

type checkRunner func(ctx context.Context, w io.Writer, flags app.CheckFlags) error

func (c *CLI) newBloatCmd() *cobra.Command {
	return newCheckCmd(
		string(domain.CheckBloat),
		"Report imports that pull in too many modules",
		domain.DefaultBloatThreshold,
		"Reachable module count that triggers a warning",
		c.app.Bloat,
	)
}

func (c *CLI) newDepthCmd() *cobra.Command {
	return newCheckCmd(
		string(domain.CheckDepth),
		"Report imports with overly long dependency chains",
		domain.DefaultDepthThreshold,
		"Import depth that triggers a warning",
		c.app.Depth,
	)
}

func newCheckCmd(use, short string, threshold uint, thresholdUsage string, runner checkRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := app.CheckFlags{}
			flags.Root, _ = cmd.Flags().GetString("root")
			flags.ConfigPath, _ = cmd.Flags().GetString("config")

			if cmd.Flags().Changed("threshold") {
				v, _ := cmd.Flags().GetUint("threshold")
				flags.Threshold = &v
			}
			if cmd.Flags().Changed("entry-glob") {
				v, _ := cmd.Flags().GetString("entry-glob")
				flags.EntryGlob = &v
			}
			if cmd.Flags().Changed("jobs") {
				v, _ := cmd.Flags().GetInt("jobs")
				flags.Jobs = &v
			}

			return runner(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
	cmd.Flags().String("root", "", "Workspace root (default: nearest parent directory containing .git)")
	cmd.Flags().Uint("threshold", threshold, thresholdUsage)
	cmd.Flags().String("entry-glob", "", "Only treat files whose root-relative path contains this text as entries")
	return cmd
}
