package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/distpack/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run the configured build steps, then assemble the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), app.BuildOptions{ConfigPath: c.configPath})
		},
	}
}
