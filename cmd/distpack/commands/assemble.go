package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/distpack/internal/app"
)

func (c *CLI) newAssembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assemble",
		Short: "Copy the readme, manifest and license into an already built output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Assemble(cmd.Context(), app.AssembleOptions{ConfigPath: c.configPath})
		},
	}
}
