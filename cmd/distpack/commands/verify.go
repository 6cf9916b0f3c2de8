package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/distpack/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the output directory against the last recorded assembly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, _ := cmd.Flags().GetBool("layout")
			return c.app.Verify(cmd.Context(), app.VerifyOptions{
				ConfigPath: c.configPath,
				Layout:     layout,
			})
		},
	}
	cmd.Flags().BoolP("layout", "l", false, "Also check that every bundle format entry exists")
	return cmd
}
