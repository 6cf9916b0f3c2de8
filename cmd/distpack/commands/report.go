package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/distpack/internal/app"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the raw and gzip size of every bundle entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Report(cmd.Context(), app.ReportOptions{ConfigPath: c.configPath})
		},
	}
}
