package cmd

import (
	"log"

	"github.com/signalnine/benchwrap/internal/summary"
	"github.com/spf13/cobra"
)

var flagFormat string

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [root-dir]",
		Short: "Aggregate numeric metrics from stored artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			format := cfg.Report.Format
			if cmd.Flags().Changed("format") {
				format = flagFormat
			}
			rep, err := summary.Scan(args[0])
			if err != nil {
				return err
			}
			for _, warn := range rep.Warnings {
				log.Printf("warning: %s", warn)
			}
			return summary.Write(rep, format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
