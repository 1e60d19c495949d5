package cmd

import (
	"fmt"
	"strings"

	"github.com/signalnine/benchwrap/internal/tool"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered benchmarking frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			reg, err := tool.NewRegistry(cfg.Tools)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Tools:")
			for _, name := range reg.Names() {
				d, _ := reg.Lookup(name)
				line := fmt.Sprintf("  - %s (command: %s)", d.Name,
					strings.Join(d.Command("<config>", "<model>", nil), " "))
				if d.Image != "" {
					line += fmt.Sprintf(" [image: %s]", d.Image)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
