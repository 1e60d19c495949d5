package cmd

import (
	"fmt"
	"os/exec"

	"github.com/signalnine/benchwrap/internal/tool"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check which framework executables are installed",
		Long:  "Look up each registered framework's executable on PATH, so a missing installation can be told apart from a framework that ran and failed.",
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
			for _, name := range reg.Names() {
				d, _ := reg.Lookup(name)
				if path, err := exec.LookPath(d.Executable); err == nil {
					fmt.Fprintf(out, "  %-14s %s\n", name, path)
				} else {
					fmt.Fprintf(out, "  %-14s not installed (%s)\n", name, d.Executable)
				}
			}
			return nil
		},
	}
}
