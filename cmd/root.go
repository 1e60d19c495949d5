package cmd

import (
	"errors"
	"fmt"

	"github.com/signalnine/benchwrap/internal/config"
	"github.com/spf13/cobra"
)

var settingsFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "benchwrap",
		Short:        "Single entry point for running and summarizing LLM benchmark suites",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&settingsFile, "settings", "benchwrap.yaml", "benchwrap settings file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCheckCmd())
	return root
}

// loadSettings reads the wrapper's own settings file. The default path is
// optional; a path named explicitly on the command line must exist.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	optional := !cmd.Root().PersistentFlags().Changed("settings")
	return config.Load(settingsFile, optional)
}

// exitCodeError carries a specific process exit status through cobra's
// error path, so the external tool's own status can be forwarded.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string {
	return e.msg
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	if err != nil {
		return 1
	}
	return 0
}

func exitWithCode(code int, format string, args ...any) error {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
