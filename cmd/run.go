package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/signalnine/benchwrap/internal/dispatch"
	"github.com/signalnine/benchwrap/internal/secrets"
	"github.com/signalnine/benchwrap/internal/tool"
	"github.com/spf13/cobra"
)

var (
	flagTool      string
	flagRunConfig string
	flagModel     string
	flagExtra     []string
	flagTimeout   time.Duration
	flagImage     string
	flagArtifacts string
	flagDryRun    bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a benchmark run via an external framework",
		Long:  "Resolve a framework's command template, launch it, and capture its output under the artifacts directory. Tokens after -- are appended to the external command line verbatim.",
		Args:  cobra.ArbitraryArgs,
		RunE:  runBenchmark,
	}
	cmd.Flags().StringVar(&flagTool, "tool", "", "framework to invoke (see 'benchwrap list')")
	cmd.Flags().StringVar(&flagRunConfig, "config", "", "path to the framework's own config file")
	cmd.Flags().StringVar(&flagModel, "model", "", "model identifier override")
	cmd.Flags().StringArrayVar(&flagExtra, "extra", nil, "extra token passed through to the framework (repeatable)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "kill the framework after this duration (default: no timeout)")
	cmd.Flags().StringVar(&flagImage, "image", "", "run the framework inside this container image")
	cmd.Flags().StringVar(&flagArtifacts, "artifacts", "", "base directory for run outputs (overrides settings)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the resolved command without executing it")
	cmd.MarkFlagRequired("tool")
	cmd.MarkFlagRequired("config")
	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	reg, err := tool.NewRegistry(cfg.Tools)
	if err != nil {
		return err
	}
	desc, err := reg.Lookup(flagTool)
	if err != nil {
		return err
	}
	if _, err := os.Stat(flagRunConfig); err != nil {
		return fmt.Errorf("framework config %s: %w", flagRunConfig, err)
	}

	extra := append(append([]string{}, flagExtra...), args...)
	artifactsBase := cfg.Artifacts.Dir
	if flagArtifacts != "" {
		artifactsBase = flagArtifacts
	}
	image := desc.Image
	if flagImage != "" {
		image = flagImage
	}

	inv := &dispatch.Invocation{
		Tool:          desc,
		ConfigPath:    flagRunConfig,
		Model:         flagModel,
		Extra:         extra,
		ArtifactsBase: artifactsBase,
		Timeout:       flagTimeout,
		Image:         image,
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[benchmark] Tool     : %s\n", desc.Name)
	fmt.Fprintf(out, "[benchmark] Config   : %s\n", flagRunConfig)
	if flagModel != "" {
		fmt.Fprintf(out, "[benchmark] Model    : %s\n", flagModel)
	}
	if len(extra) > 0 {
		fmt.Fprintf(out, "[benchmark] Extra    : %s\n", strings.Join(extra, " "))
	}
	fmt.Fprintf(out, "[benchmark] Command  : %s\n", strings.Join(inv.CommandLine(), " "))

	if flagDryRun {
		fmt.Fprintln(out, "[benchmark] Dry run requested. Command not executed.")
		return nil
	}

	if cfg.Secrets.EnvFile != "" {
		env, err := secrets.ParseEnvFile(cfg.Secrets.EnvFile)
		if err != nil {
			return fmt.Errorf("reading secrets env file: %w", err)
		}
		inv.Env = env
	}

	res, err := dispatch.Run(context.Background(), inv)
	if err != nil {
		if errors.Is(err, dispatch.ErrNotInstalled) {
			return exitWithCode(dispatch.ExitNotInstalled,
				"%v; install the framework or rerun with --dry-run", err)
		}
		return err
	}

	fmt.Fprintf(out, "[benchmark] Outputs  : %s\n", res.ArtifactDir)
	fmt.Fprintf(out, "[benchmark] Exit code: %d (%s)\n", res.ExitCode, res.Reason())
	if res.TimedOut {
		return exitWithCode(dispatch.ExitTimeout, "%s timed out after %s", desc.Name, flagTimeout)
	}
	if res.ExitCode != 0 {
		return exitWithCode(res.ExitCode, "%s exited with status %d", desc.Name, res.ExitCode)
	}
	return nil
}
