// Package dispatch builds and executes external framework invocations.
// Building the command line and executing it are fully separated so that
// dry-run can resolve the command without touching the filesystem.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/signalnine/benchwrap/internal/artifact"
	"github.com/signalnine/benchwrap/internal/tool"
)

// ErrNotInstalled distinguishes "the framework is not on PATH" from "the
// framework ran and returned an error".
var ErrNotInstalled = errors.New("executable not found on PATH")

const (
	ExitNotInstalled = 127
	ExitTimeout      = 124
)

// Invocation is one concrete execution request. It is consumed once; its
// only durable trace is the artifact directory.
type Invocation struct {
	Tool          *tool.Descriptor
	ConfigPath    string
	Model         string
	Extra         []string
	ArtifactsBase string
	Timeout       time.Duration // zero means no timeout
	Env           []string      // extra KEY=VALUE entries appended to the inherited env
	Image         string        // run inside a container when set
}

type Result struct {
	ExitCode    int
	TimedOut    bool
	Duration    time.Duration
	ArtifactDir string
}

// Reason renders the outcome for display. A non-zero exit is the external
// tool's own result, not a dispatch failure.
func (r *Result) Reason() string {
	switch {
	case r.TimedOut:
		return "timeout"
	case r.ExitCode == 0:
		return "completed"
	default:
		return "failed"
	}
}

// CommandLine resolves the full external argv without executing anything.
func (inv *Invocation) CommandLine() []string {
	return inv.Tool.Command(inv.ConfigPath, inv.Model, inv.Extra)
}

// Run launches the external framework with stdout and stderr redirected
// into a fresh artifact directory, and returns its exit code unchanged.
func Run(ctx context.Context, inv *Invocation) (*Result, error) {
	if inv.Image != "" {
		return runContainer(ctx, inv)
	}

	argv := inv.CommandLine()
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", argv[0], ErrNotInstalled)
	}

	runDir, err := artifact.CreateRunDir(inv.ArtifactsBase, inv.Tool.Name)
	if err != nil {
		return nil, err
	}
	stdout, err := os.Create(filepath.Join(runDir, "stdout.log"))
	if err != nil {
		return nil, fmt.Errorf("creating stdout log: %w", err)
	}
	defer stdout.Close()
	stderr, err := os.Create(filepath.Join(runDir, "stderr.log"))
	if err != nil {
		return nil, fmt.Errorf("creating stderr log: %w", err)
	}
	defer stderr.Close()

	runCtx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, path, argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), inv.Env...)

	start := time.Now()
	runErr := cmd.Run()
	res := &Result{Duration: time.Since(start), ArtifactDir: runDir}

	if runCtx.Err() == context.DeadlineExceeded {
		res.ExitCode = ExitTimeout
		res.TimedOut = true
		return res, nil
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, fmt.Errorf("launching %s: %w", argv[0], runErr)
	}
	return res, nil
}
