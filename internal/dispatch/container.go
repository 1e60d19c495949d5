package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/mount"
	"github.com/moby/moby/client"
	"github.com/signalnine/benchwrap/internal/artifact"
)

// runContainer executes the framework inside a container instead of on the
// host. The framework's config file is bind-mounted read-only and the
// artifact directory is mounted as the working directory, so result files
// land on the host like a local run.
func runContainer(ctx context.Context, inv *Invocation) (*Result, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	defer cli.Close()

	runDir, err := artifact.CreateRunDir(inv.ArtifactsBase, inv.Tool.Name)
	if err != nil {
		return nil, err
	}
	cfgAbs, err := filepath.Abs(inv.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfgTarget := path.Join("/config", filepath.Base(inv.ConfigPath))
	argv := inv.Tool.Command(cfgTarget, inv.Model, inv.Extra)

	mounts := []mount.Mount{
		{Type: mount.TypeBind, Source: cfgAbs, Target: cfgTarget, ReadOnly: true},
		{Type: mount.TypeBind, Source: runDir, Target: "/artifacts"},
	}

	containerCfg := &container.Config{
		Image:      inv.Image,
		Cmd:        argv,
		Env:        inv.Env,
		WorkingDir: "/artifacts",
		Labels:     map[string]string{"benchwrap": "true"},
	}
	hostCfg := &container.HostConfig{Mounts: mounts}

	createResp, err := cli.ContainerCreate(ctx, client.ContainerCreateOptions{
		Config:     containerCfg,
		HostConfig: hostCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("creating container: %w", err)
	}
	containerID := createResp.ID
	defer func() {
		cli.ContainerRemove(context.Background(), containerID, client.ContainerRemoveOptions{Force: true})
	}()

	start := time.Now()
	if _, err := cli.ContainerStart(ctx, containerID, client.ContainerStartOptions{}); err != nil {
		return nil, fmt.Errorf("starting container: %w", err)
	}

	waitCtx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	waitResult := cli.ContainerWait(waitCtx, containerID, client.ContainerWaitOptions{
		Condition: container.WaitConditionNotRunning,
	})
	for {
		select {
		case err := <-waitResult.Error:
			if err != nil {
				cli.ContainerKill(context.Background(), containerID, client.ContainerKillOptions{Signal: "SIGKILL"})
				captureLogs(cli, containerID, runDir)
				return &Result{
					ExitCode:    ExitTimeout,
					TimedOut:    true,
					Duration:    time.Since(start),
					ArtifactDir: runDir,
				}, nil
			}
			// nil error means no error on this channel; wait for result
		case status := <-waitResult.Result:
			captureLogs(cli, containerID, runDir)
			return &Result{
				ExitCode:    int(status.StatusCode),
				Duration:    time.Since(start),
				ArtifactDir: runDir,
			}, nil
		}
	}
}

func captureLogs(cli *client.Client, containerID, runDir string) {
	logReader, err := cli.ContainerLogs(context.Background(), containerID, client.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		return
	}
	defer logReader.Close()
	logData, err := io.ReadAll(logReader)
	if err != nil {
		return
	}
	os.WriteFile(filepath.Join(runDir, "container.log"), logData, 0o644)
}
