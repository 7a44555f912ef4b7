package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// GitCli runs read-only git commands in a working directory.
type GitCli struct {
	log        *clog.Logger
	timeout    time.Duration
	workingDir string
}

var _ Git = &GitCli{}

// New creates a GitCli for workingDir. A zero timeout leaves commands bounded by their context only.
func New(workingDir string, timeout time.Duration) Git {
	return &GitCli{
		log:        clog.Default().WithPrefix("git"),
		timeout:    timeout,
		workingDir: workingDir,
	}
}

// commandError is a git invocation that exited unsuccessfully.
type commandError struct {
	args   []string
	stderr string
	err    error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("git %s failed: %v: %s", strings.Join(e.args, " "), e.err, e.stderr)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// stderrContains reports whether err came from git and its stderr mentions text.
func stderrContains(err error, text string) bool {
	var cmdErr *commandError
	return errors.As(err, &cmdErr) && strings.Contains(cmdErr.stderr, text)
}

func (g *GitCli) run(ctx context.Context, args ...string) (string, error) {
	g.log.Debug("running git", "args", args, "dir", g.workingDir)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.workingDir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.log.Warn("git timed out", "args", args, "timeout", g.timeout)
			return "", fmt.Errorf("git %s timed out after %s", strings.Join(args, " "), g.timeout)
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), ctx.Err())
		}
		g.log.Debug("git failed", "args", args, "stderr", stderr.String(), "err", err)
		return "", &commandError{args: args, stderr: strings.TrimSpace(stderr.String()), err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (g *GitCli) GetWorktreeRoot(ctx context.Context) (string, error) {
	output, err := g.run(ctx, "rev-parse", "--show-toplevel")
	if stderrContains(err, "not a git repo") {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find worktree root: %w", err)
	}
	return output, nil
}

func (g *GitCli) GetDefaultRemote(ctx context.Context, fallback string) (string, error) {
	output, err := g.run(ctx, "config", "--get", "remote.pushDefault")
	if err != nil && ctx.Err() != nil {
		return "", err
	}
	// git config exits 1 for an unset key.
	if err != nil || output == "" {
		return fallback, nil
	}
	g.log.Debug("remote.pushDefault is set", "remote", output)
	return output, nil
}

func (g *GitCli) GetRemoteURL(ctx context.Context, remoteName string) (string, error) {
	output, err := g.run(ctx, "remote", "get-url", remoteName)
	if stderrContains(err, "No such remote") {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get url of remote %s: %w", remoteName, err)
	}
	return output, nil
}

func (g *GitCli) ListRemotes(ctx context.Context) ([]string, error) {
	output, err := g.run(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return strings.Fields(output), nil
}
