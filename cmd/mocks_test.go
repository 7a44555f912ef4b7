package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/jmcampanini/pears/internal/git"
	"github.com/jmcampanini/pears/internal/github"
	"github.com/jmcampanini/pears/internal/repository"
)

// fetcherMock implements github.Fetcher for testing
type fetcherMock struct{ mock.Mock }

var _ github.Fetcher = (*fetcherMock)(nil)

func (m *fetcherMock) Fetch(ctx context.Context, id repository.Identity) (github.Repository, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(github.Repository), args.Error(1)
}

// mockGit implements git.Git for testing
type mockGit struct {
	getDefaultRemoteFn func(fallback string) (string, error)
	getRemoteURLFn     func(remoteName string) (string, error)
	getWorktreeRootFn  func() (string, error)
	listRemotesFn      func() ([]string, error)
}

var _ git.Git = (*mockGit)(nil)

func (m *mockGit) GetDefaultRemote(_ context.Context, fallback string) (string, error) {
	if m.getDefaultRemoteFn != nil {
		return m.getDefaultRemoteFn(fallback)
	}
	return fallback, nil
}

func (m *mockGit) GetRemoteURL(_ context.Context, remoteName string) (string, error) {
	if m.getRemoteURLFn != nil {
		return m.getRemoteURLFn(remoteName)
	}
	return "git@github.com:dod-ccpo/atst.git", nil
}

func (m *mockGit) GetWorktreeRoot(context.Context) (string, error) {
	if m.getWorktreeRootFn != nil {
		return m.getWorktreeRootFn()
	}
	return "/workspace/atst", nil
}

func (m *mockGit) ListRemotes(context.Context) ([]string, error) {
	if m.listRemotesFn != nil {
		return m.listRemotesFn()
	}
	return []string{"origin"}, nil
}

// newTestCommand returns a command with a context whose output is captured.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	return cmd, &buf
}

// resetFlags clears the global flag values before and after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		configFlag = ""
		offlineFlag = false
		repoFlag = ""
		verboseFlag = false
	}
	reset()
	t.Cleanup(reset)
}

// executeCommand runs the root command with args and returns everything it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
