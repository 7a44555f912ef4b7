// Package git reads the local checkout to work out which GitHub repository it belongs to.
package git

import "context"

// Git is the read-only subset of git that pears needs. Every method runs
// under ctx and the client's own timeout, whichever ends first.
type Git interface {
	// GetWorktreeRoot returns the absolute path to the root of the git tree.
	// If not in a git repository, returns ("", nil).
	GetWorktreeRoot(ctx context.Context) (string, error)

	// GetDefaultRemote returns remote.pushDefault if set, otherwise fallback.
	GetDefaultRemote(ctx context.Context, fallback string) (string, error)

	// GetRemoteURL returns the fetch URL of the named remote, or ("", nil)
	// if no such remote is configured.
	GetRemoteURL(ctx context.Context, remoteName string) (string, error)

	// ListRemotes returns the names of all configured remotes.
	ListRemotes(ctx context.Context) ([]string, error)
}
