package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmcampanini/pears/internal/repository"
)

// DefaultRemote is used when remote.pushDefault is not set.
const DefaultRemote = "origin"

// ErrNotARepository is returned by DiscoverRepository outside a git checkout.
var ErrNotARepository = errors.New("not in a git repository")

// DiscoverRepository works out the GitHub repository of the checkout g runs in
// from the URL of its default remote.
func DiscoverRepository(ctx context.Context, g Git) (repository.Identity, error) {
	root, err := g.GetWorktreeRoot(ctx)
	if err != nil {
		return repository.Identity{}, err
	}
	if root == "" {
		return repository.Identity{}, ErrNotARepository
	}

	remote, err := g.GetDefaultRemote(ctx, DefaultRemote)
	if err != nil {
		return repository.Identity{}, err
	}

	url, err := g.GetRemoteURL(ctx, remote)
	if err != nil {
		return repository.Identity{}, err
	}
	if url == "" {
		remotes, err := g.ListRemotes(ctx)
		if err != nil {
			return repository.Identity{}, err
		}
		if len(remotes) == 0 {
			return repository.Identity{}, fmt.Errorf("repository at %s has no remotes", root)
		}
		return repository.Identity{}, fmt.Errorf("repository at %s has no remote %q (remotes: %s)", root, remote, strings.Join(remotes, ", "))
	}

	return repository.ParseRemoteURL(url)
}
