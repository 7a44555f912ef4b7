package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcampanini/pears/internal/repository"
)

// fakeGit is a test double for Git
type fakeGit struct {
	root          string
	rootErr       error
	pushDefault   string
	remoteURLs    map[string]string
	remoteURLErr  error
	requestedURLs []string
}

func (f *fakeGit) GetWorktreeRoot(context.Context) (string, error) {
	return f.root, f.rootErr
}

func (f *fakeGit) GetDefaultRemote(_ context.Context, fallback string) (string, error) {
	if f.pushDefault != "" {
		return f.pushDefault, nil
	}
	return fallback, nil
}

func (f *fakeGit) GetRemoteURL(_ context.Context, remoteName string) (string, error) {
	f.requestedURLs = append(f.requestedURLs, remoteName)
	return f.remoteURLs[remoteName], f.remoteURLErr
}

func (f *fakeGit) ListRemotes(context.Context) ([]string, error) {
	var names []string
	for name := range f.remoteURLs {
		names = append(names, name)
	}
	return names, nil
}

func TestDiscoverRepository(t *testing.T) {
	tests := []struct {
		name       string
		git        *fakeGit
		want       repository.Identity
		wantRemote string
		wantErr    string
		wantErrIs  error
	}{
		{
			name: "ssh origin",
			git: &fakeGit{
				root:       "/src/atst",
				remoteURLs: map[string]string{"origin": "git@github.com:dds/atst.git"},
			},
			want:       repository.Identity{Owner: "dds", Name: "atst"},
			wantRemote: "origin",
		},
		{
			name: "push default remote",
			git: &fakeGit{
				root:        "/src/atst",
				pushDefault: "upstream",
				remoteURLs: map[string]string{
					"origin":   "https://github.com/me/atst.git",
					"upstream": "https://github.com/dds/atst",
				},
			},
			want:       repository.Identity{Owner: "dds", Name: "atst"},
			wantRemote: "upstream",
		},
		{
			name:      "outside a repository",
			git:       &fakeGit{},
			wantErrIs: ErrNotARepository,
		},
		{
			name:    "git failure",
			git:     &fakeGit{rootErr: errors.New("git rev-parse --show-toplevel failed")},
			wantErr: "git rev-parse --show-toplevel failed",
		},
		{
			name:    "no remotes",
			git:     &fakeGit{root: "/src/atst"},
			wantErr: "repository at /src/atst has no remotes",
		},
		{
			name: "missing origin",
			git: &fakeGit{
				root:       "/src/atst",
				remoteURLs: map[string]string{"fork": "git@github.com:me/atst.git"},
			},
			wantErr: `repository at /src/atst has no remote "origin" (remotes: fork)`,
		},
		{
			name: "remote not on github",
			git: &fakeGit{
				root:       "/src/atst",
				remoteURLs: map[string]string{"origin": "git@gitlab.com:dds/atst.git"},
			},
			wantErr: `could not parse repository from remote url "git@gitlab.com:dds/atst.git"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscoverRepository(context.Background(), tt.git)

			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, []string{tt.wantRemote}, tt.git.requestedURLs)
			}
		})
	}
}
