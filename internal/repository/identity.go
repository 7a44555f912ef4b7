// Package repository identifies the remote GitHub repositories pears reads from.
package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	ghrepo "github.com/cli/go-gh/v2/pkg/repository"
)

// Identity names a remote repository. Owner and name are compared
// case-sensitively, exactly as supplied.
type Identity struct {
	Owner string `json:"owner" toml:"owner" yaml:"owner"`
	Name  string `json:"name" toml:"name" yaml:"name"`
}

// String returns the identity in "owner/name" form.
func (id Identity) String() string {
	return id.Owner + "/" + id.Name
}

// Validate reports whether both parts of the identity are set.
func (id Identity) Validate() error {
	if id.Owner == "" {
		return errors.New("repository owner cannot be empty")
	}
	if id.Name == "" {
		return errors.New("repository name cannot be empty")
	}
	return nil
}

// Parse reads an "owner/name" description as given on the command line.
func Parse(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, "/") != 1 {
		return Identity{}, fmt.Errorf("invalid repository %q: expected <owner>/<repo>", s)
	}

	repo, err := ghrepo.Parse(s)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid repository %q: %w", s, err)
	}

	id := Identity{Owner: repo.Owner, Name: repo.Name}
	if err := id.Validate(); err != nil {
		return Identity{}, fmt.Errorf("invalid repository %q: %w", s, err)
	}
	return id, nil
}

// remoteURLPattern matches both SSH (git@github.com:owner/name.git) and
// HTTPS (https://github.com/owner/name.git) remotes.
var remoteURLPattern = regexp.MustCompile(`github\.com[/:]([^/:]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRemoteURL extracts the identity from a git remote URL that points at github.com.
func ParseRemoteURL(url string) (Identity, error) {
	matches := remoteURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if matches == nil {
		return Identity{}, fmt.Errorf("could not parse repository from remote url %q", url)
	}

	id := Identity{Owner: matches[1], Name: matches[2]}
	if err := id.Validate(); err != nil {
		return Identity{}, fmt.Errorf("could not parse repository from remote url %q: %w", url, err)
	}
	return id, nil
}
