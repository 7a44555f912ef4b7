package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmcampanini/pears/internal/repository"
)

// Config represents the complete pears configuration.
type Config struct {
	Me      string        `json:"me" toml:"me" yaml:"me"`          // your GitHub login, highlighted in listings
	Token   string        `json:"token" toml:"token" yaml:"token"` // GitHub token; see ResolveToken for fallbacks
	API     APIConfig     `json:"api" toml:"api" yaml:"api"`
	Display DisplayConfig `json:"display" toml:"display" yaml:"display"`
	Groups  []Group       `json:"groups" toml:"groups" yaml:"groups"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.API.Timeout.Duration < 0 {
		return errors.New("api.timeout cannot be negative")
	}
	u, err := url.Parse(c.API.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.endpoint must be an absolute http(s) URL, got %q", c.API.Endpoint)
	}
	if c.Display.Width < 0 {
		return errors.New("display.width cannot be negative")
	}
	if c.Display.BodyLines < 0 {
		return errors.New("display.body_lines cannot be negative")
	}

	seen := make(map[string]bool)
	for i, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("groups[%d].name cannot be empty", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		seen[g.Name] = true
		for j, repo := range g.Repos {
			if err := repo.Validate(); err != nil {
				return fmt.Errorf("group %q repos[%d]: %w", g.Name, j, err)
			}
		}
	}
	return nil
}

// Group returns the group called name.
func (c Config) Group(name string) (Group, error) {
	names := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		if g.Name == name {
			return g, nil
		}
		names = append(names, g.Name)
	}
	if len(names) == 0 {
		return Group{}, fmt.Errorf("no group named %q: the config defines no groups", name)
	}
	return Group{}, fmt.Errorf("no group named %q (known groups: %s)", name, strings.Join(names, ", "))
}

// Redacted returns a copy of the config that is safe to print.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = "********"
	}
	return c
}

// APIConfig configures access to the GitHub GraphQL API.
type APIConfig struct {
	Endpoint string   `json:"endpoint" toml:"endpoint" yaml:"endpoint"`
	Timeout  Duration `json:"timeout" toml:"timeout" yaml:"timeout"` // per request, e.g. "30s"; 0 disables
}

// DisplayConfig configures terminal output.
type DisplayConfig struct {
	Width     int `json:"width" toml:"width" yaml:"width"`                // 0 detects the terminal width
	BodyLines int `json:"body_lines" toml:"body_lines" yaml:"body_lines"` // 0 shows whole bodies
}

// Group is a named set of repositories listed together.
type Group struct {
	Name  string                `json:"name" toml:"name" yaml:"name"`
	Repos []repository.Identity `json:"repos" toml:"repos" yaml:"repos"`
}
