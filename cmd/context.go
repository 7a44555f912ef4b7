package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmcampanini/pears/internal/config"
	"github.com/jmcampanini/pears/internal/git"
	"github.com/jmcampanini/pears/internal/github"
	"github.com/jmcampanini/pears/internal/repository"
)

// gitTimeout bounds the git commands used to discover the current repository.
const gitTimeout = 5 * time.Second

// pearsDeps holds injectable dependencies for testing.
type pearsDeps struct {
	fetcher github.Fetcher
	git     git.Git
}

// pearsContext holds the resolved dependencies shared by list and show.
type pearsContext struct {
	cfg         config.Config
	fetcher     github.Fetcher
	gitClient   git.Git
	sourcePaths []string
}

// initContext initializes the context from deps (for testing) or from environment.
func initContext(deps *pearsDeps, cfg *config.Config) (*pearsContext, error) {
	if deps != nil {
		loadedCfg := config.DefaultConfig()
		if cfg != nil {
			loadedCfg = *cfg
		}
		return &pearsContext{
			cfg:       loadedCfg,
			fetcher:   deps.fetcher,
			gitClient: deps.git,
		}, nil
	}

	return initContextFromEnv()
}

// initContextFromEnv loads config and creates clients from the environment.
func initContextFromEnv() (*pearsContext, error) {
	loadResult, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cfg := loadResult.Config

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	fetcher, err := newFetcher(cfg, loadResult.SourcePaths)
	if err != nil {
		return nil, err
	}

	return &pearsContext{
		cfg:         cfg,
		fetcher:     fetcher,
		gitClient:   git.New(cwd, gitTimeout),
		sourcePaths: loadResult.SourcePaths,
	}, nil
}

// loadConfig loads the --config file, or the default config files when it is not set.
func loadConfig() (config.LoadResult, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.LoadResult{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	// A missing config dir only means there are no default config files.
	configDir, _ := os.UserConfigDir()

	loader := config.NewDefaultLoader()
	paths := config.ConfigPaths(configFlag, configDir, homeDir)

	var loadResult config.LoadResult
	if configFlag != "" {
		loadResult, err = loader.LoadRequired(paths[0])
	} else {
		loadResult, err = loader.Load(paths)
	}
	if err != nil {
		return config.LoadResult{}, fmt.Errorf("failed to load config: %w", err)
	}
	return loadResult, nil
}

// newFetcher builds the live GitHub fetcher, or the sample fetcher with --offline.
func newFetcher(cfg config.Config, sourcePaths []string) (github.Fetcher, error) {
	if offlineFlag {
		return github.NewFixtureFetcher(nil), nil
	}

	token, err := config.ResolveToken(cfg, sourcePaths)
	if err != nil {
		return nil, err
	}

	fetcher, err := github.NewGraphQLFetcher(github.Options{
		Endpoint: cfg.API.Endpoint,
		Token:    token,
		Timeout:  cfg.API.Timeout.Duration,
	})
	if err != nil {
		return nil, err
	}
	return fetcher, nil
}

// resolveTargets picks the repositories to read: the named group, the --repo
// flag, or the repository checked out in the working directory.
func (c *pearsContext) resolveTargets(ctx context.Context, args []string) ([]repository.Identity, error) {
	if len(args) > 0 {
		group, err := c.cfg.Group(args[0])
		if err != nil {
			return nil, err
		}
		if len(group.Repos) == 0 {
			return nil, fmt.Errorf("group %q has no repositories", group.Name)
		}
		return group.Repos, nil
	}

	if repoFlag != "" {
		id, err := repository.Parse(repoFlag)
		if err != nil {
			return nil, err
		}
		return []repository.Identity{id}, nil
	}

	id, err := git.DiscoverRepository(ctx, c.gitClient)
	if errors.Is(err, git.ErrNotARepository) {
		return nil, fmt.Errorf("%w: run pears inside a GitHub checkout, pass --repo <owner>/<repo>, or name a group", err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not determine the repository: %w", err)
	}
	return []repository.Identity{id}, nil
}
