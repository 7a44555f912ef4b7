package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/pears/internal/config"
	"github.com/jmcampanini/pears/internal/display"
	"github.com/jmcampanini/pears/internal/github"
	"github.com/jmcampanini/pears/internal/pr"
	"github.com/jmcampanini/pears/internal/repository"
)

var listCmd = &cobra.Command{
	Use:   "list [group]",
	Short: "List open pull requests",
	Long: `List the open pull requests of the current repository, or of every
repository in a group from the config file.

Pull requests are shown most recently updated first. Approved pull requests
are marked, as are those opened by the "me" user from the config file.

A repository that cannot be fetched is reported and skipped; the command
still fails once every other repository has been listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return runListWithDeps(cmd, args, nil, nil)
}

func runListWithDeps(cmd *cobra.Command, args []string, deps *pearsDeps, cfg *config.Config) error {
	pc, err := initContext(deps, cfg)
	if err != nil {
		return err
	}

	targets, err := pc.resolveTargets(cmd.Context(), args)
	if err != nil {
		return err
	}

	renderer := display.New(cmd.OutOrStdout(), display.Options{
		Width:     pc.cfg.Display.Width,
		Me:        pc.cfg.Me,
		BodyLines: pc.cfg.Display.BodyLines,
	})
	return listRepositories(cmd.Context(), pc.fetcher, renderer, targets, pc.cfg.Me)
}

// listRepositories fetches and renders each target in turn. A failed fetch is
// reported in place and counted; the rest are still listed.
func listRepositories(ctx context.Context, fetcher github.Fetcher, renderer *display.Renderer, targets []repository.Identity, me string) error {
	failed := 0
	for _, id := range targets {
		repo, err := fetcher.Fetch(ctx, id)
		if err != nil {
			failed++
			log.Debug("could not fetch repository", "repo", id.String(), "error", err)
			if err := renderer.Error(err); err != nil {
				return err
			}
			continue
		}

		prs := pr.SortByUpdatedDesc(repo.PullRequests)
		if err := renderer.Repository(id, pr.Summarize(prs, me)); err != nil {
			return err
		}
		if err := renderer.List(prs); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d repositories could not be fetched", failed, len(targets))
	}
	return nil
}
