package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/pears/internal/config"
	"github.com/jmcampanini/pears/internal/display"
	"github.com/jmcampanini/pears/internal/github"
	"github.com/jmcampanini/pears/internal/pr"
	"github.com/jmcampanini/pears/internal/repository"
)

var showCmd = &cobra.Command{
	Use:   "show <number> [group]",
	Short: "Show pull request details",
	Long: `Show one open pull request in full: labels, body, reviews and comments.

With a group, its repositories are searched in order and the first pull
request with that number is shown.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithDeps(cmd, args, nil, nil)
}

func runShowWithDeps(cmd *cobra.Command, args []string, deps *pearsDeps, cfg *config.Config) error {
	prNum, err := strconv.Atoi(args[0])
	if err != nil || prNum <= 0 {
		return fmt.Errorf("invalid PR number: %s", args[0])
	}

	pc, err := initContext(deps, cfg)
	if err != nil {
		return err
	}

	targets, err := pc.resolveTargets(cmd.Context(), args[1:])
	if err != nil {
		return err
	}

	renderer := display.New(cmd.OutOrStdout(), display.Options{
		Width:     pc.cfg.Display.Width,
		Me:        pc.cfg.Me,
		BodyLines: pc.cfg.Display.BodyLines,
	})
	return showPullRequest(cmd.Context(), pc.fetcher, renderer, targets, prNum)
}

// showPullRequest renders the first pull request numbered prNum among targets.
// Repositories that cannot be fetched are reported and skipped.
func showPullRequest(ctx context.Context, fetcher github.Fetcher, renderer *display.Renderer, targets []repository.Identity, prNum int) error {
	for _, id := range targets {
		repo, err := fetcher.Fetch(ctx, id)
		if err != nil {
			log.Debug("could not fetch repository", "repo", id.String(), "error", err)
			if err := renderer.Error(err); err != nil {
				return err
			}
			continue
		}

		found, err := pr.FindByNumber(repo.PullRequests, prNum)
		var notFound *pr.NotFoundError
		if errors.As(err, &notFound) {
			log.Debug("pull request not in repository", "repo", id.String(), "number", prNum)
			continue
		}
		if err != nil {
			return err
		}
		return renderer.Show(found)
	}
	return &pr.NotFoundError{Number: prNum}
}
