// Package pr orders and looks up fetched pull requests for display.
package pr

import (
	"fmt"
	"slices"

	"github.com/jmcampanini/pears/internal/github"
)

// NotFoundError is returned when no fetched pull request has the requested number.
type NotFoundError struct {
	Number int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no active PR found with number %d", e.Number)
}

// FindByNumber returns the pull request numbered n.
func FindByNumber(prs []github.PullRequest, n int) (github.PullRequest, error) {
	for _, pr := range prs {
		if pr.Number == n {
			return pr, nil
		}
	}
	return github.PullRequest{}, &NotFoundError{Number: n}
}

// SortByUpdatedDesc returns a copy of prs, most recently updated first.
// Ties keep their fetched order.
func SortByUpdatedDesc(prs []github.PullRequest) []github.PullRequest {
	sorted := slices.Clone(prs)
	slices.SortStableFunc(sorted, func(a, b github.PullRequest) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return sorted
}

// CommentsByUpdatedAsc returns a copy of the pull request's comments, oldest update first.
func CommentsByUpdatedAsc(pr github.PullRequest) []github.Comment {
	sorted := slices.Clone(pr.Comments)
	slices.SortStableFunc(sorted, func(a, b github.Comment) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	return sorted
}

// Summary counts pull requests for a repository header.
type Summary struct {
	Approved int
	Mine     int
	Total    int
}

// Summarize counts approved pull requests and those opened by me.
func Summarize(prs []github.PullRequest, me string) Summary {
	s := Summary{Total: len(prs)}
	for _, pr := range prs {
		if github.IsApproved(pr) {
			s.Approved++
		}
		if github.IsAuthoredBy(pr, me) {
			s.Mine++
		}
	}
	return s
}
