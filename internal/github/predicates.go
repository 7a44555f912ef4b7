package github

// IsApproved reports whether any review on pr is an approval. Later reviews
// are not reconciled against earlier ones: a single APPROVED review anywhere
// in the history is enough.
func IsApproved(pr PullRequest) bool {
	for _, review := range pr.Reviews {
		if review.State == ReviewStateApproved {
			return true
		}
	}
	return false
}

// IsAuthoredBy reports whether login opened pr. An empty login never matches.
func IsAuthoredBy(pr PullRequest, login string) bool {
	return login != "" && pr.Author.Login == login
}

func (pr PullRequest) IsMerged() bool {
	return pr.MergedAt != nil
}

func (pr PullRequest) IsClosed() bool {
	return pr.ClosedAt != nil
}
