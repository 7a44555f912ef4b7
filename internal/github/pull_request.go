package github

import "time"

// ReviewState is the state of a pull request review as reported by GitHub.
// The vocabulary belongs to GitHub; values not listed here are kept verbatim.
type ReviewState string

const (
	ReviewStateApproved         ReviewState = "APPROVED"
	ReviewStateChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewStateCommented        ReviewState = "COMMENTED"
	ReviewStateDismissed        ReviewState = "DISMISSED"
	ReviewStatePending          ReviewState = "PENDING"
)

func (s ReviewState) String() string {
	return string(s)
}

// Author is a reference to the GitHub user behind a pull request, review or comment.
type Author struct {
	Login string
}

// ghostLogin is the login GitHub shows for deleted accounts.
const ghostLogin = "ghost"

type Label struct {
	Name string
}

type Comment struct {
	Author    Author
	BodyText  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Review struct {
	Author    Author
	BodyText  string
	State     ReviewState
	Comments  []Comment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PullRequest is a pull request with its labels, comments and reviews.
// Body, ClosedAt and MergedAt are nil when GitHub reports them as null.
type PullRequest struct {
	ID        string
	State     string
	Title     string
	Body      *string
	Number    int
	URL       string
	Mergeable string
	Author    Author
	Labels    []Label
	Comments  []Comment
	Reviews   []Review
	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
	MergedAt  *time.Time
}

// Repository is a fetched repository and its most recently updated open pull requests.
type Repository struct {
	Name         string
	PullRequests []PullRequest
}
