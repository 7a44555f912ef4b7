package github

import (
	"encoding/json"
	"fmt"
)

// ParseRepositoryResponse decodes the body of a repository pull request query.
// It fails closed: any missing field, type mismatch, malformed timestamp,
// malformed connection or wrongly cased key yields a *FetchError and no partial
// Repository. An explicit null repository means it was not found.
func ParseRepositoryResponse(body []byte) (Repository, error) {
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Repository{}, newFetchError(err, "could not decode GitHub response")
	}
	if err := checkKeyCase(body); err != nil {
		return Repository{}, newFetchError(err, "could not decode GitHub response")
	}

	if len(env.Errors) > 0 {
		return Repository{}, newFetchError(env.Errors, "GitHub API returned errors")
	}
	if env.Data == nil {
		return Repository{}, newFetchError(nil, "could not decode GitHub response: data: %s", errMissingField)
	}
	if !env.Data.Repository.present {
		return Repository{}, newFetchError(nil, "could not decode GitHub response: data: repository: %s", errMissingField)
	}
	if env.Data.Repository.null {
		return Repository{}, newFetchError(nil, "repository not found or not accessible")
	}

	repo, err := convertRepository(env.Data.Repository.value)
	if err != nil {
		return Repository{}, newFetchError(fmt.Errorf("repository: %w", err), "could not decode GitHub response")
	}
	return repo, nil
}

func convertRepository(w wireRepository) (Repository, error) {
	var err error
	repo := Repository{
		Name:         required(&err, "name", w.Name),
		PullRequests: connection(&err, "pullRequests", w.PullRequests, convertPullRequest),
	}
	if err != nil {
		return Repository{}, err
	}
	return repo, nil
}

func convertPullRequest(w wirePullRequest) (PullRequest, error) {
	var err error
	pr := PullRequest{
		ID:        required(&err, "id", w.ID),
		State:     required(&err, "state", w.State),
		Title:     required(&err, "title", w.Title),
		Body:      optional(&err, "body", w.Body),
		Number:    required(&err, "number", w.Number),
		URL:       required(&err, "url", w.URL),
		Mergeable: required(&err, "mergeable", w.Mergeable),
		Author:    author(&err, w.Author),
		Labels:    connection(&err, "labels", w.Labels, convertLabel),
		Comments:  connection(&err, "comments", w.Comments, convertComment),
		Reviews:   connection(&err, "reviews", w.Reviews, convertReview),
		CreatedAt: required(&err, "createdAt", w.CreatedAt),
		UpdatedAt: required(&err, "updatedAt", w.UpdatedAt),
		ClosedAt:  optional(&err, "closedAt", w.ClosedAt),
		MergedAt:  optional(&err, "mergedAt", w.MergedAt),
	}
	if err != nil {
		return PullRequest{}, err
	}
	return pr, nil
}

func convertReview(w wireReview) (Review, error) {
	var err error
	review := Review{
		Author:    author(&err, w.Author),
		BodyText:  required(&err, "bodyText", w.BodyText),
		State:     ReviewState(required(&err, "state", w.State)),
		Comments:  connection(&err, "comments", w.Comments, convertComment),
		CreatedAt: required(&err, "createdAt", w.CreatedAt),
		UpdatedAt: required(&err, "updatedAt", w.UpdatedAt),
	}
	if err != nil {
		return Review{}, err
	}
	return review, nil
}

func convertComment(w wireComment) (Comment, error) {
	var err error
	comment := Comment{
		Author:    author(&err, w.Author),
		BodyText:  required(&err, "bodyText", w.BodyText),
		CreatedAt: required(&err, "createdAt", w.CreatedAt),
		UpdatedAt: required(&err, "updatedAt", w.UpdatedAt),
	}
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func convertLabel(w wireLabel) (Label, error) {
	var err error
	label := Label{Name: required(&err, "name", w.Name)}
	if err != nil {
		return Label{}, err
	}
	return label, nil
}

// The helpers below record the first failure in *errp and turn later calls
// into no-ops, so a converter can read every field in one composite literal.

func required[T any](errp *error, name string, f field[T]) T {
	var zero T
	if *errp != nil {
		return zero
	}
	v, err := f.required()
	if err != nil {
		*errp = fmt.Errorf("%s: %w", name, err)
		return zero
	}
	return v
}

func optional[T any](errp *error, name string, f field[T]) *T {
	if *errp != nil {
		return nil
	}
	v, err := f.optional()
	if err != nil {
		*errp = fmt.Errorf("%s: %w", name, err)
		return nil
	}
	return v
}

// author maps a null author, which GitHub sends for deleted accounts, to the ghost user.
func author(errp *error, f field[wireAuthor]) Author {
	if *errp != nil {
		return Author{}
	}
	if !f.present {
		*errp = fmt.Errorf("author: %w", errMissingField)
		return Author{}
	}
	if f.null {
		return Author{Login: ghostLogin}
	}
	login, err := f.value.Login.required()
	if err != nil {
		*errp = fmt.Errorf("author: login: %w", err)
		return Author{}
	}
	return Author{Login: login}
}

func connection[W, T any](errp *error, name string, c Connection[W], convert func(W) (T, error)) []T {
	if *errp != nil {
		return nil
	}
	items, err := FlattenInto(c, convert)
	if err != nil {
		*errp = fmt.Errorf("%s: %w", name, err)
		return nil
	}
	return items
}
