package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/jmcampanini/pears/internal/repository"
	"github.com/pkg/errors"
)

// DefaultEndpoint is the public GitHub GraphQL API.
const DefaultEndpoint = "https://api.github.com/graphql"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Options configures a GraphQLFetcher.
type Options struct {
	Endpoint  string
	Token     string
	Timeout   time.Duration
	Limit     int               // pull requests per repository; DefaultPRLimit if zero
	Transport http.RoundTripper // optional, for tests
}

// GraphQLFetcher fetches repositories from the GitHub GraphQL API with a
// single request per repository.
type GraphQLFetcher struct {
	client   *http.Client
	endpoint string
	limit    int
	log      *clog.Logger
	timeout  time.Duration
}

var _ Fetcher = &GraphQLFetcher{}

// NewGraphQLFetcher creates a fetcher that authenticates to opts.Endpoint with a bearer token.
func NewGraphQLFetcher(opts Options) (*GraphQLFetcher, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Hostname() == "" {
		return nil, newFetchError(err, "invalid GraphQL endpoint %q", endpoint)
	}

	client, err := api.NewHTTPClient(api.ClientOptions{
		AuthToken: opts.Token,
		Headers: map[string]string{
			"Authorization": "bearer " + opts.Token,
		},
		Host:      u.Hostname(),
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, newFetchError(errors.Wrap(err, "building http client"), "could not set up GitHub client")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPRLimit
	}

	return &GraphQLFetcher{
		client:   client,
		endpoint: endpoint,
		limit:    limit,
		log:      clog.Default().WithPrefix("github"),
		timeout:  opts.Timeout,
	}, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (f *GraphQLFetcher) Fetch(ctx context.Context, id repository.Identity) (Repository, error) {
	body, err := f.execute(ctx, id)
	if err != nil {
		f.log.Warn("GraphQL request failed", "repo", id, "error", errors.Cause(err))
		return Repository{}, newFetchError(err, "could not fetch %s", id)
	}

	repo, err := ParseRepositoryResponse(body)
	if err != nil {
		f.log.Warn("Could not decode GraphQL response", "repo", id, "error", err)
		return Repository{}, err
	}

	f.log.Debug("Fetched repository", "repo", id, "pullRequests", len(repo.PullRequests))
	return repo, nil
}

func (f *GraphQLFetcher) execute(ctx context.Context, id repository.Identity) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(graphQLRequest{
		Query: repositoryQuery,
		Variables: map[string]any{
			"owner": id.Owner,
			"name":  id.Name,
			"limit": f.limit,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	f.log.Debug("Sending GraphQL request", "endpoint", f.endpoint, "repo", id)
	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Errorf("request timed out after %s", f.timeout)
		}
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	f.log.Debug("Received GraphQL response", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp, body)
	}
	return body, nil
}

// statusError describes a non-2xx response, including GitHub's message when the body carries one.
func statusError(resp *http.Response, body []byte) error {
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		return errors.Errorf("GitHub API returned %s: %s", resp.Status, apiErr.Message)
	}
	return errors.Errorf("GitHub API returned %s", resp.Status)
}
