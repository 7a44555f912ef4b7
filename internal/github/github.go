package github

import (
	"context"
	_ "embed"

	"github.com/jmcampanini/pears/internal/repository"
)

// Fetcher retrieves a repository and its open pull requests.
// Every error returned by Fetch is a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, id repository.Identity) (Repository, error)
}

//go:embed fixtures/atst.json
var sampleResponse []byte

// SampleResponse returns a copy of the captured response bundled with pears.
func SampleResponse() []byte {
	return append([]byte(nil), sampleResponse...)
}

// FixtureFetcher answers every request with a fixed, previously captured
// response. It decodes through ParseRepositoryResponse exactly like the live
// fetcher; only the origin of the bytes differs.
type FixtureFetcher struct {
	payload []byte
}

var _ Fetcher = &FixtureFetcher{}

// NewFixtureFetcher returns a FixtureFetcher serving payload, or the bundled
// sample response when payload is nil.
func NewFixtureFetcher(payload []byte) *FixtureFetcher {
	if payload == nil {
		payload = SampleResponse()
	}
	return &FixtureFetcher{payload: payload}
}

func (f *FixtureFetcher) Fetch(ctx context.Context, _ repository.Identity) (Repository, error) {
	if err := ctx.Err(); err != nil {
		return Repository{}, newFetchError(err, "fetch cancelled")
	}
	return ParseRepositoryResponse(f.payload)
}
