package github

import (
	"fmt"
	"strings"
)

// FetchError is returned when a repository cannot be fetched or its response
// cannot be interpreted. Details is suitable for direct display; the original
// cause stays reachable through errors.Unwrap.
type FetchError struct {
	Details string
	cause   error
}

func (e *FetchError) Error() string {
	return e.Details
}

func (e *FetchError) Unwrap() error {
	return e.cause
}

func newFetchError(cause error, format string, args ...any) *FetchError {
	details := fmt.Sprintf(format, args...)
	if cause != nil {
		details = details + ": " + cause.Error()
	}
	return &FetchError{Details: details, cause: cause}
}

// graphQLError is one entry of the "errors" array in a GraphQL response.
type graphQLError struct {
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Path    []string `json:"path"`
}

type graphQLErrors []graphQLError

func (e graphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return strings.Join(msgs, "; ")
}
