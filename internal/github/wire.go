package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// field records whether a JSON key was present and whether it was null,
// which plain struct decoding cannot tell apart from a zero value.
type field[T any] struct {
	present bool
	null    bool
	value   T
}

func (f *field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

func (f field[T]) required() (T, error) {
	if !f.present || f.null {
		var zero T
		return zero, errMissingField
	}
	return f.value, nil
}

// optional returns nil for an explicit null. The key itself must be present.
func (f field[T]) optional() (*T, error) {
	if !f.present {
		return nil, errMissingField
	}
	if f.null {
		return nil, nil
	}
	v := f.value
	return &v, nil
}

type wireEnvelope struct {
	Data *struct {
		Repository field[wireRepository] `json:"repository"`
	} `json:"data"`
	Errors graphQLErrors `json:"errors"`
}

type wireRepository struct {
	Name         field[string]               `json:"name"`
	PullRequests Connection[wirePullRequest] `json:"pullRequests"`
}

type wireAuthor struct {
	Login field[string] `json:"login"`
}

type wireLabel struct {
	Name field[string] `json:"name"`
}

type wireComment struct {
	Author    field[wireAuthor] `json:"author"`
	BodyText  field[string]     `json:"bodyText"`
	CreatedAt field[time.Time]  `json:"createdAt"`
	UpdatedAt field[time.Time]  `json:"updatedAt"`
}

type wireReview struct {
	Author    field[wireAuthor]       `json:"author"`
	BodyText  field[string]           `json:"bodyText"`
	State     field[string]           `json:"state"`
	Comments  Connection[wireComment] `json:"comments"`
	CreatedAt field[time.Time]        `json:"createdAt"`
	UpdatedAt field[time.Time]        `json:"updatedAt"`
}

type wirePullRequest struct {
	ID        field[string]           `json:"id"`
	State     field[string]           `json:"state"`
	Title     field[string]           `json:"title"`
	Body      field[string]           `json:"body"`
	Number    field[int]              `json:"number"`
	URL       field[string]           `json:"url"`
	Mergeable field[string]           `json:"mergeable"`
	Author    field[wireAuthor]       `json:"author"`
	Labels    Connection[wireLabel]   `json:"labels"`
	Comments  Connection[wireComment] `json:"comments"`
	Reviews   Connection[wireReview]  `json:"reviews"`
	CreatedAt field[time.Time]        `json:"createdAt"`
	UpdatedAt field[time.Time]        `json:"updatedAt"`
	ClosedAt  field[time.Time]        `json:"closedAt"`
	MergedAt  field[time.Time]        `json:"mergedAt"`
}

// wireKeys maps the lowercased form of every key the wire types decode to its
// exact spelling.
var wireKeys = func() map[string]string {
	keys := []string{
		"data", "errors", "message", "type", "path",
		"repository", "name", "pullRequests", "edges", "node",
		"id", "state", "title", "body", "number", "url", "mergeable",
		"author", "login", "labels", "comments", "reviews", "bodyText",
		"createdAt", "updatedAt", "closedAt", "mergedAt",
	}
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = k
	}
	return m
}()

// checkKeyCase rejects object keys that differ from a known key only by case.
// encoding/json would otherwise accept "TITLE" as "title". Unknown keys are
// ignored. body must already be valid JSON.
func checkKeyCase(body []byte) error {
	type frame struct {
		object bool
		tokens int
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	var stack []frame
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}

		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				if len(stack) > 0 {
					stack[len(stack)-1].tokens++
				}
				stack = append(stack, frame{object: delim == '{'})
			default:
				stack = stack[:len(stack)-1]
			}
			continue
		}
		if len(stack) == 0 {
			continue
		}

		top := &stack[len(stack)-1]
		if key, ok := tok.(string); ok && top.object && top.tokens%2 == 0 {
			if want, known := wireKeys[strings.ToLower(key)]; known && want != key {
				return fmt.Errorf("key %q: want %q", key, want)
			}
		}
		top.tokens++
	}
}
