package github

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []Label
	}{
		{name: "single", items: []Label{{Name: "bug"}}},
		{name: "order preserved", items: []Label{{Name: "c"}, {Name: "a"}, {Name: "b"}}},
		{name: "duplicates kept", items: []Label{{Name: "dup"}, {Name: "dup"}, {Name: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(NewConnection(tt.items...))
			require.NoError(t, err)
			assert.Equal(t, tt.items, got)
		})
	}
}

func TestFlatten_RoundTripThroughJSON(t *testing.T) {
	want := make([]Author, 25)
	for i := range want {
		want[i] = Author{Login: "user" + strconv.Itoa(i)}
	}

	data, err := json.Marshal(NewConnection(want...))
	require.NoError(t, err)

	var conn Connection[Author]
	require.NoError(t, json.Unmarshal(data, &conn))

	got, err := Flatten(conn)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFlatten_EmptyEdges(t *testing.T) {
	var conn Connection[Label]
	require.NoError(t, json.Unmarshal([]byte(`{"edges": []}`), &conn))

	got, err := Flatten(conn)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFlatten_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
	}{
		{name: "missing edges", input: `{}`, errContains: "edges: missing required field"},
		{name: "null edges", input: `{"edges": null}`, errContains: "edges: missing required field"},
		{name: "edge without node", input: `{"edges": [{"node": {"Name": "a"}}, {}]}`, errContains: "edges[1]: node: missing required field"},
		{name: "null node", input: `{"edges": [{"node": null}]}`, errContains: "edges[0]: node: missing required field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var conn Connection[Label]
			require.NoError(t, json.Unmarshal([]byte(tt.input), &conn))

			got, err := Flatten(conn)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.ErrorIs(t, err, errMissingField)
		})
	}
}

func TestFlattenInto_ConvertError(t *testing.T) {
	boom := errors.New("boom")
	conn := NewConnection(1, 2, 3)

	got, err := FlattenInto(conn, func(n int) (string, error) {
		if n == 2 {
			return "", boom
		}
		return strconv.Itoa(n), nil
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "edges[1]: node: boom", err.Error())
}

func TestFlattenInto_Converts(t *testing.T) {
	got, err := FlattenInto(NewConnection(3, 1, 2), func(n int) (string, error) {
		return strconv.Itoa(n * 10), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "10", "20"}, got)
}
