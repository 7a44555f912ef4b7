package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_String(t *testing.T) {
	id := Identity{Owner: "dod-ccpo", Name: "atst"}
	assert.Equal(t, "dod-ccpo/atst", id.String())
}

func TestIdentity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      Identity
		wantErr string
	}{
		{name: "valid", id: Identity{Owner: "o", Name: "n"}},
		{name: "empty owner", id: Identity{Name: "n"}, wantErr: "repository owner cannot be empty"},
		{name: "empty name", id: Identity{Owner: "o"}, wantErr: "repository name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Identity
		wantErr bool
	}{
		{name: "owner and name", input: "dod-ccpo/atst", want: Identity{Owner: "dod-ccpo", Name: "atst"}},
		{name: "case preserved", input: "Dod-CCPO/ATST", want: Identity{Owner: "Dod-CCPO", Name: "ATST"}},
		{name: "surrounding whitespace", input: "  o/n ", want: Identity{Owner: "o", Name: "n"}},
		{name: "missing slash", input: "atst", wantErr: true},
		{name: "empty owner", input: "/atst", wantErr: true},
		{name: "empty name", input: "dod-ccpo/", wantErr: true},
		{name: "too many parts", input: "github.com/dod-ccpo/atst", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Identity
		wantErr bool
	}{
		{
			name: "ssh with .git",
			url:  "git@github.com:dod-ccpo/atst.git",
			want: Identity{Owner: "dod-ccpo", Name: "atst"},
		},
		{
			name: "https with .git",
			url:  "https://github.com/dod-ccpo/atst.git",
			want: Identity{Owner: "dod-ccpo", Name: "atst"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/dod-ccpo/atst",
			want: Identity{Owner: "dod-ccpo", Name: "atst"},
		},
		{
			name: "ssh url scheme",
			url:  "ssh://git@github.com/richard-dds/pears.git",
			want: Identity{Owner: "richard-dds", Name: "pears"},
		},
		{
			name: "name containing dots",
			url:  "git@github.com:owner/my.repo.git",
			want: Identity{Owner: "owner", Name: "my.repo"},
		},
		{
			name: "trailing newline from git output",
			url:  "git@github.com:owner/repo.git\n",
			want: Identity{Owner: "owner", Name: "repo"},
		},
		{
			name:    "non-github host",
			url:     "git@gitlab.com:owner/repo.git",
			wantErr: true,
		},
		{
			name:    "missing name",
			url:     "https://github.com/owner",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "could not parse repository")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
