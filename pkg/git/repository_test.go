package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConflicts(t *testing.T) {
	tests := []struct {
		name      string
		porcelain string
		want      []string
	}{
		{
			"no conflicts",
			" M pkg/layout/state.go\n?? notes.txt\n",
			nil,
		},
		{
			"both modified",
			"UU pkg/app/app.go\n M go.mod\n",
			[]string{"pkg/app/app.go"},
		},
		{
			"mixed unmerged codes",
			"AA added.go\nDD deleted.go\nDU ours.go\n?? other.txt\n",
			[]string{"added.go", "deleted.go", "ours.go"},
		},
		{
			"empty output",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseConflicts(tt.porcelain))
		})
	}
}

func TestParseRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:acme/widgets.git", "widgets"},
		{"https://github.com/acme/widgets.git", "widgets"},
		{"https://github.com/acme/widgets", "widgets"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRepoNameFromURL(tt.url))
	}
}

func TestGetInfoOutsideRepository(t *testing.T) {
	info := GetInfo(t.TempDir())
	assert.False(t, info.IsRepository)
}
