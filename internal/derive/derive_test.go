package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirap-group/swapgen/internal/errors"
)

func TestPackageName(t *testing.T) {
	assert.Equal(t, "generate-example", PackageName("example"))
	// no sanitization
	assert.Equal(t, "generate-My Alias!", PackageName("My Alias!"))
}

func TestDefaultHost(t *testing.T) {
	tests := []struct {
		name  string
		hosts []string
		want  string
	}{
		{"two hosts", []string{"github.com", "gitlab.com"}, "github.com"},
		{"two non github hosts", []string{"gitlab.sirap.fr", "gitlab.com"}, "github.com"},
		{"single sirap host", []string{"gitlab.sirap.fr"}, "gitlab.sirap.fr"},
		{"single gitlab host", []string{"gitlab.com"}, "gitlab.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultHost(tt.hosts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultHost_NoneSelected(t *testing.T) {
	_, err := DefaultHost(nil)
	require.Error(t, err)
	assert.Equal(t, errors.ENoGitHost, errors.GetCode(err))
}

func TestHostTemplates(t *testing.T) {
	tests := []struct {
		host       string
		authorURL  string
		homepage   string
		issues     string
		repository string
		license    string
	}{
		{
			host:       "github.com",
			authorURL:  "https://github.com/alice",
			homepage:   "https://github.com/acme/generate-example",
			issues:     "https://github.com/acme/generate-example/issues",
			repository: "git@github.com:acme/generate-example.git",
			license:    "MIT",
		},
		{
			host:       "gitlab.sirap.fr",
			authorURL:  "https://gitlab.sirap.fr/alice",
			homepage:   "https://gitlab.sirap.fr/acme/generate-example",
			issues:     "https://gitlab.sirap.fr/acme/generate-example/issues",
			repository: "git@gitlab.sirap.fr:acme/generate-example.git",
			license:    "UNLICENSED",
		},
		{
			// gitlab.com shares the fallback templates
			host:       "gitlab.com",
			authorURL:  "https://gitlab.sirap.fr/alice",
			homepage:   "https://gitlab.sirap.fr/acme/generate-example",
			issues:     "https://gitlab.sirap.fr/acme/generate-example/issues",
			repository: "git@gitlab.sirap.fr:acme/generate-example.git",
			license:    "UNLICENSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.authorURL, AuthorURL(tt.host, "alice"))
			assert.Equal(t, tt.homepage, Homepage(tt.host, "acme", "generate-example"))
			assert.Equal(t, tt.issues, IssuesURL(tt.host, "acme", "generate-example"))
			assert.Equal(t, tt.repository, RepositoryURL(tt.host, "acme", "generate-example"))
			assert.Equal(t, tt.license, License(tt.host))
			assert.Equal(t, "https://twitter.com/alice", TwitterURL("alice"))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.txt", "b.txt"}, SplitList(" a.txt, , b.txt "))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"One", "one"}, SplitList("One,one"))
}

func TestAppendList_KeepsDuplicates(t *testing.T) {
	got := AppendList([]string{"npm"}, "npm", " ", " sirap ")
	assert.Equal(t, []string{"npm", "npm", "sirap"}, got)
}

func TestFixedLists(t *testing.T) {
	assert.Len(t, RequiredKeywords(), 13)
	assert.Contains(t, BaselineFiles(), "package.json")
	assert.Equal(t, []string{"github.com", "gitlab.sirap.fr", "gitlab.com"}, GitHosts())

	// callers get their own copy
	files := BaselineFiles()
	files[0] = "changed"
	assert.Equal(t, "generator.js", BaselineFiles()[0])
}
