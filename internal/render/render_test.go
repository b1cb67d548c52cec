package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/project"
)

func sampleMeta() project.Metadata {
	return project.Metadata{
		Alias:       "example",
		Name:        "generate-example",
		PackageName: "generate-example",
		GitHosts:    []string{"github.com"},
		DefaultHost: "github.com",
		Author:      project.Author{Username: "alice", URL: "https://github.com/alice"},
		Main:        "index.js",
		Keywords:    []string{"generate", "npm"},
	}
}

func TestEncodeMetadata_JSON(t *testing.T) {
	data, err := EncodeMetadata(sampleMeta(), FormatJSON)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("}\n")))
	assert.Contains(t, string(data), "\n  \"packageName\": \"generate-example\",\n")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "homepage", "empty fields are omitted")
	assert.Equal(t, map[string]any{"username": "alice", "url": "https://github.com/alice"}, raw["author"])
}

func TestEncodeMetadata_JSONOmitsEmptyAuthor(t *testing.T) {
	data, err := EncodeMetadata(project.Metadata{Alias: "x"}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"alias": "x"}`, string(data))
}

func TestEncodeMetadata_YAML(t *testing.T) {
	data, err := EncodeMetadata(sampleMeta(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "author:\n  username: alice\n")
	assert.Contains(t, string(data), "keywords:\n  - generate\n  - npm\n")

	var back project.Metadata
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, sampleMeta(), back)
}

func TestEncodeMetadata_UnknownFormat(t *testing.T) {
	_, err := EncodeMetadata(sampleMeta(), "toml")
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}

func TestWriteCacheHuman(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCacheHuman(&buf, CacheHumanData{
		Path:        "/cache/swapgen/cache.json",
		Exists:      true,
		Prompted:    true,
		SessionID:   "abc",
		UpdatedAt:   "2026-01-10T12:00:00Z",
		PackageName: "generate-example",
		Files:       8,
		Keywords:    13,
	})
	require.NoError(t, err)
	assert.Equal(t, `=== cache ===
path: /cache/swapgen/cache.json
exists: yes
prompted: yes
session_id: abc
updated_at: 2026-01-10T12:00:00Z

=== data ===
package_name: generate-example
files: 8
keywords: 13
`, buf.String())
}

func TestWriteCacheHuman_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCacheHuman(&buf, CacheHumanData{Path: "/c/cache.json"}))
	assert.Equal(t, "=== cache ===\npath: /c/cache.json\nexists: no\nprompted: no\n", buf.String())
}
