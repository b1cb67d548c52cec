// Package project defines the project metadata collected by the prompt pipeline.
package project

import (
	"strings"

	"dario.cat/mergo"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/question"
)

// Author describes the package author.
type Author struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
}

// Metadata is the accumulated project metadata.
// Fields are only ever added or overwritten, never cleared.
type Metadata struct {
	Alias       string   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	PackageName string   `json:"packageName,omitempty" yaml:"packageName,omitempty"`
	Dest        string   `json:"dest,omitempty" yaml:"dest,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	GitHosts    []string `json:"githosts,omitempty" yaml:"githosts,omitempty"`
	DefaultHost string   `json:"defaultHost,omitempty" yaml:"defaultHost,omitempty"`
	Author      Author   `json:"author,omitzero" yaml:"author,omitempty"`
	Owner       string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Namespace   string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Homepage    string   `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Issues      string   `json:"issues,omitempty" yaml:"issues,omitempty"`
	Repository  string   `json:"repository,omitempty" yaml:"repository,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	License     string   `json:"license,omitempty" yaml:"license,omitempty"`
	Main        string   `json:"main,omitempty" yaml:"main,omitempty"`
	Files       []string `json:"files,omitempty" yaml:"files,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Sink receives partial metadata and deep-merges it into a longer-lived store.
type Sink interface {
	Merge(partial Metadata) error
}

// Merge deep-merges partial into m. Non-empty fields of partial overwrite
// those of m; empty fields leave m unchanged. Lists are replaced, not joined.
func (m *Metadata) Merge(partial Metadata) error {
	if err := mergo.Merge(m, partial, mergo.WithOverride); err != nil {
		return errors.Wrap(errors.EInternal, "failed to merge project metadata", err)
	}
	return nil
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() Metadata {
	c := *m
	c.GitHosts = cloneList(m.GitHosts)
	c.Files = cloneList(m.Files)
	c.Keywords = cloneList(m.Keywords)
	return c
}

func cloneList(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// Set stores answer at the dotted path. The answer is stored as given, empty
// values included. Returns E_UNKNOWN_FIELD for paths that are not metadata fields.
func (m *Metadata) Set(path string, answer question.Answer) error {
	if list := m.listField(path); list != nil {
		*list = cloneList(answer.List)
		if answer.List == nil && answer.Text != "" {
			*list = []string{answer.Text}
		}
		return nil
	}
	field := m.textField(path)
	if field == nil {
		return errors.NewWithDetails(errors.EUnknownField, "unknown metadata field "+path,
			map[string]string{"field": path})
	}
	*field = answer.String()
	return nil
}

// Value implements question.Values. Lists are joined with ",".
func (m *Metadata) Value(path string) string {
	if list := m.listField(path); list != nil {
		return strings.Join(*list, ",")
	}
	if field := m.textField(path); field != nil {
		return *field
	}
	return ""
}

func (m *Metadata) listField(path string) *[]string {
	switch path {
	case "githosts":
		return &m.GitHosts
	case "files":
		return &m.Files
	case "keywords":
		return &m.Keywords
	}
	return nil
}

func (m *Metadata) textField(path string) *string {
	switch path {
	case "alias":
		return &m.Alias
	case "name":
		return &m.Name
	case "packageName":
		return &m.PackageName
	case "dest":
		return &m.Dest
	case "description":
		return &m.Description
	case "defaultHost":
		return &m.DefaultHost
	case "author.username":
		return &m.Author.Username
	case "author.name":
		return &m.Author.Name
	case "author.url":
		return &m.Author.URL
	case "author.twitter":
		return &m.Author.Twitter
	case "owner":
		return &m.Owner
	case "namespace":
		return &m.Namespace
	case "homepage":
		return &m.Homepage
	case "issues":
		return &m.Issues
	case "repository":
		return &m.Repository
	case "version":
		return &m.Version
	case "license":
		return &m.License
	case "main":
		return &m.Main
	}
	return nil
}
