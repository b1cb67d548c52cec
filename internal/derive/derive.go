// Package derive computes default values and derived fields from answers
// already collected. Every function here is pure.
package derive

import (
	"strings"

	"github.com/sirap-group/swapgen/internal/errors"
)

// Host names offered by the git host question.
const (
	HostGitHub       = "github.com"
	HostGitLabSirap  = "gitlab.sirap.fr"
	HostGitLab       = "gitlab.com"
	packageNameStart = "generate-"
)

// DefaultAlias is the default generator alias.
const DefaultAlias = "generator-example"

// DefaultVersion is the default package version.
const DefaultVersion = "0.1.0"

// MainFile is the fixed package entry point.
const MainFile = "index.js"

// GitHosts returns the git host choices in display order.
func GitHosts() []string {
	return []string{HostGitHub, HostGitLabSirap, HostGitLab}
}

// BaselineFiles returns the files every generator package ships.
// A fresh slice is returned on every call.
func BaselineFiles() []string {
	return []string{
		"generator.js",
		"index.js",
		"LICENSE",
		"README.md",
		"dist/",
		"templates",
		"package.json",
		"yarn.lock",
	}
}

// RequiredKeywords returns the keywords every generator package carries.
// A fresh slice is returned on every call.
func RequiredKeywords() []string {
	return []string{
		"generate",
		"Generator",
		"generategenerator",
		"Generate Generator",
		"Node",
		"NodeJS",
		"ESNext",
		"Standard",
		"StandardJS",
		"Babel",
		"BabelJS",
		"npm",
		"yarn",
	}
}

// SuggestedKeywords returns the optional keyword choices.
func SuggestedKeywords() []string {
	return []string{
		"SWAP",
		"SWAP App",
		"SWAP Generator",
		"swap-project",
		"SWAP Project",
		"sirap",
		"sirap-group",
	}
}

// PackageName derives the package name from a generator alias.
// The alias is used as-is; no characters are removed or rewritten.
func PackageName(alias string) string {
	return packageNameStart + alias
}

// Description derives the default package description.
func Description(name string) string {
	return name + " SWAP Generator"
}

// DefaultHost picks the host used for every host-dependent default.
//   - more than one host selected: github.com
//   - exactly one host selected: that host
//   - no host selected: E_NO_GIT_HOST
func DefaultHost(hosts []string) (string, error) {
	switch {
	case len(hosts) > 1:
		return HostGitHub, nil
	case len(hosts) == 1:
		return hosts[0], nil
	default:
		return "", errors.New(errors.ENoGitHost, "at least one git host platform must be selected")
	}
}

// isGitHub is the only host distinction the URL templates make.
// gitlab.com and gitlab.sirap.fr both take the fallback template.
func isGitHub(host string) bool {
	return host == HostGitHub
}

// webHost returns the host used in http URLs and git remotes.
func webHost(host string) string {
	if isGitHub(host) {
		return HostGitHub
	}
	return HostGitLabSirap
}

// AuthorURL derives the author profile URL.
func AuthorURL(host, username string) string {
	return "https://" + webHost(host) + "/" + username
}

// TwitterURL derives the author twitter URL.
func TwitterURL(username string) string {
	return "https://twitter.com/" + username
}

// Homepage derives the project homepage.
func Homepage(host, namespace, name string) string {
	return "https://" + webHost(host) + "/" + namespace + "/" + name
}

// IssuesURL derives the issue tracker URL.
func IssuesURL(host, namespace, name string) string {
	return Homepage(host, namespace, name) + "/issues"
}

// RepositoryURL derives the ssh git remote.
func RepositoryURL(host, namespace, name string) string {
	return "git@" + webHost(host) + ":" + namespace + "/" + name + ".git"
}

// License derives the default license identifier.
func License(host string) string {
	if isGitHub(host) {
		return "MIT"
	}
	return "UNLICENSED"
}

// SplitList splits comma separated free text into trimmed, non-empty tokens.
func SplitList(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(text, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AppendList appends the trimmed, non-empty items to list.
// Duplicates are kept and case is preserved.
func AppendList(list []string, items ...string) []string {
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			list = append(list, s)
		}
	}
	return list
}
