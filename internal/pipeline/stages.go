package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirap-group/swapgen/internal/derive"
	"github.com/sirap-group/swapgen/internal/question"
)

// Answer keys that are not stored as-is in the metadata.
const (
	keyAdditionalFiles    = "additionnalFiles"
	keySuggestedKeywords  = "suggestedKeywords"
	keyAdditionalKeywords = "additionnalKeywords"
)

// identity asks the generator alias and derives the package name from it.
func (p *Pipeline) identity(ctx context.Context, s *Session) (State, error) {
	s.registry.Question("alias", "Generator alias ?", derive.DefaultAlias)

	alias, err := s.engine.AskOne(ctx, "alias")
	if err != nil {
		return StateFailed, err
	}

	name := derive.PackageName(alias.String())
	s.Meta.Alias = alias.String()
	s.Meta.Name = name
	s.Meta.PackageName = name

	p.notify(fmt.Sprintf("Required package name is %q (related to the generator alias)", name))
	return StageDescriptors, nil
}

// descriptors asks the package descriptors and picks the default host.
func (p *Pipeline) descriptors(ctx context.Context, s *Session) (State, error) {
	name := s.Meta.Name
	authorName := ""
	if p.deps.GitUser != nil {
		authorName = p.deps.GitUser(ctx)
	}

	r := s.registry
	r.Question("name", "Package name (You should keep the suggestion or the generator may be broken) ?", name)
	r.Question("dest", "Project directory ?", name)
	r.Question("description", "Description ?", derive.Description(name))
	r.Choices("githosts", "Git host platform ?", derive.GitHosts()...)
	r.Question("author.username", "Author username ?", "")
	r.Question("author.name", "Author name ?", authorName)

	keys := []string{"name", "dest", "description", "githosts", "author.username", "author.name"}
	answers, err := s.engine.Ask(ctx, keys...)
	if err != nil {
		return StateFailed, err
	}
	if err := mergeAnswers(s.Meta, answers, keys); err != nil {
		return StateFailed, err
	}

	host, err := derive.DefaultHost(s.Meta.GitHosts)
	if err != nil {
		return StateFailed, err
	}
	s.Meta.DefaultHost = host
	return StageAuthor, nil
}

// author asks the fields derived from the default host and author username.
func (p *Pipeline) author(ctx context.Context, s *Session) (State, error) {
	host := s.Meta.DefaultHost
	username := s.Meta.Author.Username

	r := s.registry
	r.Question("author.url", "Author URL ?", derive.AuthorURL(host, username))
	r.Question("author.twitter", "Twitter URL ?", derive.TwitterURL(username))
	r.QuestionFunc("owner", "Owner (author or organisation) ?", func(v question.Values) string {
		return v.Value("author.username")
	})
	r.QuestionFunc("namespace", "Project namespace ?", func(v question.Values) string {
		return v.Value("owner")
	})

	keys := []string{"author.url", "author.twitter", "owner", "namespace"}
	answers, err := s.engine.Ask(ctx, keys...)
	if err != nil {
		return StateFailed, err
	}
	if err := mergeAnswers(s.Meta, answers, keys); err != nil {
		return StateFailed, err
	}
	return StageRepository, nil
}

// repository asks the repository descriptors keyed off host and namespace.
func (p *Pipeline) repository(ctx context.Context, s *Session) (State, error) {
	host := s.Meta.DefaultHost
	ns := s.Meta.Namespace
	name := s.Meta.PackageName

	r := s.registry
	r.Question("homepage", "Project homepage ?", derive.Homepage(host, ns, name))
	r.Question("issues", "Issues URL ?", derive.IssuesURL(host, ns, name))
	r.Question("repository", "Repository URL ?", derive.RepositoryURL(host, ns, name))
	r.Question("version", "Version ?", derive.DefaultVersion)
	r.Question("license", "License ?", derive.License(host))

	keys := []string{"homepage", "issues", "repository", "version", "license"}
	answers, err := s.engine.Ask(ctx, keys...)
	if err != nil {
		return StateFailed, err
	}
	if err := mergeAnswers(s.Meta, answers, keys); err != nil {
		return StateFailed, err
	}
	return StageFiles, nil
}

// files fixes the main file and builds the packaged file list.
func (p *Pipeline) files(ctx context.Context, s *Session) (State, error) {
	s.Meta.Main = derive.MainFile
	p.notify(fmt.Sprintf("Required package main file is %q.", derive.MainFile))

	files := derive.BaselineFiles()
	p.notify("Required packaged files are the following: " + strings.Join(files, ","))

	s.registry.Question(keyAdditionalFiles, "Additionnal files (comma separated) ?", "")
	extra, err := s.engine.AskOne(ctx, keyAdditionalFiles)
	if err != nil {
		return StateFailed, err
	}

	s.Meta.Files = derive.AppendList(files, derive.SplitList(extra.String())...)
	return StageKeywords, nil
}

// keywords builds the keyword list from the required, suggested and free
// text keywords.
func (p *Pipeline) keywords(ctx context.Context, s *Session) (State, error) {
	keywords := derive.RequiredKeywords()
	p.announce("The required preset keywords are the following: " + strings.Join(keywords, ","))

	s.registry.Choices(keySuggestedKeywords, "Suggested additionnal keywords ?", derive.SuggestedKeywords()...)
	s.registry.Question(keyAdditionalKeywords, "Additionnal keywords (comma separated) ?", "")

	answers, err := s.engine.Ask(ctx, keySuggestedKeywords, keyAdditionalKeywords)
	if err != nil {
		return StateFailed, err
	}

	keywords = derive.AppendList(keywords, answers.List(keySuggestedKeywords)...)
	keywords = derive.AppendList(keywords, derive.SplitList(answers.Value(keyAdditionalKeywords))...)
	s.Meta.Keywords = keywords
	return StateComplete, nil
}
