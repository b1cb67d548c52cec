package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sirap-group/swapgen/internal/config"
	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/exec"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/lock"
	"github.com/sirap-group/swapgen/internal/paths"
	"github.com/sirap-group/swapgen/internal/project"
	"github.com/sirap-group/swapgen/internal/store"
)

// stubRunner answers `git config --get user.name`.
type stubRunner struct {
	userName string
}

func (s stubRunner) Run(_ context.Context, name string, args []string, _ exec.Opts) (exec.Result, error) {
	if name == "git" && strings.Join(args, " ") == "config --get user.name" && s.userName != "" {
		return exec.Result{Stdout: s.userName + "\n"}, nil
	}
	return exec.Result{ExitCode: 1}, nil
}

type testEnv struct {
	Env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	root   string
}

func newTestEnv(t *testing.T, stdin string) *testEnv {
	t.Helper()
	root := t.TempDir()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Env: Env{
			FS:     fs.NewRealFS(),
			Runner: stubRunner{userName: "Alice Doe"},
			Dirs: paths.Dirs{
				ConfigDir: filepath.Join(root, "config"),
				CacheDir:  filepath.Join(root, "cache"),
			},
			Now:    func() time.Time { return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC) },
			Stdin:  strings.NewReader(stdin),
			Stdout: stdout,
			Stderr: stderr,
		},
		stdout: stdout,
		stderr: stderr,
		root:   root,
	}
}

func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (e *testEnv) cache(t *testing.T) store.Cache {
	t.Helper()
	c, err := e.store().LoadCache()
	require.NoError(t, err)
	return c
}

const answersYAML = `alias: example
githosts: [gitlab.sirap.fr]
author:
  username: alice
owner: sirap-group
additionnalFiles: "a.txt, , b.txt"
suggestedKeywords: [SWAP]
`

func TestPrompt_AnswersFileToStdout(t *testing.T) {
	env := newTestEnv(t, "")
	answers := env.writeFile(t, "answers.yaml", answersYAML)

	err := Prompt(context.Background(), env.Env, PromptOpts{Config: config.Default(), AnswersPath: answers})
	require.NoError(t, err)

	var meta project.Metadata
	require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &meta))
	assert.Equal(t, "generate-example", meta.PackageName)
	assert.Equal(t, "gitlab.sirap.fr", meta.DefaultHost)
	assert.Equal(t, "Alice Doe", meta.Author.Name, "author name defaults to git user.name")
	assert.Equal(t, "https://gitlab.sirap.fr/alice", meta.Author.URL)
	assert.Equal(t, "sirap-group", meta.Namespace)
	assert.Equal(t, "git@gitlab.sirap.fr:sirap-group/generate-example.git", meta.Repository)
	assert.Equal(t, "UNLICENSED", meta.License)
	assert.Len(t, meta.Files, 10)
	assert.Equal(t, []string{"a.txt", "b.txt"}, meta.Files[8:])
	assert.Len(t, meta.Keywords, 14)
	assert.Equal(t, "SWAP", meta.Keywords[13])

	c := env.cache(t)
	assert.True(t, c.Prompted)
	assert.NotEmpty(t, c.SessionID)
	assert.Equal(t, meta, c.Data, "completed metadata is merged into the cache")

	_, err = os.Stat(filepath.Join(env.Dirs.CacheDir, lock.FileName))
	assert.True(t, os.IsNotExist(err), "lock is released")
}

func TestPrompt_OutFileYAML(t *testing.T) {
	env := newTestEnv(t, "")
	answers := env.writeFile(t, "answers.yaml", answersYAML)
	out := filepath.Join(env.root, "out", "project.yaml")

	cfg := config.Default()
	cfg.Format = config.FormatYAML
	err := Prompt(context.Background(), env.Env, PromptOpts{Config: cfg, AnswersPath: answers, OutPath: out})
	require.NoError(t, err)
	assert.Empty(t, env.stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var meta project.Metadata
	require.NoError(t, yaml.Unmarshal(data, &meta))
	assert.Equal(t, "generate-example", meta.Name)
}

func TestPrompt_YesAcceptsDefaults(t *testing.T) {
	env := newTestEnv(t, "")

	err := Prompt(context.Background(), env.Env, PromptOpts{Config: config.Default(), Yes: true})
	require.NoError(t, err)

	var meta project.Metadata
	require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &meta))
	assert.Equal(t, "generator-example", meta.Alias)
	assert.Equal(t, "generate-generator-example", meta.PackageName)
	assert.Equal(t, []string{"github.com"}, meta.GitHosts, "first host offered")
	assert.Equal(t, "github.com", meta.DefaultHost)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, "0.1.0", meta.Version)
	assert.Equal(t, "Alice Doe", meta.Author.Name)
	assert.Len(t, meta.Files, 8)
	assert.Len(t, meta.Keywords, 13)

	c := env.cache(t)
	assert.True(t, c.Prompted)
	assert.Equal(t, meta, c.Data)
}

func TestPrompt_Terminal(t *testing.T) {
	lines := []string{
		"example",          // alias
		"", "", "",         // name, dest, description
		"1",                // githosts
		"alice",            // author.username
		"",                 // author.name
		"", "", "", "",     // author.url, author.twitter, owner, namespace
		"", "", "", "", "", // homepage, issues, repository, version, license
		"a.txt",            // additionnalFiles
		"", "",             // suggestedKeywords, additionnalKeywords
	}
	env := newTestEnv(t, strings.Join(lines, "\n")+"\n")

	err := Prompt(context.Background(), env.Env, PromptOpts{Config: config.Default()})
	require.NoError(t, err)

	var meta project.Metadata
	require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &meta))
	assert.Equal(t, []string{"github.com"}, meta.GitHosts)
	assert.Equal(t, "Alice Doe", meta.Author.Name)
	assert.Equal(t, "https://github.com/alice/generate-example", meta.Homepage)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, "a.txt", meta.Files[len(meta.Files)-1])

	assert.Contains(t, env.stderr.String(), "? Generator alias ? (generator-example) ")
	assert.Contains(t, env.stderr.String(), "  1) github.com\n")
}

func TestPrompt_TerminalClosedInput(t *testing.T) {
	env := newTestEnv(t, "example\n")

	err := Prompt(context.Background(), env.Env, PromptOpts{Config: config.Default()})
	se, ok := errors.AsSwapError(err)
	require.True(t, ok)
	assert.Equal(t, errors.EPromptFailed, se.Code)
	assert.Equal(t, "descriptors", se.Details["stage"])
	assert.Equal(t, "name", se.Details["key"])
}

func TestPrompt_NoPromptReusesCache(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, env.store().Merge(project.Metadata{Alias: "cached", PackageName: "generate-cached"}))

	cfg := config.Default()
	cfg.Prompt = false
	err := Prompt(context.Background(), env.Env, PromptOpts{Config: cfg})
	require.NoError(t, err)

	assert.JSONEq(t, `{"alias": "cached", "packageName": "generate-cached"}`, env.stdout.String())
	assert.True(t, env.cache(t).Prompted)
}

func TestPrompt_Locked(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, os.MkdirAll(env.Dirs.CacheDir, 0755))
	info, err := json.Marshal(lock.Info{PID: os.Getpid(), CreatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(env.Dirs.CacheDir, lock.FileName), info, 0600))

	err = Prompt(context.Background(), env.Env, PromptOpts{Config: config.Default(), Yes: true})
	require.Error(t, err)
	assert.Equal(t, errors.ELocked, errors.GetCode(err))
}

func TestPrompt_MissingAnswersFile(t *testing.T) {
	env := newTestEnv(t, "")
	err := Prompt(context.Background(), env.Env, PromptOpts{
		Config:      config.Default(),
		AnswersPath: filepath.Join(env.root, "nope.yaml"),
	})
	assert.Equal(t, errors.EInvalidAnswers, errors.GetCode(err))
}

func TestInit(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, Init(env.Env, InitOpts{}))
	path := env.Dirs.ConfigFile()
	assert.Equal(t, "config_path: "+path+"\nconfig: created\n", env.stdout.String())

	cfg, err := config.Load(env.FS, path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	err = Init(env.Env, InitOpts{})
	require.Error(t, err)
	assert.Equal(t, errors.EConfigExists, errors.GetCode(err))

	env.stdout.Reset()
	answers := filepath.Join(env.root, "answers.yaml")
	require.NoError(t, Init(env.Env, InitOpts{Force: true, AnswersPath: answers}))
	assert.Contains(t, env.stdout.String(), "config: overwritten\n")
	assert.Contains(t, env.stdout.String(), "answers: created\n")

	_, err = os.Stat(answers)
	assert.NoError(t, err)
}

func TestInit_CustomPath(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(env.root, "elsewhere", "swapgen.yaml")

	require.NoError(t, Init(env.Env, InitOpts{ConfigPath: path}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestCache(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, Cache(env.Env))
	assert.Contains(t, env.stdout.String(), "exists: no\nprompted: no\n")

	st := env.store()
	require.NoError(t, st.SetPrompted("session-1"))
	require.NoError(t, st.Merge(project.Metadata{PackageName: "generate-example", Keywords: []string{"npm"}}))

	env.stdout.Reset()
	require.NoError(t, Cache(env.Env))
	out := env.stdout.String()
	assert.Contains(t, out, "path: "+st.CachePath()+"\n")
	assert.Contains(t, out, "exists: yes\nprompted: yes\nsession_id: session-1\nupdated_at: 2026-01-10T12:00:00Z\n")
	assert.Contains(t, out, "package_name: generate-example\n")
	assert.Contains(t, out, "keywords: 1\n")
}

func TestCache_Corrupt(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, os.MkdirAll(env.Dirs.CacheDir, 0755))
	require.NoError(t, os.WriteFile(env.store().CachePath(), []byte("{"), 0644))

	err := Cache(env.Env)
	assert.Equal(t, errors.EStoreCorrupt, errors.GetCode(err))
}
