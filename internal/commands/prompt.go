package commands

import (
	"context"
	stderrors "errors"

	"github.com/sirap-group/swapgen/internal/config"
	"github.com/sirap-group/swapgen/internal/derive"
	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/git"
	"github.com/sirap-group/swapgen/internal/lock"
	"github.com/sirap-group/swapgen/internal/pipeline"
	"github.com/sirap-group/swapgen/internal/project"
	"github.com/sirap-group/swapgen/internal/prompt"
	"github.com/sirap-group/swapgen/internal/question"
	"github.com/sirap-group/swapgen/internal/render"
)

// PromptOpts holds options for the prompt command.
type PromptOpts struct {
	// Config is the validated configuration with flag overrides applied.
	Config config.Config

	// AnswersPath reads answers from a YAML file instead of the terminal.
	AnswersPath string

	// Yes accepts every default without asking. The git host question,
	// whose default selects nothing, takes the first host offered.
	Yes bool

	// OutPath writes the metadata to a file instead of stdout.
	OutPath string
}

// Prompt implements the `swapgen prompt` command.
// Runs the prompt pipeline, writes the collected metadata and merges it
// into the cache data. The cache directory is locked for the whole run.
func Prompt(ctx context.Context, env Env, opts PromptOpts) error {
	log := env.log()
	st := env.store()

	unlock, err := lock.New(env.Dirs.CacheDir).Lock("swapgen prompt")
	if err != nil {
		var locked *lock.ErrLocked
		if stderrors.As(err, &locked) {
			return errors.Wrap(errors.ELocked, "another swapgen prompt is running", err)
		}
		return errors.Wrap(errors.EPersistFailed, "failed to lock cache directory", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Warn("failed to release cache lock", "error", err)
		}
	}()

	transport, err := newTransport(env, opts)
	if err != nil {
		return err
	}
	log.Debug("prompt transport selected", "transport", describeTransport(transport))

	gen := pipeline.GeneratorFunc(func(ctx context.Context, meta project.Metadata) error {
		return writeOutput(env, opts, meta)
	})

	p := pipeline.NewPipeline(pipeline.Deps{
		Transport: transport,
		Cache:     st,
		Notifier:  log,
		Observer:  answerLogger(env),
		Generator: gen,
		Sink:      st,
		GitUser: func(ctx context.Context) string {
			if env.Runner == nil {
				return ""
			}
			return git.UserName(ctx, env.Runner)
		},
	}, pipeline.Options{
		Prompt: opts.Config.Prompt,
		Silent: opts.Config.Silent,
	})

	s, err := p.Run(ctx)
	if s != nil {
		log.Debug("prompt session finished", "session_id", s.ID, "state", s.State.String())
	}
	return err
}

func newTransport(env Env, opts PromptOpts) (prompt.Transport, error) {
	switch {
	case opts.AnswersPath != "":
		answers, err := prompt.LoadAnswers(env.FS, opts.AnswersPath)
		if err != nil {
			return nil, err
		}
		return prompt.NewScriptedTransport(answers), nil
	case opts.Yes:
		return prompt.NewScriptedTransport(yesAnswers()), nil
	default:
		// prompts go to stderr so stdout only carries the metadata
		return prompt.NewTerminalTransport(env.Stdin, env.Stderr), nil
	}
}

// yesAnswers holds the answers --yes gives on top of the question defaults.
// An empty host selection cannot complete, so the first host is chosen.
func yesAnswers() map[string]question.Answer {
	return map[string]question.Answer{
		"githosts": question.List(derive.GitHosts()[0]),
	}
}

func describeTransport(t prompt.Transport) string {
	if s, ok := t.(*prompt.ScriptedTransport); ok {
		return s.String()
	}
	return "terminal"
}

// answerLogger logs every resolved answer at debug level.
func answerLogger(env Env) prompt.Observer {
	log := env.log()
	return prompt.ObserverFunc(func(ev prompt.Event) {
		log.Debug("answer", "key", ev.Key, "value", ev.Answer.String(), "answered", len(ev.Answers))
	})
}

func writeOutput(env Env, opts PromptOpts, meta project.Metadata) error {
	data, err := render.EncodeMetadata(meta, opts.Config.Format)
	if err != nil {
		return err
	}

	if opts.OutPath == "" {
		_, err := env.Stdout.Write(data)
		return err
	}

	if err := fs.WriteFileMkdir(env.FS, opts.OutPath, data, 0644); err != nil {
		return err
	}
	env.log().Info("project metadata written", "path", opts.OutPath)
	return nil
}
