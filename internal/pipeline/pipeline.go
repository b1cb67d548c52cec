// Package pipeline runs the six prompt stages that collect SWAP generator
// project metadata. Stages execute in a fixed order, each one only after
// the previous stage merged its answers; the first error ends the run.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/project"
	"github.com/sirap-group/swapgen/internal/prompt"
	"github.com/sirap-group/swapgen/internal/question"
)

// Options are the configuration flags the pipeline honors.
type Options struct {
	// Prompt enables the six stages. When false the run only bootstraps
	// from the cache and completes.
	Prompt bool

	// Silent suppresses the informational notices that follow the name and
	// main-file derivations. It does not change collected data.
	Silent bool
}

// Cache is the cached data and bookkeeping store.
type Cache interface {
	// LoadData returns project data merged by earlier runs.
	LoadData() (project.Metadata, error)
	// SetPrompted records that a session started. Nothing reads it back.
	SetPrompted(sessionID string) error
}

// Notifier receives informational notices.
type Notifier interface {
	Success(msg string, keysAndValues ...interface{})
}

// Generator consumes the completed metadata.
type Generator interface {
	Generate(ctx context.Context, meta project.Metadata) error
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, meta project.Metadata) error

// Generate calls f(ctx, meta).
func (f GeneratorFunc) Generate(ctx context.Context, meta project.Metadata) error {
	return f(ctx, meta)
}

// Deps are the pipeline collaborators. Only Transport is required.
type Deps struct {
	Transport prompt.Transport
	Cache     Cache
	Notifier  Notifier
	Observer  prompt.Observer
	Generator Generator

	// Sink receives the completed metadata after the generator succeeded.
	Sink project.Sink

	// GitUser returns the default author name, "" when unknown.
	GitUser func(ctx context.Context) string
}

// Session is the state of one pipeline run. Meta is owned by the session
// and only written by stage transitions.
type Session struct {
	ID    string
	Meta  *project.Metadata
	State State
	Err   error

	registry *question.Registry
	engine   *prompt.Engine
}

// Pipeline drives a Session through the stage state machine.
type Pipeline struct {
	deps   Deps
	opts   Options
	idFunc func() string
}

// NewPipeline creates a pipeline with the given collaborators and options.
func NewPipeline(deps Deps, opts Options) *Pipeline {
	return &Pipeline{
		deps:   deps,
		opts:   opts,
		idFunc: uuid.NewString,
	}
}

// SetIDFunc overrides the session id source for testing.
func (p *Pipeline) SetIDFunc(fn func() string) {
	p.idFunc = fn
}

// NewSession creates a session in StateBootstrap with empty metadata.
func (p *Pipeline) NewSession() *Session {
	meta := &project.Metadata{}
	registry := question.NewRegistry()
	engine := prompt.NewEngine(registry, p.deps.Transport, meta)
	if p.deps.Observer != nil {
		engine.SetObserver(p.deps.Observer)
	}
	return &Session{
		ID:       p.idFunc(),
		Meta:     meta,
		State:    StateBootstrap,
		registry: registry,
		engine:   engine,
	}
}

// Run creates a session and steps it until a terminal state, then hands
// the metadata to the generator and the sink on success.
//
// Behavior:
//   - the session is returned even on error; its Meta holds every field
//     merged by the stages that completed
//   - *SwapError codes are preserved; E_PROMPT_FAILED gains details["stage"]
//   - other errors are wrapped as E_INTERNAL with details["stage"]
//   - generator failures are wrapped as E_GENERATE_FAILED; the sink is
//     then not called
//   - sink failures keep their code, or become E_PERSIST_FAILED
func (p *Pipeline) Run(ctx context.Context) (*Session, error) {
	s := p.NewSession()

	for !s.State.Terminal() {
		current := s.State
		next, err := p.Step(ctx, s)
		if err != nil {
			s.State = StateFailed
			s.Err = wrapStageError(err, current)
			return s, s.Err
		}
		s.State = next
	}

	if p.deps.Generator != nil {
		if err := p.deps.Generator.Generate(ctx, s.Meta.Clone()); err != nil {
			s.State = StateFailed
			s.Err = errors.Wrap(errors.EGenerateFailed, "failed to generate project", err)
			return s, s.Err
		}
	}
	if p.deps.Sink != nil {
		if err := p.deps.Sink.Merge(s.Meta.Clone()); err != nil {
			if _, ok := errors.AsSwapError(err); !ok {
				err = errors.Wrap(errors.EPersistFailed, "failed to store project data", err)
			}
			s.State = StateFailed
			s.Err = err
			return s, s.Err
		}
	}
	return s, nil
}

// Step executes the transition out of s.State and returns the next state.
// s.Meta is updated in place; s.State is left to the caller.
func (p *Pipeline) Step(ctx context.Context, s *Session) (State, error) {
	switch s.State {
	case StateBootstrap:
		return p.bootstrap(s)
	case StageIdentity:
		return p.identity(ctx, s)
	case StageDescriptors:
		return p.descriptors(ctx, s)
	case StageAuthor:
		return p.author(ctx, s)
	case StageRepository:
		return p.repository(ctx, s)
	case StageFiles:
		return p.files(ctx, s)
	case StageKeywords:
		return p.keywords(ctx, s)
	default:
		return s.State, errors.New(errors.EInternal, "no transition from state "+s.State.String())
	}
}

// bootstrap pre-seeds the metadata with cached data and records the
// prompted flag.
func (p *Pipeline) bootstrap(s *Session) (State, error) {
	if p.deps.Cache != nil {
		cached, err := p.deps.Cache.LoadData()
		if err != nil {
			return StateFailed, err
		}
		if err := s.Meta.Merge(cached); err != nil {
			return StateFailed, err
		}
		if err := p.deps.Cache.SetPrompted(s.ID); err != nil {
			return StateFailed, err
		}
	}

	if !p.opts.Prompt {
		return StatePromptDisabled, nil
	}
	return StageIdentity, nil
}

func (p *Pipeline) notify(msg string) {
	if p.opts.Silent {
		return
	}
	p.announce(msg)
}

// announce emits a notice regardless of Silent.
func (p *Pipeline) announce(msg string) {
	if p.deps.Notifier != nil {
		p.deps.Notifier.Success(msg)
	}
}

// mergeAnswers stores answers for keys into meta in key order.
func mergeAnswers(meta *project.Metadata, answers question.AnswerSet, keys []string) error {
	for _, key := range keys {
		if err := meta.Set(key, answers[key]); err != nil {
			return err
		}
	}
	return nil
}

// wrapStageError ensures the error is a *SwapError.
// E_PROMPT_FAILED errors gain the stage name; other coded errors are
// returned unchanged; everything else is wrapped as E_INTERNAL.
func wrapStageError(err error, state State) error {
	if err == nil {
		return nil
	}

	se, ok := errors.AsSwapError(err)
	if !ok {
		return errors.WrapWithDetails(
			errors.EInternal,
			"internal error",
			err,
			map[string]string{"stage": state.String()},
		)
	}
	if se.Code != errors.EPromptFailed {
		return err
	}

	details := map[string]string{"stage": state.String()}
	for k, v := range se.Details {
		details[k] = v
	}
	return errors.WrapWithDetails(se.Code, se.Msg, se.Cause, details)
}
