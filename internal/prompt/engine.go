// Package prompt asks registered questions through an answer transport.
package prompt

import (
	"context"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/question"
)

// Question is one question as presented to a transport.
type Question struct {
	Spec question.Spec

	// Default is the resolved default for this ask.
	Default string
}

// Transport obtains the answer to one question from an external actor
// (a terminal, an answers file, a test script). Ask blocks until the actor
// answers or fails.
type Transport interface {
	Ask(ctx context.Context, q Question) (question.Answer, error)
}

// Event describes one resolved question.
type Event struct {
	Answer  question.Answer
	Key     string
	Spec    question.Spec
	Answers question.AnswerSet // answers so far in the same ask, this one included
}

// Observer is notified once per resolved question.
type Observer interface {
	OnAnswer(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// OnAnswer calls f(ev).
func (f ObserverFunc) OnAnswer(ev Event) { f(ev) }

// Engine asks registered questions in order through a Transport.
type Engine struct {
	registry  *question.Registry
	transport Transport
	state     question.Values
	observer  Observer
}

// NewEngine creates an engine reading specs from registry and computing
// defaults against state. state may be nil.
func NewEngine(registry *question.Registry, transport Transport, state question.Values) *Engine {
	return &Engine{
		registry:  registry,
		transport: transport,
		state:     state,
	}
}

// SetObserver installs an observer. A nil observer disables notifications.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Ask resolves every key in order and returns their answers.
//
// Behavior:
//   - default functions see answers given earlier in the same ask first,
//     then the engine state
//   - fails as a whole: no AnswerSet is returned if any key fails
//   - transport failures are wrapped as E_PROMPT_FAILED with the key in details
//   - unregistered keys fail with E_UNKNOWN_QUESTION before the transport is used
//   - multi-select answers are always lists; a text answer selects one item
func (e *Engine) Ask(ctx context.Context, keys ...string) (question.AnswerSet, error) {
	specs := make([]question.Spec, 0, len(keys))
	for _, key := range keys {
		spec, err := e.registry.Lookup(key)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	answers := make(question.AnswerSet, len(keys))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, promptError(spec.Key, err)
		}

		q := Question{
			Spec:    spec,
			Default: spec.ResolveDefault(layered{answers: answers, state: e.state}),
		}
		answer, err := e.transport.Ask(ctx, q)
		if err != nil {
			return nil, promptError(spec.Key, err)
		}
		if spec.IsMultiChoice() {
			answer = asSelection(answer)
		}
		answers[spec.Key] = answer

		if e.observer != nil {
			e.observer.OnAnswer(Event{
				Answer:  answer,
				Key:     spec.Key,
				Spec:    spec,
				Answers: answers.Clone(),
			})
		}
	}
	return answers, nil
}

// AskOne asks a single key and returns its answer.
func (e *Engine) AskOne(ctx context.Context, key string) (question.Answer, error) {
	answers, err := e.Ask(ctx, key)
	if err != nil {
		return question.Answer{}, err
	}
	return answers[key], nil
}

// asSelection turns a text answer to a multi-select question into a
// one-item selection. Empty text selects nothing.
func asSelection(a question.Answer) question.Answer {
	if a.IsList() {
		return a
	}
	if a.Text == "" {
		return question.List()
	}
	return question.List(a.Text)
}

func promptError(key string, err error) error {
	if _, ok := errors.AsSwapError(err); ok && errors.GetCode(err) == errors.EPromptFailed {
		return err
	}
	return errors.WrapWithDetails(errors.EPromptFailed, "failed to get an answer for "+key, err,
		map[string]string{"key": key})
}

// layered resolves keys against the current answers, then the engine state.
type layered struct {
	answers question.AnswerSet
	state   question.Values
}

func (l layered) Value(key string) string {
	if _, ok := l.answers[key]; ok {
		return l.answers.Value(key)
	}
	if l.state == nil {
		return ""
	}
	return l.state.Value(key)
}
