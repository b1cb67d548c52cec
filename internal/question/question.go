// Package question holds question definitions and the answers they produce.
//
// A Spec describes one question: the dotted key its answer is stored under, the
// message shown to the user, an optional default and an optional ordered list
// of choices. Specs with choices are multi-select questions and produce list
// answers; all other specs produce text answers.
package question

import "github.com/sirap-group/swapgen/internal/errors"

// Values resolves dotted keys to their current text value.
// Unknown or unset keys resolve to "".
type Values interface {
	Value(key string) string
}

// DefaultFunc computes a default from the values known when the question is asked.
type DefaultFunc func(v Values) string

// Spec is the registered description of a single question.
type Spec struct {
	// Key is the dotted path the answer is stored under (e.g. "author.url").
	Key string

	// Message is the prompt shown to the user.
	Message string

	// Default is the static default. Ignored when DefaultFunc is set.
	Default string

	// DefaultFunc computes the default at ask time.
	DefaultFunc DefaultFunc

	// Choices is the ordered list of allowed values for multi-select questions.
	Choices []string
}

// IsMultiChoice reports whether the question selects from Choices.
func (s Spec) IsMultiChoice() bool {
	return len(s.Choices) > 0
}

// ResolveDefault returns the default for this question given the current values.
func (s Spec) ResolveDefault(v Values) string {
	if s.DefaultFunc != nil {
		return s.DefaultFunc(v)
	}
	return s.Default
}

// Registry maps question keys to their current Spec.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register stores spec under its key, replacing any earlier spec with the same key.
// The choices slice is copied so later changes by the caller have no effect.
func (r *Registry) Register(spec Spec) {
	if spec.Choices != nil {
		spec.Choices = append([]string(nil), spec.Choices...)
	}
	r.specs[spec.Key] = spec
}

// Question registers a text question with a static default.
func (r *Registry) Question(key, message, def string) {
	r.Register(Spec{Key: key, Message: message, Default: def})
}

// QuestionFunc registers a text question whose default is computed at ask time.
func (r *Registry) QuestionFunc(key, message string, def DefaultFunc) {
	r.Register(Spec{Key: key, Message: message, DefaultFunc: def})
}

// Choices registers a multi-select question.
func (r *Registry) Choices(key, message string, choices ...string) {
	r.Register(Spec{Key: key, Message: message, Choices: choices})
}

// Lookup returns the spec registered under key.
// Returns E_UNKNOWN_QUESTION if nothing is registered under key.
func (r *Registry) Lookup(key string) (Spec, error) {
	spec, ok := r.specs[key]
	if !ok {
		return Spec{}, errors.NewWithDetails(errors.EUnknownQuestion, "no question registered for key "+key,
			map[string]string{"key": key})
	}
	return spec, nil
}
