package pipeline

// State is a position in the prompt state machine.
type State int

// States in transition order. Failed can be entered from any non-terminal state.
const (
	StateBootstrap State = iota
	StatePromptDisabled
	StageIdentity
	StageDescriptors
	StageAuthor
	StageRepository
	StageFiles
	StageKeywords
	StateComplete
	StateFailed
)

var stateNames = map[State]string{
	StateBootstrap:      "bootstrap",
	StatePromptDisabled: "prompt_disabled",
	StageIdentity:       "identity",
	StageDescriptors:    "descriptors",
	StageAuthor:         "author",
	StageRepository:     "repository",
	StageFiles:          "files",
	StageKeywords:       "keywords",
	StateComplete:       "complete",
	StateFailed:         "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	switch s {
	case StatePromptDisabled, StateComplete, StateFailed:
		return true
	}
	return false
}

// Succeeded reports whether s is a terminal success state.
func (s State) Succeeded() bool {
	return s == StatePromptDisabled || s == StateComplete
}
