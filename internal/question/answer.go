package question

import "strings"

// Answer is the value resolved for one question.
// Text questions fill Text; multi-select questions fill List.
type Answer struct {
	Text string
	List []string
}

// Text returns a text answer.
func Text(s string) Answer {
	return Answer{Text: s}
}

// List returns a list answer. A nil list is normalized to an empty one.
func List(items ...string) Answer {
	if items == nil {
		items = []string{}
	}
	return Answer{List: items}
}

// IsList reports whether the answer came from a multi-select question.
func (a Answer) IsList() bool {
	return a.List != nil
}

// String renders the answer as text; lists are joined with ",".
func (a Answer) String() string {
	if a.IsList() {
		return strings.Join(a.List, ",")
	}
	return a.Text
}

// AnswerSet maps requested keys to the answers of one ask.
type AnswerSet map[string]Answer

// Text returns the text answer for key, or "" if absent.
func (s AnswerSet) Text(key string) string {
	return s[key].Text
}

// List returns the list answer for key, or nil if absent.
func (s AnswerSet) List(key string) []string {
	return s[key].List
}

// Value implements Values.
func (s AnswerSet) Value(key string) string {
	a, ok := s[key]
	if !ok {
		return ""
	}
	return a.String()
}

// Clone returns a shallow copy with copied list slices.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, a := range s {
		if a.List != nil {
			a.List = append([]string{}, a.List...)
		}
		out[k] = a
	}
	return out
}
