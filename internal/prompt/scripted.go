package prompt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/question"
)

// ScriptedTransport answers from a fixed map of keys to answers.
// Keys missing from the script take the question default (an empty
// selection for multi-select questions), or fail when Strict is set.
// A scripted text value for a multi-select question is returned as is;
// the Engine turns it into a one-item selection.
type ScriptedTransport struct {
	Answers map[string]question.Answer
	Strict  bool
}

// NewScriptedTransport creates a non-strict transport over answers.
func NewScriptedTransport(answers map[string]question.Answer) *ScriptedTransport {
	if answers == nil {
		answers = map[string]question.Answer{}
	}
	return &ScriptedTransport{Answers: answers}
}

// Ask implements Transport.
func (s *ScriptedTransport) Ask(ctx context.Context, q Question) (question.Answer, error) {
	if err := ctx.Err(); err != nil {
		return question.Answer{}, err
	}

	a, ok := s.Answers[q.Spec.Key]
	if !ok {
		if s.Strict {
			return question.Answer{}, fmt.Errorf("no scripted answer for %s", q.Spec.Key)
		}
		if q.Spec.IsMultiChoice() {
			return question.List(), nil
		}
		return question.Text(q.Default), nil
	}

	return a, nil
}

// LoadAnswers reads a YAML answers file. Nested mappings are flattened to
// dotted keys, sequences become list answers and scalars text answers:
//
//	alias: example
//	githosts: [github.com]
//	author:
//	  username: alice
func LoadAnswers(fsys fs.FS, path string) (map[string]question.Answer, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.EInvalidAnswers, "answers file not found: "+path)
		}
		return nil, errors.Wrap(errors.EInvalidAnswers, "failed to read answers file", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers parses YAML answers data. See LoadAnswers.
func ParseAnswers(data []byte) (map[string]question.Answer, error) {
	out := map[string]question.Answer{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.EInvalidAnswers, "invalid answers yaml", err)
	}
	if len(root.Content) == 0 {
		return out, nil
	}
	if err := flatten("", root.Content[0], out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, n *yaml.Node, out map[string]question.Answer) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(key, n.Content[i+1], out); err != nil {
				return err
			}
		}
		return nil
	case yaml.SequenceNode:
		if prefix == "" {
			return errors.New(errors.EInvalidAnswers, "answers must be a mapping")
		}
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return errors.New(errors.EInvalidAnswers, prefix+" must be a list of strings")
			}
			items = append(items, c.Value)
		}
		out[prefix] = question.List(items...)
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return errors.New(errors.EInvalidAnswers, "answers must be a mapping")
		}
		if n.Tag == "!!null" {
			out[prefix] = question.Text("")
			return nil
		}
		out[prefix] = question.Text(n.Value)
		return nil
	case yaml.AliasNode:
		return flatten(prefix, n.Alias, out)
	default:
		return errors.New(errors.EInvalidAnswers, "unsupported yaml node at "+keyOrRoot(prefix))
	}
}

func keyOrRoot(prefix string) string {
	if prefix == "" {
		return "<root>"
	}
	return prefix
}

// ScriptKeys returns the scripted keys in sorted order.
func (s *ScriptedTransport) ScriptKeys() []string {
	keys := make([]string, 0, len(s.Answers))
	for k := range s.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String summarizes the script for debug logs.
func (s *ScriptedTransport) String() string {
	return "scripted(" + strings.Join(s.ScriptKeys(), ",") + ")"
}
