package prompt

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sirap-group/swapgen/internal/question"
)

// ErrNoInput is returned when the input ends before a question is answered.
var ErrNoInput = stderrors.New("input closed before an answer was given")

// TerminalTransport asks questions line by line on a reader/writer pair.
//
// Text questions print "? <message> (<default>) " and read one line; an
// empty line takes the default. Multi-select questions print numbered
// choices and accept comma separated numbers or choice values; an empty
// line selects nothing. Unknown choices are reported and asked again.
//
// Input is read by a single background goroutine, so a canceled context
// interrupts an Ask that is waiting for a line.
type TerminalTransport struct {
	in  *bufio.Reader
	out io.Writer

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewTerminalTransport creates a transport reading answers from in and
// writing prompts to out.
func NewTerminalTransport(in io.Reader, out io.Writer) *TerminalTransport {
	return &TerminalTransport{in: bufio.NewReader(in), out: out}
}

// Ask implements Transport. It returns ctx.Err() as soon as ctx is done,
// even while waiting for input.
func (t *TerminalTransport) Ask(ctx context.Context, q Question) (question.Answer, error) {
	if q.Spec.IsMultiChoice() {
		return t.askChoices(ctx, q)
	}

	if err := ctx.Err(); err != nil {
		return question.Answer{}, err
	}
	if q.Default != "" {
		fmt.Fprintf(t.out, "? %s (%s) ", q.Spec.Message, q.Default)
	} else {
		fmt.Fprintf(t.out, "? %s ", q.Spec.Message)
	}

	line, err := t.readLine(ctx)
	if err != nil {
		return question.Answer{}, err
	}
	if line == "" {
		return question.Text(q.Default), nil
	}
	return question.Text(line), nil
}

func (t *TerminalTransport) askChoices(ctx context.Context, q Question) (question.Answer, error) {
	for {
		if err := ctx.Err(); err != nil {
			return question.Answer{}, err
		}
		fmt.Fprintf(t.out, "? %s\n", q.Spec.Message)
		for i, c := range q.Spec.Choices {
			fmt.Fprintf(t.out, "  %d) %s\n", i+1, c)
		}
		fmt.Fprint(t.out, "  (comma separated, empty for none) ")

		line, err := t.readLine(ctx)
		if err != nil {
			return question.Answer{}, err
		}
		selected, bad := parseSelection(line, q.Spec.Choices)
		if bad == "" {
			return question.List(selected...), nil
		}
		fmt.Fprintf(t.out, "unknown choice %q\n", bad)
	}
}

// readLine waits for the next trimmed line or for ctx to be done. A final
// line without newline is accepted; EOF with nothing read is ErrNoInput.
func (t *TerminalTransport) readLine(ctx context.Context) (string, error) {
	t.start.Do(func() {
		t.lines = make(chan lineResult, 1)
		go t.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-t.lines:
		if !ok {
			return "", ErrNoInput
		}
		return r.line, r.err
	}
}

// readLoop feeds t.lines until the input fails, then closes it.
func (t *TerminalTransport) readLoop() {
	defer close(t.lines)
	for {
		line, err := t.in.ReadString('\n')
		switch {
		case err == nil:
			t.lines <- lineResult{line: strings.TrimSpace(line)}
			continue
		case err == io.EOF && line != "":
			t.lines <- lineResult{line: strings.TrimSpace(line)}
		case err == io.EOF:
			t.lines <- lineResult{err: ErrNoInput}
		default:
			t.lines <- lineResult{err: err}
		}
		return
	}
}

// parseSelection maps tokens (1-based numbers or choice values) to choices,
// keeping choice order and dropping repeats. bad is the first token that
// matches no choice.
func parseSelection(line string, choices []string) (selected []string, bad string) {
	picked := make(map[int]bool)
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		idx := indexOf(choices, tok)
		if idx < 0 {
			if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(choices) {
				idx = n - 1
			}
		}
		if idx < 0 {
			return nil, tok
		}
		picked[idx] = true
	}
	for i, c := range choices {
		if picked[i] {
			selected = append(selected, c)
		}
	}
	return selected, ""
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
