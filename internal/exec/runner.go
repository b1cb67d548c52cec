// Package exec runs helper binaries such as git and captures their output.
package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a helper command when Opts.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Result is the captured outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the process exited 0.
func (r Result) OK() bool { return r.ExitCode == 0 }

// LastLine returns the last non-blank line of Stdout, trimmed.
func (r Result) LastLine() string {
	lines := strings.Split(strings.TrimSpace(r.Stdout), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// Opts tunes a single Run.
type Opts struct {
	Dir     string
	Env     map[string]string // overlaid on the process environment
	Timeout time.Duration
}

// Runner runs an external command. A non-zero exit is reported through
// Result.ExitCode; err is reserved for start failures, timeouts and
// cancellation.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)
}

// OSRunner runs commands with os/exec.
type OSRunner struct {
	Timeout time.Duration
}

// NewOSRunner creates an OSRunner using DefaultTimeout.
func NewOSRunner() *OSRunner {
	return &OSRunner{Timeout: DefaultTimeout}
}

// Run implements Runner.
func (r *OSRunner) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = r.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		if stderrors.Is(ctxErr, context.DeadlineExceeded) {
			return res, fmt.Errorf("%s: timed out after %s", name, timeout)
		}
		return res, ctxErr
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
