package git

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/exec"
)

// stubRunner implements exec.Runner for testing.
type stubRunner struct {
	// responses maps "name|arg1,arg2" -> Result
	responses map[string]exec.Result
	err       error
	calls     []string
}

func newStubRunner() *stubRunner {
	return &stubRunner{responses: make(map[string]exec.Result)}
}

func (s *stubRunner) On(name string, args []string, result exec.Result) {
	s.responses[name+"|"+strings.Join(args, ",")] = result
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts exec.Opts) (exec.Result, error) {
	key := name + "|" + strings.Join(args, ",")
	s.calls = append(s.calls, key)
	if s.err != nil {
		return exec.Result{}, s.err
	}
	if result, ok := s.responses[key]; ok {
		return result, nil
	}
	// git config exits 1 for a missing key
	return exec.Result{ExitCode: 1}, nil
}

func TestConfigValue(t *testing.T) {
	cr := newStubRunner()
	cr.On("git", []string{"config", "--get", "user.name"}, exec.Result{Stdout: "Alice Doe\n"})
	cr.On("git", []string{"config", "--get", "user.email"}, exec.Result{Stdout: "  \n"})
	cr.On("git", []string{"config", "--get", "core.editor"}, exec.Result{Stdout: "vi\nnano\n"})
	ctx := context.Background()

	v, ok, err := ConfigValue(ctx, cr, "user.name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice Doe", v)

	v, ok, err = ConfigValue(ctx, cr, "user.email")
	require.NoError(t, err)
	assert.False(t, ok, "blank value counts as unset")
	assert.Empty(t, v)

	v, ok, err = ConfigValue(ctx, cr, "core.editor")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nano", v)

	_, ok, err = ConfigValue(ctx, cr, "init.defaultBranch")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigValue_ExecFailure(t *testing.T) {
	cr := newStubRunner()
	cr.err = stderrors.New("executable file not found")

	_, _, err := ConfigValue(context.Background(), cr, "user.name")
	require.Error(t, err)
	assert.Equal(t, errors.EInternal, errors.GetCode(err))
}

func TestUserName(t *testing.T) {
	cr := newStubRunner()
	cr.On("git", []string{"config", "--get", "user.name"}, exec.Result{Stdout: "Alice Doe\n"})
	assert.Equal(t, "Alice Doe", UserName(context.Background(), cr))
	assert.Equal(t, []string{"git|config,--get,user.name"}, cr.calls)

	failing := newStubRunner()
	failing.err = stderrors.New("boom")
	assert.Empty(t, UserName(context.Background(), failing))
}
