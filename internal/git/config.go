// Package git reads the local git configuration.
package git

import (
	"context"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/exec"
)

// ConfigValue returns the value of a git config key using
// `git config --get <key>`.
//
// Returns ("", false, nil) when the key is unset (git exits 1).
// Returns an error only for execution failures (binary not found, ctx canceled).
func ConfigValue(ctx context.Context, cr exec.Runner, key string) (string, bool, error) {
	result, err := cr.Run(ctx, "git", []string{"config", "--get", key}, exec.Opts{})
	if err != nil {
		return "", false, errors.Wrap(errors.EInternal, "failed to run git config --get "+key, err)
	}
	if !result.OK() {
		return "", false, nil
	}

	// multi-valued keys print one value per line; the last one wins, as in git
	value := result.LastLine()
	return value, value != "", nil
}

// UserName returns the configured git user.name, or "" if it is unset or
// git cannot be run. It never returns an error.
func UserName(ctx context.Context, cr exec.Runner) string {
	name, _, err := ConfigValue(ctx, cr, "user.name")
	if err != nil {
		return ""
	}
	return name
}
