package commands

import (
	"fmt"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/scaffold"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	// ConfigPath overrides the swapgen.yaml location (default: config dir).
	ConfigPath string

	// AnswersPath, when set, also writes an answers file template there.
	AnswersPath string

	Force bool
}

// Init implements the `swapgen init` command.
// Writes the swapgen.yaml template and, optionally, an answers template.
// Returns E_CONFIG_EXISTS if swapgen.yaml exists and Force is not set.
func Init(env Env, opts InitOpts) error {
	path := opts.ConfigPath
	if path == "" {
		path = env.Dirs.ConfigFile()
	}

	res, err := scaffold.WriteTemplate(env.FS, path, scaffold.ConfigTemplate, opts.Force)
	if err != nil {
		return errors.Wrap(errors.EPersistFailed, "failed to write "+path, err)
	}
	if res == scaffold.Skipped {
		return errors.NewWithDetails(errors.EConfigExists, "swapgen.yaml already exists; use --force to overwrite",
			map[string]string{"path": path})
	}

	fmt.Fprintf(env.Stdout, "config_path: %s\n", path)
	fmt.Fprintf(env.Stdout, "config: %s\n", res)

	if opts.AnswersPath != "" {
		res, err := scaffold.WriteTemplate(env.FS, opts.AnswersPath, scaffold.AnswersTemplate, opts.Force)
		if err != nil {
			return errors.Wrap(errors.EPersistFailed, "failed to write "+opts.AnswersPath, err)
		}
		fmt.Fprintf(env.Stdout, "answers_path: %s\n", opts.AnswersPath)
		fmt.Fprintf(env.Stdout, "answers: %s\n", res)
	}
	return nil
}
