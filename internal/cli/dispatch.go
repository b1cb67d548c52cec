// Package cli handles command-line parsing and dispatch for swapgen.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirap-group/swapgen/internal/commands"
	"github.com/sirap-group/swapgen/internal/config"
	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/exec"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/logger"
	"github.com/sirap-group/swapgen/internal/paths"
	"github.com/sirap-group/swapgen/internal/version"
)

// App holds the process dependencies of the command tree.
type App struct {
	FS      fs.FS
	Runner  exec.Runner
	Env     paths.Env
	HomeDir func() (string, error)
	Now     func() time.Time

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run parses arguments and dispatches to the appropriate subcommand using
// the real filesystem, environment and git binary.
// Returns an error if the command fails; the caller should print the error and exit.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := &App{
		FS:      fs.NewRealFS(),
		Runner:  exec.NewOSRunner(),
		Env:     paths.OSEnv{},
		HomeDir: os.UserHomeDir,
		Now:     time.Now,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}
	return app.Run(ctx, args)
}

// Run executes the command tree with args.
// Parse and dispatch errors are returned as E_USAGE.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if _, ok := errors.AsSwapError(err); ok {
		return err
	}
	return errors.New(errors.EUsage, err.Error())
}

// globalOpts are the persistent flags of the root command.
type globalOpts struct {
	configPath string
	logLevel   string
}

func (a *App) rootCmd() *cobra.Command {
	g := &globalOpts{}

	root := &cobra.Command{
		Use:   "swapgen",
		Short: "Collect SWAP generator project metadata",
		Long: `swapgen asks the questions needed to scaffold a SWAP generator package
(alias, descriptors, author, repository, files, keywords) and writes the
collected metadata as JSON or YAML.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.EUsage, "no command specified")
		},
	}
	root.SetVersionTemplate("swapgen {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	})

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file path (default: <config dir>/swapgen.yaml)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.promptCmd(g),
		a.initCmd(g),
		a.cacheCmd(g),
		a.versionCmd(),
	)
	return root
}

func (a *App) promptCmd(g *globalOpts) *cobra.Command {
	var (
		noPrompt bool
		silent   bool
		format   string
		opts     commands.PromptOpts
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask the project questions and write the metadata",
		Example: `  swapgen prompt
  swapgen prompt --answers answers.yaml --format yaml --out project.yaml
  swapgen prompt --yes --silent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			env, cfg, err := a.setup(g, func(cfg *config.Config) {
				if flags.Changed("no-prompt") {
					cfg.Prompt = !noPrompt
				}
				if flags.Changed("silent") {
					cfg.Silent = silent
				}
				if flags.Changed("format") {
					cfg.Format = format
				}
			}, false)
			if err != nil {
				return err
			}
			defer env.Log.Sync()

			if opts.AnswersPath != "" && opts.Yes {
				return errors.New(errors.EUsage, "--answers and --yes are mutually exclusive")
			}
			if opts.AnswersPath == "" && !opts.Yes && cfg.Prompt && !isTerminal(a.Stdin) {
				env.Log.Debug("stdin is not a terminal; reading answers line by line")
			}

			opts.Config = cfg
			return commands.Prompt(cmd.Context(), env, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&noPrompt, "no-prompt", false, "skip the questions and reuse cached data")
	f.BoolVar(&silent, "silent", false, "suppress informational notices")
	f.StringVar(&format, "format", "", "output format: json or yaml")
	f.StringVar(&opts.AnswersPath, "answers", "", "read answers from a YAML file")
	f.BoolVarP(&opts.Yes, "yes", "y", false, "accept every default without asking")
	f.StringVarP(&opts.OutPath, "out", "o", "", "write metadata to a file instead of stdout")
	return cmd
}

func (a *App) initCmd(g *globalOpts) *cobra.Command {
	var opts commands.InitOpts

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a swapgen.yaml template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// a broken swapgen.yaml must not prevent rewriting it
			env, _, err := a.setup(g, nil, true)
			if err != nil {
				return err
			}
			defer env.Log.Sync()

			opts.ConfigPath = g.configPath
			return commands.Init(env, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite existing files")
	cmd.Flags().StringVar(&opts.AnswersPath, "answers", "", "also write an answers file template to this path")
	return cmd
}

func (a *App) cacheCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Show the cache location and prompted flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _, err := a.setup(g, nil, false)
			if err != nil {
				return err
			}
			defer env.Log.Sync()
			return commands.Cache(env)
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.Stdout, "swapgen %s\n", version.Version)
			return err
		},
	}
}

// setup resolves directories, loads and validates the config with the
// given overrides applied, and builds the logger. When lenient is set an
// unusable config file is replaced by the defaults.
func (a *App) setup(g *globalOpts, override func(cfg *config.Config), lenient bool) (commands.Env, config.Config, error) {
	home, err := a.HomeDir()
	if err != nil {
		return commands.Env{}, config.Config{}, errors.Wrap(errors.EInternal, "failed to get home directory", err)
	}
	dirs := paths.ResolveDirs(a.Env, home)

	cfgPath := g.configPath
	if cfgPath == "" {
		cfgPath = dirs.ConfigFile()
	}
	cfg, loadErr := config.Load(a.FS, cfgPath)
	if loadErr != nil {
		if !lenient {
			return commands.Env{}, cfg, loadErr
		}
		cfg = config.Default()
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if override != nil {
		override(&cfg)
	}
	cfg, err = config.Validate(cfg)
	if err != nil {
		return commands.Env{}, cfg, err
	}

	log, err := logger.New(cfg.LogLevel, a.Stderr, isTerminal(a.Stderr))
	if err != nil {
		return commands.Env{}, cfg, err
	}
	if loadErr != nil {
		log.Warn("ignoring unusable config file", "path", cfgPath, "error", loadErr)
	}
	log.Debug("config loaded", "path", cfgPath, "config_dir", dirs.ConfigDir, "cache_dir", dirs.CacheDir)

	return commands.Env{
		FS:     a.FS,
		Runner: a.Runner,
		Dirs:   dirs,
		Log:    log,
		Now:    a.Now,
		Stdin:  a.Stdin,
		Stdout: a.Stdout,
		Stderr: a.Stderr,
	}, cfg, nil
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
