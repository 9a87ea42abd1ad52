package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/limiter"
	"github.com/oakwood-commons/ccx/internal/registry"
	"github.com/oakwood-commons/ccx/internal/session"
	"github.com/oakwood-commons/ccx/internal/ui"
	"github.com/oakwood-commons/ccx/pkg/logger"
	"github.com/oakwood-commons/ccx/pkg/settings"
)

// options holds every flag of one command tree.
type options struct {
	ctx context.Context

	buildDir     string
	strict       bool
	showAdvanced bool
	keyMap       string
	themeName    string
	noColor      bool
	debug        bool
	configFile   string

	startKeys      []string
	snapshot       bool
	snapshotWidth  int
	snapshotHeight int

	listOutput   string
	listFilter   string
	listAdvanced bool
	listWindow   limiter.Config
}

func newRootCmd() *cobra.Command {
	o := &options{ctx: context.Background()}

	root := &cobra.Command{
		Use:   settings.CliBinaryName + " [BUILD_DIR]",
		Short: shortHelp(),
		Long:  longHelp(),
		Example: "\n  ccx build\n  ccx -p build --show-advanced\n  ccx build --press '/CMAKE_BUILD<CR><Space>' --snapshot\n" +
			"  ccx list build -e 'e.type == \"BOOL\"' -o yaml\n",
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cliVersionString(),
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return o.initLogger(cmd, cmd == root && !o.snapshot)
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return o.runInteractive(cmd, args)
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&o.buildDir, "path", "p", ".", "build directory containing the cache file")
	pf.BoolVar(&o.strict, "strict", true, "fail when the cache file cannot be read (default from config)")
	pf.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&o.debug, "debug", false, "enable debug logging (to a file while the TUI runs)")
	pf.StringVar(&o.configFile, "config-file", "", "path to a YAML config file (themes, keys, defaults)")

	f := root.Flags()
	f.BoolVar(&o.showAdvanced, "show-advanced", false, "start with advanced entries visible")
	f.StringVar(&o.keyMap, "keymap", "", "key bindings: vim|emacs (default from config)")
	f.StringVar(&o.themeName, "theme", "", "theme name (default from config; see 'ccx config themes')")
	f.StringArrayVar(&o.startKeys, "press", nil, "keys to press at startup, e.g. 'j' '<Space>' '/CMAKE<CR>'")
	f.BoolVar(&o.snapshot, "snapshot", false, "render one frame to stdout and exit")
	f.IntVar(&o.snapshotWidth, "width", 0, "snapshot width (default: terminal width or 80)")
	f.IntVar(&o.snapshotHeight, "height", 0, "snapshot height (default: terminal height or 24)")

	root.AddCommand(newListCmd(o), newVersionCmd(), newConfigCmd(o))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func (o *options) initLogger(cmd *cobra.Command, interactive bool) error {
	var level int8
	if o.debug {
		level = -1
	}
	var lopts logger.Options
	logPath := ""
	if o.debug && interactive {
		sink, path, err := logger.FileSink()
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		lopts.Sink = sink
		logPath = path
	}
	lgr := logger.GetWithOptions(level, lopts)
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	o.ctx = logger.WithLogger(ctx, lgr)
	if logPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logPath)
	}
	return nil
}

// resolveRun merges config and explicitly set flags into the run settings.
func (o *options) resolveRun(cmd *cobra.Command, args []string, cfg ui.Config) (*settings.Run, error) {
	run := settings.NewCliParams()
	if o.debug {
		run.MinLogLevel = -1
	}

	run.BuildDir = o.buildDir
	if len(args) == 1 {
		if flagChanged(cmd.Flags(), "path") && o.buildDir != args[0] {
			return nil, usageErrorf("build directory given twice: %q and --path %q", args[0], o.buildDir)
		}
		run.BuildDir = args[0]
	}
	if cfg.Cache.FileName != "" {
		run.CacheFileName = cfg.Cache.FileName
	}

	run.Strict = ui.BoolValue(cfg.Cache.Strict, run.Strict)
	if flagChanged(cmd.Flags(), "strict") {
		run.Strict = o.strict
	}
	run.ShowAdvanced = ui.BoolValue(cfg.UI.ShowAdvanced, run.ShowAdvanced)
	if flagChanged(cmd.Flags(), "show-advanced") {
		run.ShowAdvanced = o.showAdvanced
	}
	run.NoColor = o.noColor
	return run, nil
}

func flagChanged(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// loadSession reads config and the cache file for args.
func (o *options) loadSession(cmd *cobra.Command, args []string) (ui.Config, *session.Session, error) {
	cfg, err := loadMergedConfig(resolveConfigPath(o.configFile))
	if err != nil {
		return ui.Config{}, nil, err
	}
	run, err := o.resolveRun(cmd, args, cfg)
	if err != nil {
		return ui.Config{}, nil, err
	}
	o.ctx = settings.IntoContext(o.ctx, run)
	lgr := logger.FromContext(o.ctx).WithValues(logger.BuildDirKey, run.BuildDir)
	o.ctx = logger.WithLogger(o.ctx, &lgr)

	entries, err := cache.Load(o.ctx, run.BuildDir, cache.LoadOptions{FileName: run.CacheFileName, Strict: run.Strict})
	if err != nil {
		return ui.Config{}, nil, err
	}
	sess := session.New(registry.New(entries))
	sess.SetShowAdvanced(run.ShowAdvanced)
	return cfg, sess, nil
}

func (o *options) uiOptions(cmd *cobra.Command, cfg ui.Config) (ui.Options, error) {
	run, ok := settings.FromContext(o.ctx)
	if !ok {
		return ui.Options{}, fmt.Errorf("run settings missing from context")
	}
	mode := strings.TrimSpace(cfg.UI.KeyMap)
	if flagChanged(cmd.Flags(), "keymap") {
		mode = strings.TrimSpace(o.keyMap)
	}
	if mode == "" {
		mode = string(ui.DefaultKeyMode)
	}
	if !ui.IsValidKeyMode(mode) {
		return ui.Options{}, usageErrorf("invalid --keymap %q (valid: vim, emacs)", mode)
	}
	overrides := cfg.UI.Keys.Vim
	if ui.KeyMode(mode) == ui.KeyModeEmacs {
		overrides = cfg.UI.Keys.Emacs
	}
	keys, err := ui.KeyBindingsFor(ui.KeyMode(mode), overrides)
	if err != nil {
		return ui.Options{}, fmt.Errorf("config keys: %w", err)
	}

	theme, err := ui.ResolveTheme(cfg, o.themeName)
	if err != nil {
		return ui.Options{}, usageErrorf("%v", err)
	}

	return ui.Options{
		AppName: cfg.App.About.Name,
		Source:  cache.Path(run.BuildDir, run.CacheFileName),
		Theme:   theme,
		KeyMode: ui.KeyMode(mode),
		Keys:    keys,
		NoColor: run.NoColor,
	}, nil
}

func (o *options) runInteractive(cmd *cobra.Command, args []string) error {
	cfg, sess, err := o.loadSession(cmd, args)
	if err != nil {
		return err
	}
	uiOpts, err := o.uiOptions(cmd, cfg)
	if err != nil {
		return err
	}
	lgr := logger.FromContext(o.ctx)

	if o.snapshot {
		uiOpts.Width, uiOpts.Height = ui.TerminalSize(o.snapshotWidth, o.snapshotHeight)
		m := ui.NewModel(sess, uiOpts)
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSnapshot(m, ui.SnapshotConfig{StartKeys: o.startKeys}))
		return nil
	}

	m := ui.NewModel(sess, uiOpts)
	lgr.V(1).Info("starting session", "entries", sess.Registry().Len(), "keymap", uiOpts.KeyMode)
	if err := ui.RunModel(o.ctx, m, o.startKeys); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if n := sess.Registry().ModifiedCount(); n > 0 {
		lgr.V(1).Info("session ended with in-memory changes", "modified", n)
	}
	return nil
}
