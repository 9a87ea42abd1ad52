package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/ccx/internal/filter"
	"github.com/oakwood-commons/ccx/internal/formatter"
	"github.com/oakwood-commons/ccx/internal/limiter"
	"github.com/oakwood-commons/ccx/internal/ui"
	"github.com/oakwood-commons/ccx/pkg/logger"
)

func newListCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "list [BUILD_DIR]",
		Short: "Print cache entries without starting the TUI",
		Long: "Print the entries of a cache file sorted by name. Advanced entries are\n" +
			"left out unless --advanced is given. A CEL predicate over the variable\n" +
			"'e' (name, type, value, description, advanced, allowed, modified)\n" +
			"narrows the output.\n\nFields:\n" + strings.Join(filter.FieldHelp(), "\n"),
		Example: listExamples(),
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runList(cmd, args)
		},
	}
	c.Flags().StringVarP(&o.listOutput, "output", "o", "", "output format: table|list|yaml|json|toml (default from config)")
	c.Flags().StringVarP(&o.listFilter, "filter", "e", "", "CEL predicate selecting entries, e.g. 'e.type == \"BOOL\"'")
	c.Flags().BoolVar(&o.listAdvanced, "advanced", false, "include advanced entries")
	c.Flags().IntVar(&o.listWindow.Limit, "limit", 0, "print at most N entries")
	c.Flags().IntVar(&o.listWindow.Offset, "offset", 0, "skip the first N entries")
	c.Flags().IntVar(&o.listWindow.Tail, "tail", 0, "print only the last N entries")
	_ = c.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return filter.Complete(toComplete), cobra.ShellCompDirectiveNoSpace
	})
	return c
}

func listExamples() string {
	cfg, err := ui.EmbeddedDefaultConfig()
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("  ccx list build -o yaml\n")
	for _, ex := range cfg.List.FilterExamples {
		b.WriteString("  ccx list build -e '")
		b.WriteString(ex)
		b.WriteString("'\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (o *options) runList(cmd *cobra.Command, args []string) error {
	cfg, sess, err := o.loadSession(cmd, args)
	if err != nil {
		return err
	}

	name := o.listOutput
	if !flagChanged(cmd.Flags(), "output") && cfg.List.Output != "" {
		name = cfg.List.Output
	}
	if name == "" {
		name = string(formatter.FormatTable)
	}
	format, err := formatter.ParseFormat(name)
	if err != nil {
		return usageErrorf("%v", err)
	}

	if err := o.listWindow.Validate(); err != nil {
		return usageErrorf("%v", err)
	}

	var pred *filter.Filter
	if strings.TrimSpace(o.listFilter) != "" {
		pred, err = filter.New(o.listFilter)
		if err != nil {
			return usageErrorf("invalid --filter: %v", err)
		}
	}

	if o.listAdvanced {
		sess.SetShowAdvanced(true)
	}
	entries, err := pred.Apply(sess.Visible())
	if err != nil {
		return err
	}
	entries = limiter.Apply(o.listWindow, entries)
	logger.FromContext(o.ctx).V(1).Info("listing entries", "count", len(entries), "format", string(format))
	return formatter.Write(cmd.OutOrStdout(), entries, format)
}
