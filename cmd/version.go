package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/ccx/internal/ui"
	"github.com/oakwood-commons/ccx/pkg/settings"
)

func aboutConfig() ui.AboutConfig {
	cfg, _ := loadMergedConfig(resolveConfigPath(""))
	about := cfg.App.About
	if about.Name == "" {
		about.Name = settings.CliBinaryName
	}
	return about
}

// cliVersionString builds the version line shared by `ccx version` and --version.
func cliVersionString() string {
	about := aboutConfig()
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, go %s)", about.Name, v.BuildVersion, v.Commit, runtime.Version())
}

func shortHelp() string {
	return aboutConfig().Name + " - CMake cache explorer"
}

func longHelp() string {
	about := aboutConfig()
	if about.Description == "" {
		return shortHelp()
	}
	return about.Name + ": " + about.Description + "\n\n" +
		"Entries are read from BUILD_DIR/CMakeCache.txt and changed only in memory."
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ccx version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return err
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration as YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMergedConfig(resolveConfigPath(o.configFile))
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
	c.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMergedConfig(resolveConfigPath(o.configFile))
			if err != nil {
				return err
			}
			for _, name := range ui.ThemeNames(cfg) {
				marker := " "
				if name == cfg.UI.Theme.Default {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	})
	return c
}
