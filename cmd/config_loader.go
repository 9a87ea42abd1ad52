package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/ccx/internal/ui"
	"github.com/oakwood-commons/ccx/pkg/settings"
)

// configLoader merges a user config file over the embedded defaults.
type configLoader struct {
	defaults func() (ui.Config, error)
}

var cfgLoader = configLoader{defaults: ui.EmbeddedDefaultConfig}

func loadMergedConfig(cfgPath string) (ui.Config, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func (l configLoader) loadMergedConfig(cfgPath string) (ui.Config, error) {
	base, err := l.defaults()
	if err != nil {
		return ui.Config{}, fmt.Errorf("load default config: %w", err)
	}
	cfg := cloneConfig(base)
	if cfgPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return ui.Config{}, fmt.Errorf("read config file: %w", err)
	}
	var user ui.Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return ui.Config{}, fmt.Errorf("parse config file %s: %w", cfgPath, err)
	}
	mergeConfig(&cfg, user)
	return cfg, nil
}

// cloneConfig copies the maps of cfg so merging never mutates the cached
// embedded defaults.
func cloneConfig(cfg ui.Config) ui.Config {
	out := cfg
	out.UI.Themes = make(map[string]ui.ThemeConfig, len(cfg.UI.Themes))
	for k, v := range cfg.UI.Themes {
		out.UI.Themes[k] = v
	}
	out.UI.Keys.Vim = cloneStrings(cfg.UI.Keys.Vim)
	out.UI.Keys.Emacs = cloneStrings(cfg.UI.Keys.Emacs)
	out.List.FilterExamples = append([]string(nil), cfg.List.FilterExamples...)
	return out
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// mergeConfig overlays every field set in override onto base.
func mergeConfig(base *ui.Config, override ui.Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&base.App.About.Name, override.App.About.Name)
	setString(&base.App.About.Description, override.App.About.Description)
	setString(&base.App.About.License, override.App.About.License)

	setString(&base.UI.Theme.Default, override.UI.Theme.Default)
	setString(&base.UI.KeyMap, override.UI.KeyMap)
	if override.UI.ShowAdvanced != nil {
		base.UI.ShowAdvanced = override.UI.ShowAdvanced
	}
	for name, tc := range override.UI.Themes {
		base.UI.Themes[name] = mergeThemeConfig(base.UI.Themes[name], tc)
	}
	base.UI.Keys.Vim = mergeStrings(base.UI.Keys.Vim, override.UI.Keys.Vim)
	base.UI.Keys.Emacs = mergeStrings(base.UI.Keys.Emacs, override.UI.Keys.Emacs)

	setString(&base.Cache.FileName, override.Cache.FileName)
	if override.Cache.Strict != nil {
		base.Cache.Strict = override.Cache.Strict
	}

	setString(&base.List.Output, override.List.Output)
	if len(override.List.FilterExamples) > 0 {
		base.List.FilterExamples = override.List.FilterExamples
	}
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(override))
	}
	for k, v := range override {
		base[k] = v
	}
	return base
}

// mergeThemeConfig lets a user theme override single colors of a built-in one.
func mergeThemeConfig(base, override ui.ThemeConfig) ui.ThemeConfig {
	set := func(dst *ui.ColorValue, v ui.ColorValue) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.NameColor, override.NameColor)
	set(&base.ValueColor, override.ValueColor)
	set(&base.TypeColor, override.TypeColor)
	set(&base.ModifiedColor, override.ModifiedColor)
	set(&base.HeaderFG, override.HeaderFG)
	set(&base.HeaderBG, override.HeaderBG)
	set(&base.SelectedFG, override.SelectedFG)
	set(&base.SelectedBG, override.SelectedBG)
	set(&base.BorderColor, override.BorderColor)
	set(&base.StatusColor, override.StatusColor)
	set(&base.StatusError, override.StatusError)
	set(&base.FooterFG, override.FooterFG)
	set(&base.FooterBG, override.FooterBG)
	set(&base.HelpKey, override.HelpKey)
	set(&base.HelpValue, override.HelpValue)
	return base
}

// resolveConfigPath returns explicit if set, otherwise the user config file
// under $XDG_CONFIG_HOME (or ~/.config) when it exists.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
