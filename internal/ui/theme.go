package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"
)

// Theme defines the colors used across the UI.
type Theme struct {
	NameColor     color.Color // Name column
	ValueColor    color.Color // Value column
	TypeColor     color.Color // Type column
	ModifiedColor color.Color // Marker and value of entries changed this session
	HeaderFG      color.Color // Title bar text
	HeaderBG      color.Color // Title bar background
	SelectedFG    color.Color // Selected row foreground
	SelectedBG    color.Color // Selected row background
	BorderColor   color.Color // Popup and panel borders
	StatusColor   color.Color // Normal status text
	StatusError   color.Color // Refusals and misses
	FooterFG      color.Color // Description panel text
	FooterBG      color.Color // Description panel background
	HelpKey       color.Color // Help line key labels
	HelpValue     color.Color // Help line descriptions
}

func fallbackDefaultTheme() Theme {
	return Theme{
		NameColor:     lipgloss.Color("81"),
		ValueColor:    lipgloss.Color("250"),
		TypeColor:     lipgloss.Color("245"),
		ModifiedColor: lipgloss.Color("214"),
		HeaderFG:      lipgloss.Color("81"),
		HeaderBG:      lipgloss.Color("236"),
		SelectedFG:    lipgloss.Color("255"),
		SelectedBG:    lipgloss.Color("24"),
		BorderColor:   lipgloss.Color("238"),
		StatusColor:   lipgloss.Color("81"),
		StatusError:   lipgloss.Color("203"),
		FooterFG:      lipgloss.Color("244"),
		FooterBG:      lipgloss.Color("236"),
		HelpKey:       lipgloss.Color("81"),
		HelpValue:     lipgloss.Color("245"),
	}
}

// UnmarshalYAML accepts both ints and strings and stores the literal value.
func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*c = ""
		return nil
	}
	*c = ColorValue(value.Value)
	return nil
}

// ThemeFromConfig builds a Theme from a ThemeConfig, falling back to defaults when fields are empty.
func ThemeFromConfig(cfg ThemeConfig) Theme {
	th := fallbackDefaultTheme()
	set := func(val ColorValue, dst *color.Color) {
		if val != "" {
			*dst = lipgloss.Color(string(val))
		}
	}
	set(cfg.NameColor, &th.NameColor)
	set(cfg.ValueColor, &th.ValueColor)
	set(cfg.TypeColor, &th.TypeColor)
	set(cfg.ModifiedColor, &th.ModifiedColor)
	set(cfg.HeaderFG, &th.HeaderFG)
	set(cfg.HeaderBG, &th.HeaderBG)
	set(cfg.SelectedFG, &th.SelectedFG)
	set(cfg.SelectedBG, &th.SelectedBG)
	set(cfg.BorderColor, &th.BorderColor)
	set(cfg.StatusColor, &th.StatusColor)
	set(cfg.StatusError, &th.StatusError)
	set(cfg.FooterFG, &th.FooterFG)
	set(cfg.FooterBG, &th.FooterBG)
	set(cfg.HelpKey, &th.HelpKey)
	set(cfg.HelpValue, &th.HelpValue)
	return th
}

// ThemeNames lists the themes defined in cfg, sorted.
func ThemeNames(cfg Config) []string {
	names := make([]string, 0, len(cfg.UI.Themes))
	for name := range cfg.UI.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTheme picks the theme called name from cfg. An empty name selects
// the configured default, and if that is also empty the built-in palette.
func ResolveTheme(cfg Config, name string) (Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(cfg.UI.Theme.Default)
	}
	if name == "" {
		return fallbackDefaultTheme(), nil
	}
	tc, ok := cfg.UI.Themes[name]
	if !ok {
		available := ThemeNames(cfg)
		if len(available) == 0 {
			return Theme{}, fmt.Errorf("unknown theme %q (no themes configured)", name)
		}
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(available, ", "))
	}
	return ThemeFromConfig(tc), nil
}

// MarshalYAML writes numeric color indexes as YAML ints.
func (c ColorValue) MarshalYAML() (any, error) {
	if c == "" {
		return "", nil
	}
	s := string(c)
	if _, err := strconv.Atoi(s); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}, nil
	}
	return s, nil
}
