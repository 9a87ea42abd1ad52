package ui

// Config is the on-disk configuration. Pointer fields distinguish "unset"
// from the zero value so user files can be merged over the defaults.
type Config struct {
	App   AppConfig   `yaml:"app"`
	UI    UIConfig    `yaml:"ui"`
	Cache CacheConfig `yaml:"cache"`
	List  ListConfig  `yaml:"list"`
}

// AppConfig describes the application itself.
type AppConfig struct {
	About AboutConfig `yaml:"about"`
}

// AboutConfig feeds the title bar and `ccx version`.
type AboutConfig struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	License     string `yaml:"license,omitempty"`
	// Version is filled in at runtime from build info.
	Version string `yaml:"-"`
}

// UIConfig controls the interactive session.
type UIConfig struct {
	Theme        ThemeSelection         `yaml:"theme"`
	KeyMap       string                 `yaml:"keymap,omitempty"`
	ShowAdvanced *bool                  `yaml:"show_advanced,omitempty"`
	Keys         KeysConfig             `yaml:"keys,omitempty"`
	Themes       map[string]ThemeConfig `yaml:"themes,omitempty"`
}

// ThemeSelection names the active theme.
type ThemeSelection struct {
	Default string `yaml:"default,omitempty"`
}

// KeysConfig overrides browsing key bindings per keymap (action name -> key).
type KeysConfig struct {
	Vim   map[string]string `yaml:"vim,omitempty"`
	Emacs map[string]string `yaml:"emacs,omitempty"`
}

// CacheConfig controls how the cache file is located and read.
type CacheConfig struct {
	FileName string `yaml:"file_name,omitempty"`
	Strict   *bool  `yaml:"strict,omitempty"`
}

// ListConfig controls `ccx list`.
type ListConfig struct {
	Output string `yaml:"output,omitempty"`
	// FilterExamples are shown in `ccx list --help`.
	FilterExamples []string `yaml:"filter_examples,omitempty"`
}

// ColorValue is an ANSI index ("81") or hex ("#5fd7ff") color.
type ColorValue string

// ThemeConfig is the YAML form of a Theme.
type ThemeConfig struct {
	NameColor     ColorValue `yaml:"name_color,omitempty"`
	ValueColor    ColorValue `yaml:"value_color,omitempty"`
	TypeColor     ColorValue `yaml:"type_color,omitempty"`
	ModifiedColor ColorValue `yaml:"modified_color,omitempty"`
	HeaderFG      ColorValue `yaml:"header_fg,omitempty"`
	HeaderBG      ColorValue `yaml:"header_bg,omitempty"`
	SelectedFG    ColorValue `yaml:"selected_fg,omitempty"`
	SelectedBG    ColorValue `yaml:"selected_bg,omitempty"`
	BorderColor   ColorValue `yaml:"border_color,omitempty"`
	StatusColor   ColorValue `yaml:"status_color,omitempty"`
	StatusError   ColorValue `yaml:"status_error,omitempty"`
	FooterFG      ColorValue `yaml:"footer_fg,omitempty"`
	FooterBG      ColorValue `yaml:"footer_bg,omitempty"`
	HelpKey       ColorValue `yaml:"help_key,omitempty"`
	HelpValue     ColorValue `yaml:"help_value,omitempty"`
}

// BoolValue dereferences an optional bool with a fallback.
func BoolValue(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
