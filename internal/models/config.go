package models

// GeneralConfig holds the [general] section of the configuration file.
type GeneralConfig struct {
	Height         int    `toml:"height" yaml:"height"`
	PowerIcon      string `toml:"power_icon" yaml:"power_icon"`
	Font           string `toml:"font" yaml:"font"`
	IconFont       string `toml:"icon_font" yaml:"icon_font"`
	WorkspaceIcons string `toml:"workspace_icons" yaml:"workspace_icons"` // one glyph per slot
}

// Placeholders holds the padding strings wrapped around each fragment.
type Placeholders struct {
	General      string `toml:"general" yaml:"general"`
	Power        string `toml:"power" yaml:"power"`
	Workspace    string `toml:"workspace" yaml:"workspace"`
	Clock        string `toml:"clock" yaml:"clock"`
	Volume       string `toml:"volume" yaml:"volume"`
	Notification string `toml:"notification,omitempty" yaml:"notification,omitempty"`
}

// Palette holds lemonbar color tokens. Values are passed through untouched.
type Palette struct {
	Background          string `toml:"background_color" yaml:"background_color"`
	BackgroundSecondary string `toml:"background_secondary" yaml:"background_secondary"`
	Foreground          string `toml:"foreground_color" yaml:"foreground_color"`
	ForegroundSecondary string `toml:"foreground_secondary" yaml:"foreground_secondary"`
	Highlight           string `toml:"highlight_color" yaml:"highlight_color"`
}

// Commands holds the command templates bound to clickable fragments.
type Commands struct {
	Power           string `toml:"power" yaml:"power"`
	Volume          string `toml:"volume" yaml:"volume"`
	SwitchWorkspace string `toml:"switch_focused_workspace" yaml:"switch_focused_workspace"`
	Notification    string `toml:"notification,omitempty" yaml:"notification,omitempty"`
}

// Config is a complete configuration snapshot.
// This corresponds to ~/.config/undeadlemon.toml.
type Config struct {
	General      GeneralConfig `toml:"general" yaml:"general"`
	Placeholders Placeholders  `toml:"placeholders" yaml:"placeholders"`
	Colors       Palette       `toml:"colors" yaml:"colors"`
	Exec         Commands      `toml:"exec" yaml:"exec"`
}

// WorkspaceGlyphs returns the configured workspace icons, one per slot.
func (c *Config) WorkspaceGlyphs() []string {
	glyphs := make([]string, 0, len(c.General.WorkspaceIcons))
	for _, r := range c.General.WorkspaceIcons {
		glyphs = append(glyphs, string(r))
	}
	return glyphs
}

// NewConfig creates a configuration with default values, used when writing
// a starter file.
func NewConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Height:         20,
			PowerIcon:      "\uf011",
			Font:           "DejaVu Sans Mono:size=10",
			IconFont:       "FontAwesome:size=10",
			WorkspaceIcons: "12345",
		},
		Placeholders: Placeholders{
			General:      " ",
			Power:        "  ",
			Workspace:    "  ",
			Clock:        "  ",
			Volume:       "  ",
			Notification: "  ",
		},
		Colors: Palette{
			Background:          "#FF1D1F21",
			BackgroundSecondary: "#FF373B41",
			Foreground:          "#FFC5C8C6",
			ForegroundSecondary: "#FF707880",
			Highlight:           "#FFCC6666",
		},
		Exec: Commands{
			Power:           "power-menu",
			Volume:          "volume-slider",
			SwitchWorkspace: "i3-msg workspace",
		},
	}
}
