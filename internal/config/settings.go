package config

import (
	"fmt"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Load reads a complete configuration from path. There is no partial load:
// any unreadable file, syntax error, or missing or mistyped required key
// yields a *ConfigError.
func Load(path string) (*models.Config, error) {
	doc, err := decodeFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return fromDocument(path, doc)
}

// Parse decodes configuration data in the given format.
func Parse(format Format, data []byte) (*models.Config, error) {
	doc, err := decode(format, data)
	if err != nil {
		return nil, &ConfigError{Path: "<" + string(format) + ">", Err: err}
	}
	return fromDocument("<"+string(format)+">", doc)
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg *models.Config) error {
	return saveFile(path, cfg)
}

// Marshal encodes cfg in the given format.
func Marshal(format Format, cfg *models.Config) ([]byte, error) {
	return encode(format, cfg)
}

func fromDocument(path string, doc map[string]any) (*models.Config, error) {
	x := &extractor{doc: doc}

	cfg := &models.Config{
		General: models.GeneralConfig{
			Height:         x.positiveInt("general.height"),
			PowerIcon:      x.str("general.power_icon"),
			Font:           x.str("general.font"),
			IconFont:       x.str("general.icon_font"),
			WorkspaceIcons: x.str("general.workspace_icons"),
		},
		Placeholders: models.Placeholders{
			General:      x.str("placeholders.general"),
			Power:        x.str("placeholders.power"),
			Workspace:    x.str("placeholders.workspace"),
			Clock:        x.str("placeholders.clock"),
			Volume:       x.str("placeholders.volume"),
			Notification: x.optionalStr("placeholders.notification"),
		},
		Colors: models.Palette{
			Background:          x.str("colors.background_color"),
			BackgroundSecondary: x.str("colors.background_secondary"),
			Foreground:          x.str("colors.foreground_color"),
			ForegroundSecondary: x.str("colors.foreground_secondary"),
			Highlight:           x.str("colors.highlight_color"),
		},
		Exec: models.Commands{
			Power:           x.str("exec.power"),
			Volume:          x.str("exec.volume"),
			SwitchWorkspace: x.str("exec.switch_focused_workspace"),
			Notification:    x.optionalStr("exec.notification"),
		},
	}

	if len(x.missing) > 0 || len(x.invalid) > 0 {
		return nil, &ConfigError{Path: path, Missing: x.missing, Invalid: x.invalid}
	}
	return cfg, nil
}

// extractor pulls typed values out of a decoded document and records every
// key it could not satisfy.
type extractor struct {
	doc     map[string]any
	missing []string
	invalid []string
}

func (x *extractor) str(key string) string {
	v, ok := lookup(x.doc, key)
	if !ok {
		x.missing = append(x.missing, key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		x.invalid = append(x.invalid, fmt.Sprintf("%s (want string, got %T)", key, v))
		return ""
	}
	return s
}

func (x *extractor) optionalStr(key string) string {
	if _, ok := lookup(x.doc, key); !ok {
		return ""
	}
	return x.str(key)
}

func (x *extractor) positiveInt(key string) int {
	v, ok := lookup(x.doc, key)
	if !ok {
		x.missing = append(x.missing, key)
		return 0
	}

	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case uint64:
		n = int(t)
	default:
		x.invalid = append(x.invalid, fmt.Sprintf("%s (want integer, got %T)", key, v))
		return 0
	}
	if n <= 0 {
		x.invalid = append(x.invalid, fmt.Sprintf("%s (must be positive, got %d)", key, n))
		return 0
	}
	return n
}
