package config

import (
	"fmt"
	"strings"
)

// ConfigError reports a configuration file that cannot be used. Either Err
// is set (unreadable or unparsable file) or Missing/Invalid list every
// offending key.
type ConfigError struct {
	Path    string
	Err     error
	Missing []string
	Invalid []string
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}

	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("config %s: %s", e.Path, strings.Join(parts, "; "))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
