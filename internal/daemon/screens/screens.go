// Package screens discovers connected monitors and their geometry.
package screens

import (
	"context"
	"fmt"
	"sort"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Backend discovers screens. Implementations never fail: an unavailable
// display system yields an empty slice.
type Backend interface {
	Name() string
	Discover(ctx context.Context) []models.Screen
}

// Backend names accepted by Lookup.
const (
	BackendXrandr = "xrandr"
	BackendRandR  = "randr"
)

var backends = map[string]Backend{
	BackendXrandr: Xrandr{},
	BackendRandR:  RandR{},
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown screen backend %q (valid: %v)", name, Names())
	}
	return b, nil
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
