// Package daemon runs one bar driver per connected screen.
package daemon

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/UndeadLeech/bar-helpers/internal/config"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/bar"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/screens"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/wm"
	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Options configures Run.
type Options struct {
	ConfigPath string          // empty means config.DefaultPath
	Screens    screens.Backend // defaults to xrandr
	BarPath    string
	Interval   time.Duration
	Dial       wm.DialFunc
}

// Run discovers screens, loads the configuration once and drives one bar
// per screen until ctx is done. No screens means nothing to do. A
// configuration error is returned before any bar starts; a driver that
// fails to start does not stop the others.
func Run(ctx context.Context, opts Options) error {
	backend := opts.Screens
	if backend == nil {
		backend = screens.Xrandr{}
	}

	found := backend.Discover(ctx)
	if len(found) == 0 {
		log.Printf("No connected screens found (%s)", backend.Name())
		return nil
	}

	path, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	drivers := NewDrivers(found, cfg, opts)

	var g errgroup.Group
	for i, d := range drivers {
		name := found[i].Name
		g.Go(func() error {
			if err := d.Run(ctx); err != nil {
				log.Printf("Bar on %s failed to start: %v", name, err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// NewDrivers creates one driver per screen sharing a configuration snapshot.
func NewDrivers(found []models.Screen, cfg *models.Config, opts Options) []*bar.Driver {
	drivers := make([]*bar.Driver, 0, len(found))
	for _, s := range found {
		drivers = append(drivers, bar.NewDriver(bar.Options{
			Screen:      s,
			ScreenCount: len(found),
			Config:      cfg,
			BarPath:     opts.BarPath,
			Interval:    opts.Interval,
			Dial:        opts.Dial,
		}))
	}
	return drivers
}
