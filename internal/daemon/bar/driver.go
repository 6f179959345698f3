package bar

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/UndeadLeech/bar-helpers/internal/daemon/blocks"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/wm"
	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// DefaultInterval is the time between two bar lines.
const DefaultInterval = 100 * time.Millisecond

// State is the lifecycle state of a driver.
type State int32

// Driver states.
const (
	StateStarting State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a Driver.
type Options struct {
	Screen      models.Screen
	ScreenCount int
	Config      *models.Config

	BarPath            string        // lemonbar binary
	Interval           time.Duration // defaults to DefaultInterval
	Mixer              string        // amixer binary
	NotificationSocket string        // defaults to blocks.NotificationSocket

	// Dial connects to the window manager; defaults to wm.DialI3.
	Dial wm.DialFunc
	// Now, Volume and Notifications default to the real clock and probes.
	Now           func() time.Time
	Volume        func(ctx context.Context) (string, error)
	Notifications func(ctx context.Context) (string, error)
}

// Driver renders and feeds one screen's bar.
type Driver struct {
	opts     Options
	renderer *blocks.Renderer
	state    atomic.Int32

	conn  wm.Client
	power string // static, rendered once

	// Failures are logged when they start and when they clear, not per tick.
	wmDown      bool
	writeFailed bool
}

// NewDriver creates a driver in the Starting state.
func NewDriver(opts Options) *Driver {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.ScreenCount <= 0 {
		opts.ScreenCount = 1
	}
	if opts.Dial == nil {
		opts.Dial = wm.DialI3
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Volume == nil {
		mixer := opts.Mixer
		opts.Volume = func(ctx context.Context) (string, error) {
			return blocks.QueryVolume(ctx, mixer)
		}
	}
	if opts.Notifications == nil {
		socket := opts.NotificationSocket
		opts.Notifications = func(ctx context.Context) (string, error) {
			return blocks.ProbeNotifications(ctx, socket)
		}
	}

	renderer := blocks.NewRenderer(opts.Screen.Name, opts.Config)
	return &Driver{
		opts:     opts,
		renderer: renderer,
		power:    renderer.Power(),
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return State(d.state.Load())
}

func (d *Driver) setState(s State) {
	d.state.Store(int32(s))
	d.logf("%s", s)
}

// BarArgs returns the lemonbar command line for this screen.
func (d *Driver) BarArgs() []string {
	c := d.opts.Config
	return []string{
		"-g", d.opts.Screen.Geometry(c.General.Height),
		"-F", c.Colors.Foreground,
		"-B", c.Colors.Background,
		"-f", c.General.Font,
		"-f", c.General.IconFont,
	}
}

// Run starts the bar and feeds it until ctx is done. Startup failures (no
// window manager connection, bar cannot be spawned) are returned; once
// running, every failure is absorbed and Run returns nil on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	d.setState(StateStarting)

	conn, err := d.opts.Dial()
	if err != nil {
		d.setState(StateTerminated)
		return fmt.Errorf("screen %s: %w", d.opts.Screen.Name, err)
	}
	d.conn = conn

	proc, err := StartProcess(ProcessOptions{
		Screen: d.opts.Screen.Name,
		Path:   d.opts.BarPath,
		Args:   d.BarArgs(),
	})
	if err != nil {
		_ = d.conn.Close()
		d.setState(StateTerminated)
		return fmt.Errorf("screen %s: %w", d.opts.Screen.Name, err)
	}

	actions := NewActions(d.opts.Screen.Name, io.Discard, os.Stderr)
	go func() {
		if err := actions.Run(ctx, proc.Stdout()); err != nil && ctx.Err() == nil {
			d.logf("action relay stopped: %v", err)
		}
	}()

	go d.watchBar(ctx, proc)

	d.setState(StateRunning)

	d.loop(ctx, proc)

	proc.Stop()
	if d.conn != nil {
		_ = d.conn.Close()
	}
	d.setState(StateTerminated)
	return nil
}

// watchBar logs a bar that exits on its own. The tick loop keeps running;
// its writes fail until shutdown.
func (d *Driver) watchBar(ctx context.Context, proc *Process) {
	select {
	case <-ctx.Done():
	case <-proc.Done():
		if ctx.Err() == nil {
			d.logf("bar exited after %s: %v", time.Since(proc.StartedAt()).Round(time.Second), proc.ExitErr())
		}
	}
}

// loop writes one line per tick to w until ctx is done.
func (d *Driver) loop(ctx context.Context, w io.Writer) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		d.write(w, d.Tick(ctx))
		timer.Reset(d.opts.Interval)
	}
}

func (d *Driver) write(w io.Writer, line string) {
	_, err := io.WriteString(w, line)
	switch {
	case err != nil && !d.writeFailed:
		d.writeFailed = true
		d.logf("bar write failed: %v", err)
	case err == nil && d.writeFailed:
		d.writeFailed = false
		d.logf("bar writes recovered")
	}
}

// Tick polls every source once and composes a line. It never fails: a
// source that cannot be read renders as an empty fragment.
func (d *Driver) Tick(ctx context.Context) string {
	workspaces, conn, err := wm.Fetch(d.conn, d.opts.Dial)
	d.conn = conn
	switch {
	case err != nil && !d.wmDown:
		d.wmDown = true
		d.logf("workspace fetch failed: %v", err)
	case err == nil && d.wmDown:
		d.wmDown = false
		d.logf("workspace fetch recovered")
	}

	var volume, notification string
	if out, err := d.opts.Volume(ctx); err == nil {
		volume = d.renderer.Volume(out)
	}
	if resp, err := d.opts.Notifications(ctx); err == nil {
		notification = d.renderer.Notification(resp)
	}

	return Compose(Line{
		Power:        d.power,
		Workspaces:   d.renderer.Workspaces(workspaces, d.opts.ScreenCount),
		Clock:        d.renderer.Clock(d.opts.Now()),
		Notification: notification,
		Volume:       volume,
		Padding:      d.opts.Config.Placeholders.General,
	})
}

func (d *Driver) logf(format string, args ...interface{}) {
	prefix := fmt.Sprintf("[bar:%s] ", d.opts.Screen.Name)
	log.Printf(prefix+format, args...)
}
