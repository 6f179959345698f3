package bar

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// stopGrace is how long Stop waits after SIGTERM before killing.
const stopGrace = 5 * time.Second

// ProcessOptions contains options for starting a bar process.
type ProcessOptions struct {
	Screen string
	Path   string // lemonbar binary; empty means lookup in PATH
	Args   []string
}

// Process manages one lemonbar subprocess. The driver goroutine writes bar
// lines to its stdin while the action relay reads its stdout; the two never
// touch the same stream.
type Process struct {
	screen      string
	cmd         *exec.Cmd
	stdin       io.WriteCloser
	stdout      *os.File
	done        chan struct{}
	exitErr     error
	cleanupOnce sync.Once
	startedAt   time.Time
}

// StartProcess spawns the bar with piped stdin and stdout.
func StartProcess(opts ProcessOptions) (*Process, error) {
	path := opts.Path
	if path == "" {
		path = "lemonbar"
	}

	cmd := exec.Command(path, opts.Args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	// A plain pipe keeps cmd.Wait from closing the read end under the relay.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	cmd.Stdout = stdoutW

	if err := cmd.Start(); err != nil {
		_ = stdoutR.Close()
		_ = stdoutW.Close()
		return nil, fmt.Errorf("failed to start %s: %w", path, err)
	}
	_ = stdoutW.Close()

	p := &Process{
		screen:    opts.Screen,
		cmd:       cmd,
		stdin:     stdin,
		stdout:    stdoutR,
		done:      make(chan struct{}),
		startedAt: time.Now().UTC(),
	}

	go p.wait()

	return p, nil
}

func (p *Process) wait() {
	p.exitErr = p.cmd.Wait()
	close(p.done)
}

// Write sends bar input. Writes after the bar has exited return an error.
func (p *Process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Stdout returns the bar's output stream (click actions).
func (p *Process) Stdout() io.Reader {
	return p.stdout
}

// Stop terminates the bar. Sends SIGTERM, waits stopGrace, then SIGKILL.
func (p *Process) Stop() {
	if p.cmd.Process == nil {
		return
	}

	_ = p.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-p.done:
		p.Cleanup()
		return
	case <-time.After(stopGrace):
	}

	p.logf("bar ignored SIGTERM for %s, killing", stopGrace)
	_ = p.cmd.Process.Kill()
	<-p.done
	p.Cleanup()
}

// Cleanup releases the pipes. Safe to call multiple times.
func (p *Process) Cleanup() {
	p.cleanupOnce.Do(func() {
		_ = p.stdin.Close()
		_ = p.stdout.Close()
	})
}

// Done returns a channel that is closed when the process exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the process exit error (nil if exited cleanly). Only
// valid once Done is closed.
func (p *Process) ExitErr() error {
	return p.exitErr
}

// StartedAt returns when the process was started.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

func (p *Process) logf(format string, args ...interface{}) {
	prefix := fmt.Sprintf("[bar:%s] ", p.screen)
	log.Printf(prefix+format, args...)
}
