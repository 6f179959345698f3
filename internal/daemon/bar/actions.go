package bar

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Actions executes the click scripts lemonbar prints on its stdout. Each
// line is parsed and run as a POSIX shell script on its own runner, so a
// long-running foreground command never delays the next click.
type Actions struct {
	screen string
	stdout io.Writer
	stderr io.Writer
	wg     sync.WaitGroup
}

// NewActions creates an interpreter whose scripts write to stdout and stderr.
func NewActions(screen string, stdout, stderr io.Writer) *Actions {
	return &Actions{screen: screen, stdout: stdout, stderr: stderr}
}

// Run executes every line read from r until r is exhausted or ctx is done.
// Script failures are logged and never stop the relay.
func (a *Actions) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		script := strings.TrimSpace(scanner.Text())
		if script == "" {
			continue
		}

		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := a.Exec(ctx, script); err != nil {
				a.logf("action %q: %v", script, err)
			}
		}()
	}
	return scanner.Err()
}

// Exec parses and runs one script. Scripts are not cancelled with ctx, so
// popups started from the bar outlive it.
func (a *Actions) Exec(ctx context.Context, script string) error {
	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	runner, err := interp.New(interp.StdIO(nil, a.stdout, a.stderr))
	if err != nil {
		return fmt.Errorf("failed to create shell: %w", err)
	}
	return runner.Run(context.WithoutCancel(ctx), file)
}

// Wait blocks until every started script has returned.
func (a *Actions) Wait() {
	a.wg.Wait()
}

func (a *Actions) logf(format string, args ...interface{}) {
	prefix := fmt.Sprintf("[bar:%s] ", a.screen)
	log.Printf(prefix+format, args...)
}
