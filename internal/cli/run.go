package cli

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/UndeadLeech/bar-helpers/internal/daemon"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/screens"
)

func runBar(cmd *cobra.Command, args []string) error {
	backend, err := screens.Lookup(flagScreens)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = daemon.Run(ctx, daemon.Options{
		ConfigPath: flagConfig,
		Screens:    backend,
		BarPath:    flagBar,
		Interval:   flagInterval,
	})
	if ctx.Err() != nil {
		log.Println("Received signal, bars stopped")
	}
	return err
}
