// Package cli implements the undeadlemon commands.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/UndeadLeech/bar-helpers/internal/daemon/bar"
	"github.com/UndeadLeech/bar-helpers/internal/daemon/screens"
)

var (
	flagConfig   string
	flagScreens  string
	flagBar      string
	flagInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "undeadlemon",
	Short: "Feed per-monitor lemonbar status lines for i3",
	Long: `undeadlemon starts one lemonbar per connected monitor and feeds it
workspaces, the clock, volume and notification state every tick.
Clicks on the bar are executed as shell commands.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBar,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Configuration file (default ~/.config/undeadlemon.toml)")
	rootCmd.PersistentFlags().StringVar(&flagScreens, "screens", screens.BackendXrandr, "Screen discovery backend (xrandr or randr)")

	rootCmd.Flags().StringVar(&flagBar, "bar", "lemonbar", "Bar binary")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", bar.DefaultInterval, "Time between bar updates")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(versionCmd)
}
