package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UndeadLeech/bar-helpers/internal/config"
)

var flagPrint bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	Long: `Validate the configuration file and report every missing or
invalid key. With --print the effective configuration is written to stdout.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the effective configuration")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(flagConfig)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Err == nil {
			fmt.Println(styleError.Render("✗") + " " + styleValue.Render(path))
			for _, key := range cfgErr.Missing {
				fmt.Printf("    %s %s\n", styleLabel.Render("missing"), styleValue.Render(key))
			}
			for _, key := range cfgErr.Invalid {
				fmt.Printf("    %s %s\n", styleLabel.Render("invalid"), styleValue.Render(key))
			}
		}
		return err
	}

	fmt.Println(styleSuccess.Render("✓") + " " + styleValue.Render(path))
	fmt.Printf("    %s %s\n", styleLabel.Render("workspace slots"), styleValue.Render(fmt.Sprint(len(cfg.WorkspaceGlyphs()))))
	if cfg.Exec.Notification == "" {
		fmt.Printf("    %s\n", styleHint.Render("exec.notification not set: notification indicator disabled"))
	}

	if flagPrint {
		data, err := config.Marshal(config.FormatOf(path), cfg)
		if err != nil {
			return err
		}
		fmt.Println()
		_, _ = os.Stdout.Write(data)
	}
	return nil
}
