package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UndeadLeech/bar-helpers/internal/config"
	"github.com/UndeadLeech/bar-helpers/internal/models"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file to ~/.config/undeadlemon.toml
(or the --config path). Existing files are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(flagConfig)
	if err != nil {
		return err
	}

	if config.FileExists(path) && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(path, models.NewConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println(styleSuccess.Render("✓") + " " + styleValue.Render("Wrote "+path))
	fmt.Println("  " + styleHint.Render("Edit the colors and exec commands, then run undeadlemon."))
	return nil
}
