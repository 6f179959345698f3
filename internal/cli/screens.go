package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UndeadLeech/bar-helpers/internal/daemon/screens"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the connected screens a bar would start on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := screens.Lookup(flagScreens)
		if err != nil {
			return err
		}

		found := backend.Discover(cmd.Context())
		if len(found) == 0 {
			fmt.Println(styleWarning.Render("No connected screens found") + " " + styleHint.Render("("+backend.Name()+")"))
			return nil
		}

		for _, s := range found {
			fmt.Printf("  %s  %s  %s\n",
				styleBrand.Render(fmt.Sprintf("%-10s", s.Name)),
				styleValue.Render(fmt.Sprintf("%dx%d", s.Width, s.Height)),
				styleHint.Render(fmt.Sprintf("+%d+%d", s.X, s.Y)),
			)
		}
		return nil
	},
}
