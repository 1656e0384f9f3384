package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campuslife/internal/ui"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "campuslife",
		Short:         "Campus Life: a four-year college life simulator",
		Long:          "Campus Life plays the college simulator in the terminal and checks content bundles.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().String("content", "", "content directory (default $CONTENT_DIR or ./content)")

	cmd.AddCommand(
		newPlayCmd(),
		newValidateCmd(),
		newCharactersCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
