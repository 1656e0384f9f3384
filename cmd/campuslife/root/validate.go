package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"campuslife/internal/content"
	"campuslife/internal/ui"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a content directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, cfg, err := openBundle(cmd)
			out := cmd.OutOrStdout()
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(out, ui.Heading(ui.IconWarn, "Content problems in "+cfg.ContentDir))
				for _, p := range verr.Problems {
					fmt.Fprintln(out, "- "+ui.Bad.Render(p))
				}
				return fmt.Errorf("%d problems", len(verr.Problems))
			}
			if err != nil {
				return err
			}

			questions := 0
			for _, qs := range b.MainQuestions {
				questions += len(qs)
			}
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Content OK"))
			fmt.Fprintln(out, ui.LabelValue("Directory", cfg.ContentDir))
			fmt.Fprintln(out, ui.LabelValue("Characters", len(b.Characters)))
			fmt.Fprintln(out, ui.LabelValue("Main questions", questions))
			fmt.Fprintln(out, ui.LabelValue("Side quest questions", fmt.Sprintf("romance %d+%d, internship %d, study abroad %d",
				len(b.SideQuests.LoveA), len(b.SideQuests.LoveB), len(b.SideQuests.Intern), len(b.SideQuests.StudyAbroad))))
			return nil
		},
	}
	return cmd
}
