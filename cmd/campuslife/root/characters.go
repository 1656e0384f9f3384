package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"campuslife/internal/content"
	"campuslife/internal/ui"
)

func newCharactersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List playable characters and their starting stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := openBundle(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCampus, "Characters"))
			for _, c := range b.Characters {
				status := ui.Muted.Render("single")
				if c.InRelationship {
					status = ui.Good.Render("in a relationship")
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(c.ID), c.Name, status)
				if c.Description != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(c.Description))
				}
				var stats []any
				for _, a := range content.Attributes {
					stats = append(stats, ui.AttributeIcon(string(a)), b.Config.AttributeName(a), c.Stats.Get(a))
				}
				fmt.Fprintf(out, "  %s %s %g  %s %s %g  %s %s %g  %s %s %g\n", stats...)
			}
			return nil
		},
	}
	return cmd
}
