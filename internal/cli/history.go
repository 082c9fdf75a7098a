package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var all bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the edit history of a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			profile := app.User
			if all {
				profile = ""
			}
			evs, err := s.ReadEvents(cmd.Context(), profile, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max events to return (0: all)")
	cmd.Flags().BoolVar(&all, "all", false, "Events for every profile, not just --user")
	return cmd
}
