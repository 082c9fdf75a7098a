package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <new-username>",
		Short: "Move the profile document to a new username",
		Long:  "Fails without touching any file when the source does not exist or the destination is already taken.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.User == "" {
				return writeErr(cmd, errors.New("rename requires --user (the default profile has no username)"))
			}
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ed.Rename(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"username": ed.Username()}})
		},
	}
}
