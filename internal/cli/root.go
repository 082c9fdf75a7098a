package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliCHECK24/terminal-portfolio/internal/editor"
	"github.com/oliCHECK24/terminal-portfolio/internal/format"
	"github.com/oliCHECK24/terminal-portfolio/internal/store"
	"github.com/oliCHECK24/terminal-portfolio/internal/tui"
)

type App struct {
	Dir        string
	User       string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Terminal-portfolio content editor (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor for a profile
  portfolio --user oli

  # Scriptable commands
  portfolio options list --user oli
  portfolio options move 0 2 --user oli

  # Serve the read-only preview
  portfolio web --addr :8087
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("PORTFOLIO_DIR", ""), "Path to the data dir (default: ~/.portfolio)")
	cmd.PersistentFlags().StringVar(&app.User, "user", envOr("PORTFOLIO_USER", ""), "Profile username (empty: the default/template profile)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PORTFOLIO_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newRenameCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newWebCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s, app.User)
}

func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

// loadEditor opens the store and loads the bound profile's option list.
func loadEditor(app *App) (*editor.List, store.Store, error) {
	s, err := openStore(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	ed := editor.NewList(s, app.User)
	if err := ed.Load(); err != nil {
		return nil, s, err
	}
	return ed, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
