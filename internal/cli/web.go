package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oliCHECK24/terminal-portfolio/internal/web"
)

func newWebCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the read-only profile preview over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			srv, err := web.NewServer(web.ServerConfig{Addr: addr, Store: s})
			if err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envOr("PORTFOLIO_ADDR", "127.0.0.1:8087"), "Listen address")
	return cmd
}
