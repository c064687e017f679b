package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetrace/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
//
// Configuration is read from the environment (MAZETRACE_ADDR, FRONTEND_URL)
// after loading --env-file; flags given on the command line win.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		origins string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("origins") {
				cfg.AllowedOrigins = server.ParseOrigins(origins)
			}

			logger := loggerFromContext(cmd.Context())
			srv, err := server.New(cfg, c.newRunner(), logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&origins, "origins", server.DefaultOrigin, "comma-separated CORS origins")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	return cmd
}
