package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eltkit/elt/internal/build"
	"github.com/eltkit/elt/internal/dev"
)

func (c *cli) devCmd() *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Build the application, serve the bundle and rebuild on change.

With hot reload on, connected browsers reload after each successful
rebuild, pick up stylesheet changes in place, and show compile errors
in an overlay.

Examples:
  elt dev
  elt dev --port 3000 --host 0.0.0.0
  elt dev --no-reload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if noReload {
				cfg.Dev.HotReload = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := dev.NewServer(dev.Options{
				Config: cfg,
				Logger: c.logger,
				OnBuildComplete: func(res build.BuildResult) {
					if res.Success {
						c.success("Rebuilt in %s", res.Duration.Round(time.Millisecond))
					} else {
						c.warn("Build failed")
					}
				},
				OnReload: func(clients int) {
					c.logger.Debug("reload sent", "clients", clients)
				},
			})

			c.success("Serving %s at %s", cfg.Name, cfg.DevURL())
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides dev.port)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind (overrides dev.host)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable hot reload")
	return cmd
}
