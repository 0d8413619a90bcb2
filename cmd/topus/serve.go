package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/topus-dev/topus/internal/preview"
	"github.com/topus-dev/topus/pkg/render"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve page.yaml",
		Short: "Preview a page with live reload",
		Long: `Serve a page file over HTTP, rendering it on every request.

Connected browsers reload when the file changes, and show the
error in an overlay when the file is invalid.

Examples:
  topus serve page.yaml
  topus serve page.yaml --port=8080
  topus serve page.yaml --host=0.0.0.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if port != 0 {
				e.cfg.Preview.Port = port
			}
			if host != "" {
				e.cfg.Preview.Host = host
			}
			if err := e.cfg.Validate(); err != nil {
				return err
			}

			srv, err := preview.NewServer(preview.Options{
				Config:   e.cfg,
				PagePath: args[0],
				Renderer: render.NewRenderer(render.RendererConfig{
					Logger:   e.logger,
					Observer: e.metrics,
				}),
				Gatherer: e.registry,
				Metrics:  e.metrics,
				Logger:   e.logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Serving %s at %s", args[0], e.cfg.PreviewURL())
			if !e.cfg.ReloadEnabled() {
				warn(out, "Live reload is disabled in topus.json")
			}
			info(out, "Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from topus.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from topus.json)")

	return cmd
}
