package cli

import (
	"context"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"imgresize/api/rest"
	"os/signal"
	"syscall"
)

func newServeCommand(rt *runtime) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resize API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = rt.cfg.Port
			}
			return serve(cmd.Context(), rt, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default from config)")

	return cmd
}

func serve(ctx context.Context, rt *runtime, port string) error {
	logger := rt.logger.Named("http")
	app := rest.NewApp(rt.cfg, rt.service, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
	}()

	logger.Info("Listening", zap.String("port", port))
	return app.Listen(":" + port)
}
