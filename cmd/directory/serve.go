package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/httpapi"
	"github.com/peoplekit/directory/pkg/logging"
	"github.com/peoplekit/directory/pkg/metrics"
	"github.com/peoplekit/directory/pkg/middleware"
	"github.com/peoplekit/directory/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the directory HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := configuration.Use()
		defer conf.Unload()
		logger := conf.Logger()

		if conf.OpenTelemetry.Enabled {
			shutdownTracing := logging.SetupTracing(
				cmd.Context(),
				conf.OpenTelemetry.ServiceName,
				conf.OpenTelemetry.TempoURL,
			)
			defer shutdownTracing()
		}

		app, store, err := buildApp(conf)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		app.RegisterMiddleware(
			middleware.WithLogger(logger, conf),
			middleware.Cors(conf.AllowedOrigins),
			middleware.ProvideLocalizer(app),
		)
		if conf.Prometheus.Enabled {
			app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
		}

		notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
		})
		notAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
		})
		srv := server.NewHTTPServer(app, notFound, notAllowed)

		errCh := make(chan error, 1)
		go func() {
			logger.WithField("address", conf.SocketAddress).Info("listening")
			errCh <- srv.Start(conf.SocketAddress)
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		case sig := <-stop:
			logger.WithField("signal", sig.String()).Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}
