package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	tweets "github.com/willmanchac/tweetsClassifier"
	"github.com/willmanchac/tweetsClassifier/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a saved model over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}

			srv, model, err := a.newHTTPServer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("model", model.Name))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	addModelDirFlag(cmd, a)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env HTTP_ADDR)")
	return cmd
}

// newHTTPServer loads the configured model and wraps it in an http.Server
// that is ready to listen on the configured address.
func (a *app) newHTTPServer() (*http.Server, *tweets.Model, error) {
	model, err := tweets.ModelFromDisk(a.cfg.ModelDir)
	if err != nil {
		return nil, nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           server.NewRouter(server.NewAPI(model, a.logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, model, nil
}
