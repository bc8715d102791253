package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pallet-returns-dashboard/internal/api/routes"
	"pallet-returns-dashboard/internal/dashboard"
	"pallet-returns-dashboard/internal/s3"
	"pallet-returns-dashboard/internal/socket"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Khởi tạo S3 uploader nếu đã cấu hình
	var uploader *s3.Uploader
	if a.cfg.S3.Enabled() {
		uploader, err = s3.NewUploader(a.cfg.S3)
		if err != nil {
			return err
		}
		a.log.WithField("bucket", a.cfg.S3.Bucket).Info("Report exports go to S3")
	}

	router := routes.SetupRouter(a.cfg, routes.Deps{
		Store:      a.store,
		S3Uploader: uploader,
		Hub:        socket.NewHub(a.log),
		Dashboard:  dashboard.NewClient(a.cfg.Dashboard.APIBaseURL),
		Log:        a.log,
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("Starting API server on port %s", a.cfg.Server.Port)
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

	a.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
