package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/api"
	"github.com/san-kum/stockout/internal/config"
)

var (
	addr           string
	origins        []string
	requestTimeout time.Duration
	release        bool
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $"+config.EnvAddr+" or "+config.DefaultAddr+")")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins (default any)")
	cmd.Flags().DurationVar(&requestTimeout, "timeout", api.DefaultTimeout, "per-request simulation timeout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel sweep runs per request (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&release, "release", false, "run gin in release mode")
	return cmd
}

func serve(cmd *cobra.Command, args []string) error {
	if addr == "" {
		addr = config.Addr()
	}
	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.Options{
		Logger:  logger,
		Timeout: requestTimeout,
		Origins: origins,
		Workers: workers,
	})
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
