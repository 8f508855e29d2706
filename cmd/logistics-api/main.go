// @title         Logistics Dashboard API
// @version       0.1.0
// @description   Voyage activity classification, drilling filters, and duplicate detection

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/config"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/logger"
	phttp "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/net/http"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run, and drain in-flight requests on SIGINT/SIGTERM
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case sig := <-quit:
		l.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second))
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
		if err := <-done; err != nil {
			l.Error().Err(err).Msg("http server stopped")
		}
	}
}
