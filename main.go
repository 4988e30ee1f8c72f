package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/internal/envconf"
	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/pkg/pulsar"
	"github.com/porter-dev/ams-assistant/pkg/server/routes"
)

func main() {
	var envDecoderConf envconf.EnvDecoderConf = envconf.EnvDecoderConf{}

	if err := envdecode.StrictDecode(&envDecoderConf); err != nil {
		logger.NewErrorConsole(true).Fatal().Caller().Msgf("could not decode env conf: %v", err)

		os.Exit(1)
	}

	l := logger.NewConsole(envDecoderConf.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := config.NewRepository(ctx, &envDecoderConf.DBConf, l)

	if err != nil {
		l.Fatal().Caller().Msgf("repository setup failed: %v", err)
	}

	generator, err := config.NewGenerator(ctx, &envDecoderConf.GeneratorConf, l)

	if err != nil {
		l.Fatal().Caller().Msgf("text generator setup failed: %v", err)
	}

	conf, err := config.GetConfig(&envDecoderConf, repo, generator, l)

	if err != nil {
		l.Fatal().Caller().Msgf("server config loading failed: %v", err)
	}

	// evict idle dashboard sessions through pulsar
	if interval := envDecoderConf.SessionConf.SessionSweepInterval; interval > 0 {
		go func() {
			p := pulsar.NewPulsarWithPeriod(interval)

			for range p.Pulsate(ctx) {
				if n := conf.Sessions.Evict(); n > 0 {
					l.Debug().Caller().Msgf("evicted %d idle dashboard sessions", n)
				}
			}
		}()
	}

	if interval := envDecoderConf.HealthCheckConf.HealthCheckInterval; interval > 0 {
		go func() {
			p := pulsar.NewPulsarWithPeriod(interval)

			for range p.Pulsate(ctx) {
				if _, err := conf.HealthChecker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					l.Error().Caller().Msgf("periodic health check exited with error: %v", err)
				}
			}
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", envDecoderConf.ServerPort),
		Handler:           routes.NewRouter(conf),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Caller().Msgf("error shutting down API server: %v", err)
		}
	}()

	l.Info().Caller().Msgf("listening on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error().Caller().Msgf("error starting API server: %v", err)
	}
}
