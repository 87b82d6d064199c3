// Package main runs the checkers HTTP API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/engine"
	"checkers/internal/logging"
	"checkers/internal/processor"
	"checkers/internal/service"
	"checkers/internal/transport/http"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	// Flags (env fallbacks)
	var (
		apiHost = flag.String("api-host", getenv("CHECKERS_HOST", "localhost"), "API server host")
		apiPort = flag.Int("api-port", getenvInt("CHECKERS_PORT", 8080), "API server port")
		dev     = flag.Bool("dev", getenb("CHECKERS_DEV", false), "Development mode (relaxed rate limits)")
		delay   = flag.Duration("computer-delay", getenvDuration("CHECKERS_COMPUTER_DELAY", processor.DefaultComputerDelay), "Pause before each computer move")
		workers = flag.Int("workers", getenvInt("CHECKERS_WORKERS", processor.DefaultWorkers), "Computer move workers")
		seed    = flag.Uint64("seed", 0, "Computer move seed (0 = time based)")
		debug   = flag.Bool("debug", getenb("CHECKERS_DEBUG", false), "Debug logging")
		pidPath = flag.String("pid", "", "Optional path to write PID file")
		pidLock = flag.Bool("pid-lock", false, "Lock PID file to allow only one instance (requires -pid)")
	)
	flag.Parse()

	logging.Setup(os.Stderr, *debug)

	// Validate PID flags
	if *pidLock && *pidPath == "" {
		log.Fatal().Msg("-pid-lock flag requires the -pid flag to be set")
	}

	if *pidPath != "" {
		pf, err := acquirePIDFile(*pidPath, *pidLock)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to manage PID file")
		}
		defer pf.Release()
		log.Info().Str("path", *pidPath).Bool("lock", *pidLock).Msg("PID file created")
	}

	svc := service.New()
	proc := processor.New(svc, engine.NewRandom(*seed), processor.Config{
		Workers:       *workers,
		ComputerDelay: *delay,
	})
	app := http.NewFiberApp(proc, svc, *dev)

	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)

	go func() {
		log.Info().
			Str("addr", "http://"+apiAddr).
			Str("games", fmt.Sprintf("http://%s/api/v1/games", apiAddr)).
			Dur("computer_delay", *delay).
			Int("workers", *workers).
			Bool("dev", *dev).
			Msg("checkers API server starting")

		if err := app.Listen(apiAddr); err != nil {
			log.Error().Err(err).Msg("API server listen error")
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	// Stop computer workers before dropping games
	if err := proc.Close(); err != nil {
		log.Warn().Err(err).Msg("processor close error")
	}

	if err := svc.Shutdown(gracefulShutdownTimeout); err != nil {
		log.Warn().Err(err).Msg("service shutdown error")
	}

	log.Info().Msg("server exited")
}
