package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/funds-service/internal/funds/bootstrap"
	"github.com/Lexv0lk/funds-service/internal/pkg/env"
	"github.com/Lexv0lk/funds-service/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := env.LoadDotEnv(".env"); err != nil {
		logging.StdoutLogger.Error("failed to load .env file", "error", err.Error())
		os.Exit(1)
	}

	logLevel := "info"
	env.TrySetFromEnv(env.EnvLogLevel, &logLevel)
	defaultLogger := logging.NewTextLogger(os.Stdout, logLevel)

	app := bootstrap.NewFundsApp(bootstrap.LoadFundsConfig(), defaultLogger)

	group, groupCtx := errgroup.WithContext(mainCtx)
	group.Go(func() error {
		return app.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		app.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		defaultLogger.Error("funds service stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
