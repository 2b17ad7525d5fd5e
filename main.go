package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("finance-tracker starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if envConfig.RunMigrations {
		if err := storage.RunMigrations(envConfig.PostgresURL(), logger); err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
	}

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenManager(envConfig.JWTSecret, envConfig.TokenTTL)
	svc := service.NewService(dbStorage, delegator, tokens)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
			DB:      dbStorage.DB,
		}
		return httpRest.Serve(groupCtx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("finance-tracker stopped with error")
		return
	}
	logger.Info("finance-tracker stopped")
}
