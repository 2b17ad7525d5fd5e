package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/goal"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transfer"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	DB      status.Pinger
}

type registrar interface {
	Register(api huma.API)
}

// Handler builds the HTTP handler serving /status and every v1 operation.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Finance Tracker API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: auth.NewSecurityScheme(),
	}
	api := humago.New(mux, config)
	api.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		auth.Middleware(api, r.Service.Users),
	)

	svc := r.Service
	handlers := []registrar{
		analytics.NewGetBalanceHandler(svc.Analytics),
		analytics.NewGetExpensesByCategoryHandler(svc.Analytics),
		analytics.NewGetMonthlyStatsHandler(svc.Analytics),

		user.NewRegisterHandler(svc.Users),
		user.NewLoginHandler(svc.Users),
		user.NewMeHandler(svc.Users),

		category.NewCreateCategoryHandler(svc.Categories),
		category.NewListCategoriesHandler(svc.Categories),
		category.NewGetCategoryHandler(svc.Categories),
		category.NewUpdateCategoryHandler(svc.Categories),
		category.NewDeleteCategoryHandler(svc.Categories),

		transaction.NewCreateTransactionHandler(svc.Transactions),
		transaction.NewListTransactionsHandler(svc.Transactions),
		transaction.NewGetTransactionHandler(svc.Transactions),
		transaction.NewUpdateTransactionHandler(svc.Transactions),
		transaction.NewDeleteTransactionHandler(svc.Transactions),

		transfer.NewExportCSVHandler(svc.Transfer),
		transfer.NewImportCSVHandler(svc.Transfer),

		goal.NewCreateGoalHandler(svc.Goals),
		goal.NewListGoalsHandler(svc.Goals),
		goal.NewGetGoalHandler(svc.Goals),
		goal.NewUpdateGoalHandler(svc.Goals),
		goal.NewDeleteGoalHandler(svc.Goals),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return mux
}

// Serve listens until ctx is cancelled and then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
