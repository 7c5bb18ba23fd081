package httpserver

import (
	"context"

	balanceHTTP "mentalbank/internal/balance/delivery/http"
	balanceSqlite "mentalbank/internal/balance/repository/sqlite"
	balanceUC "mentalbank/internal/balance/usecase"
	goalHTTP "mentalbank/internal/goal/delivery/http"
	goalSqlite "mentalbank/internal/goal/repository/sqlite"
	goalUC "mentalbank/internal/goal/usecase"
	"mentalbank/internal/middleware"
	reportHTTP "mentalbank/internal/report/delivery/http"
	reportUC "mentalbank/internal/report/usecase"
	syncHTTP "mentalbank/internal/sync/delivery/http"
	syncUC "mentalbank/internal/sync/usecase"
	taskHTTP "mentalbank/internal/task/delivery/http"
	taskSqlite "mentalbank/internal/task/repository/sqlite"
	taskUC "mentalbank/internal/task/usecase"
	transferHTTP "mentalbank/internal/transfer/delivery/http"
	transferSqlite "mentalbank/internal/transfer/repository/sqlite"
	transferUC "mentalbank/internal/transfer/usecase"
)

// registerDomainRoutes wires every domain: repository → usecase → handler →
// routes, all under /api/v1. Repositories are shared where a usecase reads
// across domains (reports, balance, transfer).
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.cfg)
	api := srv.gin.Group("/api/v1")
	api.Use(mw.RateLimit(), mw.Metrics())

	// task domain
	taskRepo := taskSqlite.New(srv.db, srv.l)
	taskUsecase := taskUC.New(taskRepo, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUsecase), mw)

	// goal domain (publishes calendar-sync events when configured)
	goalRepo := goalSqlite.New(srv.db, srv.l)
	goalUsecase := goalUC.New(goalRepo, srv.publisher, srv.l)
	goalHTTP.RegisterRoutes(api, goalHTTP.New(srv.l, goalUsecase), mw)

	// report domain reads across task and goal stores
	reportUsecase := reportUC.New(taskRepo, goalRepo, srv.l)
	reportHTTP.RegisterRoutes(api, reportHTTP.New(srv.l, reportUsecase), mw)

	// balance domain derives from the task ledger
	balanceRepo := balanceSqlite.New(srv.db, srv.l)
	balanceUsecase := balanceUC.New(balanceRepo, taskRepo, srv.l)
	balanceHTTP.RegisterRoutes(api, balanceHTTP.New(srv.l, balanceUsecase), mw)

	// transfer domain exports/imports the whole data set
	transferRepo := transferSqlite.New(srv.db, srv.l)
	transferUsecase := transferUC.New(transferRepo, taskRepo, balanceRepo, srv.l)
	transferHTTP.RegisterRoutes(api, transferHTTP.New(srv.l, transferUsecase), mw)

	// sync domain enqueues calendar resyncs
	syncUsecase := syncUC.New(srv.publisher, srv.l)
	syncHTTP.RegisterRoutes(api, syncHTTP.New(srv.l, syncUsecase), mw)

	srv.l.Infof(ctx, "All domains registered under /api/v1")
	return nil
}
