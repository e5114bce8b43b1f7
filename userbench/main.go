package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userbench/userbench/config"
	"userbench/userbench/controllers"
	"userbench/userbench/middlewares"
	"userbench/userbench/routes"
	"userbench/userbench/services/usersapi"
	"userbench/userbench/sources/psql"
	"userbench/userbench/sources/psql/dao"
	"userbench/userbench/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		os.Stderr.WriteString("logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logging.Sync()

	api := usersapi.New(cfg.APIBaseURL, usersapi.WithTimeout(cfg.RequestTimeout))
	harnessCtrl := controllers.NewHarnessController(api)
	healthCtrl := controllers.NewHealthController(api.BaseURL(), cfg.StubAPI)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	if cfg.StubAPI {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := psql.NewDatabase(ctx, cfg)
		cancel()
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()
		userCtrl := controllers.NewUserController(dao.NewUserDAO(db.DB))
		r.Mount("/api/users", routes.UserRoutes(userCtrl))
		logging.AppLogger.Info("reference users API mounted", zap.String("path", "/api/users"))
	}

	r.Mount("/", routes.HarnessRoutes(harnessCtrl, api.BaseURL()))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("harness listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("api_url", api.BaseURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return
	}
	logging.AppLogger.Info("server shutdown complete")
}
