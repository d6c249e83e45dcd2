package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"venturelink/internal/common"
	"venturelink/internal/config"
	"venturelink/internal/dbmongo"
	"venturelink/internal/dbmysql"
	"venturelink/internal/di"
)

func main() {
	// .env is optional; system env vars still apply
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := buildLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal("mysql connection failed", zap.Error(err))
	}
	if err := dbmysql.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}

	app := di.InitApp(cfg, db, mongoClient, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(common.RequestLogger(logger))

	// Login is the only route reachable without a session.
	app.IdentityHandler.Register(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware(logger))
	app.MentorHandler.Register(protected)
	app.RequestHandler.Register(protected)
	app.ConversationHandler.Register(protected)
	app.NotifyHandler.Register(protected)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	app.Notifier.Shutdown()
	if err := mongoClient.Close(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
